// ABOUTME: Render handler returning the rendered payload without touching the clipboard
// ABOUTME: Used by the extension for live format previews

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"tabclip-api/core/domain"
	"tabclip-api/core/render"
)

// RenderHandler handles the render-preview endpoint
type RenderHandler struct {
	renderer   renderer
	presets    []domain.FormatPreset
	renderOpts render.Options
}

// NewRenderHandler creates a render handler.
func NewRenderHandler(r renderer, presets []domain.FormatPreset, renderOpts render.Options) *RenderHandler {
	return &RenderHandler{renderer: r, presets: presets, renderOpts: renderOpts}
}

// RegisterRoutes registers render routes
func (h *RenderHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "renderTabs",
		Method:      http.MethodPost,
		Path:        "/v1/render",
		Summary:     "Render tabs without copying",
		Description: "Renders the selected tabs with a placeholder format and returns the payload",
		Tags:        []string{"Render"},
	}, h.Render)
}

// RenderInput defines the input for the render endpoint
type RenderInput struct {
	Body SelectionBody
}

// RenderOutput defines the output for the render endpoint
type RenderOutput struct {
	Body struct {
		PlainText string `json:"plainText" doc:"Joined plain-text rendering"`
		RichText  string `json:"richText,omitempty" doc:"Joined HTML rendering when the format requested rich output"`
		Count     int    `json:"count" doc:"Number of tabs rendered"`
	}
}

// Render handles the POST /v1/render endpoint
func (h *RenderHandler) Render(ctx context.Context, input *RenderInput) (*RenderOutput, error) {
	format, err := resolveFormat(input.Body, h.presets)
	if err != nil {
		return nil, err
	}

	payload, err := h.renderer.Render(ctx, render.Request{
		Tabs:            input.Body.Tabs,
		Tree:            input.Body.Tree,
		SelectedIDs:     input.Body.SelectedIDs,
		DescendantsOnly: input.Body.DescendantsOnly,
		Format:          format,
	}, h.renderOpts)
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &RenderOutput{}
	output.Body.PlainText = payload.PlainText
	output.Body.RichText = payload.RichText
	output.Body.Count = payload.Count
	return output, nil
}
