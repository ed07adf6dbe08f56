// ABOUTME: Copy handler rendering a tab selection and delivering it to the clipboard
// ABOUTME: Accepts either an inline format string or a named preset

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"tabclip-api/core/delivery"
	"tabclip-api/core/domain"
	"tabclip-api/core/render"
	"tabclip-api/pkg/config"
)

// renderer renders tab selections into clipboard payloads
type renderer interface {
	Render(ctx context.Context, req render.Request, opts render.Options) (*domain.Payload, error)
}

// deliverer runs the clipboard delivery chain for a payload
type deliverer interface {
	Deliver(ctx context.Context, payload *domain.Payload, opts delivery.Options) *domain.DeliveryOutcome
}

// CopyHandler handles the copy endpoint
type CopyHandler struct {
	renderer      renderer
	deliverer     deliverer
	presets       []domain.FormatPreset
	renderOpts    render.Options
	notify        bool
	notifyTimeout time.Duration
	notifyIcon    string
}

// NewCopyHandler creates a copy handler.
func NewCopyHandler(r renderer, d deliverer, presets []domain.FormatPreset, renderOpts render.Options, notifications config.NotificationConfig) *CopyHandler {
	return &CopyHandler{
		renderer:      r,
		deliverer:     d,
		presets:       presets,
		renderOpts:    renderOpts,
		notify:        notifications.Enabled,
		notifyTimeout: time.Duration(notifications.TimeoutSeconds) * time.Second,
		notifyIcon:    notifications.IconURL,
	}
}

// RegisterRoutes registers copy routes
func (h *CopyHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "copyTabs",
		Method:      http.MethodPost,
		Path:        "/v1/copy",
		Summary:     "Render tabs and copy them to the clipboard",
		Description: "Renders the selected tabs with a placeholder format and runs the clipboard delivery chain",
		Tags:        []string{"Copy"},
	}, h.Copy)
}

// SelectionBody is the tab selection shared by the copy and render endpoints.
type SelectionBody struct {
	Tabs            []domain.Tab      `json:"tabs" doc:"Selected tabs in selection order"`
	Tree            []domain.TreeNode `json:"tree,omitempty" doc:"Tab tree forest for indent computation"`
	SelectedIDs     []int             `json:"selectedIds,omitempty" doc:"IDs of the originally selected tabs"`
	DescendantsOnly bool              `json:"descendantsOnly,omitempty" doc:"Selection came from a copy-descendants command"`
	Format          string            `json:"format,omitempty" doc:"Inline placeholder format string"`
	Preset          string            `json:"preset,omitempty" doc:"Named format preset, used when no inline format is given"`
}

// CopyInput defines the input for the copy endpoint
type CopyInput struct {
	Body struct {
		SelectionBody
		WindowID int `json:"windowId,omitempty" doc:"Window the copy was invoked from"`
	}
}

// CopyOutput defines the output for the copy endpoint
type CopyOutput struct {
	Body domain.DeliveryOutcome
}

// Copy handles the POST /v1/copy endpoint
func (h *CopyHandler) Copy(ctx context.Context, input *CopyInput) (*CopyOutput, error) {
	format, err := resolveFormat(input.Body.SelectionBody, h.presets)
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

	outcome := h.deliverer.Deliver(ctx, payload, delivery.Options{
		WindowID:      input.Body.WindowID,
		Notify:        h.notify,
		NotifyTimeout: h.notifyTimeout,
		NotifyIcon:    h.notifyIcon,
	})

	return &CopyOutput{Body: *outcome}, nil
}

// resolveFormat picks the effective format string: an inline format wins,
// then a named preset.
func resolveFormat(body SelectionBody, presets []domain.FormatPreset) (string, error) {
	if body.Format != "" {
		return body.Format, nil
	}
	if body.Preset != "" {
		preset, ok := config.FindPreset(presets, body.Preset)
		if !ok {
			return "", huma.Error400BadRequest("unknown format preset: " + body.Preset)
		}
		return preset.Format, nil
	}
	return "", huma.Error400BadRequest("either format or preset is required")
}
