// ABOUTME: Formats handler listing the configured format presets
// ABOUTME: The extension populates its format picker from this endpoint

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"tabclip-api/core/domain"
)

// FormatsHandler handles the preset listing endpoint
type FormatsHandler struct {
	presets []domain.FormatPreset
}

// NewFormatsHandler creates a formats handler.
func NewFormatsHandler(presets []domain.FormatPreset) *FormatsHandler {
	return &FormatsHandler{presets: presets}
}

// RegisterRoutes registers format routes
func (h *FormatsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listFormats",
		Method:      http.MethodGet,
		Path:        "/v1/formats",
		Summary:     "List format presets",
		Tags:        []string{"Formats"},
	}, h.List)
}

// FormatsOutput defines the output for the formats endpoint
type FormatsOutput struct {
	Body struct {
		Presets []domain.FormatPreset `json:"presets"`
	}
}

// List handles the GET /v1/formats endpoint
func (h *FormatsHandler) List(ctx context.Context, input *struct{}) (*FormatsOutput, error) {
	output := &FormatsOutput{}
	output.Body.Presets = h.presets
	return output, nil
}
