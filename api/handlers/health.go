// ABOUTME: Health handler reporting service and extension-bridge status
// ABOUTME: The extension polls this to decide whether the companion service is reachable

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// bridgeStatus reports whether a browser extension is connected
type bridgeStatus interface {
	Connected() bool
}

// HealthHandler handles the health endpoint
type HealthHandler struct {
	bridge bridgeStatus
}

// NewHealthHandler creates a health handler. bridge may be nil when the
// service runs without a WebSocket bridge.
func NewHealthHandler(bridge bridgeStatus) *HealthHandler {
	return &HealthHandler{bridge: bridge}
}

// RegisterRoutes registers health routes
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Service health",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the health endpoint
type HealthOutput struct {
	Body struct {
		Status           string `json:"status"`
		BrowserConnected bool   `json:"browserConnected"`
	}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	output := &HealthOutput{}
	output.Body.Status = "ok"
	output.Body.BrowserConnected = h.bridge != nil && h.bridge.Connected()
	return output, nil
}
