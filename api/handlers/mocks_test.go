package handlers

import (
	"context"

	"tabclip-api/core/delivery"
	"tabclip-api/core/domain"
	"tabclip-api/core/render"
)

// mockRenderer is a mock implementation of the render service
type mockRenderer struct {
	renderFunc func(ctx context.Context, req render.Request, opts render.Options) (*domain.Payload, error)
	lastReq    render.Request
}

func (m *mockRenderer) Render(ctx context.Context, req render.Request, opts render.Options) (*domain.Payload, error) {
	m.lastReq = req
	if m.renderFunc != nil {
		return m.renderFunc(ctx, req, opts)
	}
	return &domain.Payload{PlainText: "rendered", Count: len(req.Tabs)}, nil
}

// mockDeliverer is a mock implementation of the delivery pipeline
type mockDeliverer struct {
	deliverFunc func(ctx context.Context, payload *domain.Payload, opts delivery.Options) *domain.DeliveryOutcome
	lastOpts    delivery.Options
	calls       int
}

func (m *mockDeliverer) Deliver(ctx context.Context, payload *domain.Payload, opts delivery.Options) *domain.DeliveryOutcome {
	m.calls++
	m.lastOpts = opts
	if m.deliverFunc != nil {
		return m.deliverFunc(ctx, payload, opts)
	}
	return &domain.DeliveryOutcome{Success: true, Count: payload.Count, Text: payload.PlainText}
}

// mockBridge reports a fixed connection state
type mockBridge struct {
	connected bool
}

func (m *mockBridge) Connected() bool { return m.connected }
