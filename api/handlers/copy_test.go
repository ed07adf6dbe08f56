package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"

	"tabclip-api/core/domain"
	"tabclip-api/core/render"
	"tabclip-api/pkg/config"
)

func newCopyAPI(t *testing.T, r *mockRenderer, d *mockDeliverer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handler := NewCopyHandler(r, d, config.DefaultPresets(), render.Options{LineFeed: "\n"}, config.NotificationConfig{Enabled: true, TimeoutSeconds: 5, IconURL: "https://example.com/icon.png"})
	handler.RegisterRoutes(api)
	return api
}

func TestCopy_InlineFormat(t *testing.T) {
	r := &mockRenderer{}
	d := &mockDeliverer{}
	api := newCopyAPI(t, r, d)

	resp := api.Post("/v1/copy", map[string]any{
		"tabs":     []map[string]any{{"id": 1, "title": "A", "url": "https://a"}},
		"format":   "%URL%",
		"windowId": 4,
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}

	var outcome domain.DeliveryOutcome
	if err := json.Unmarshal(resp.Body.Bytes(), &outcome); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !outcome.Success || outcome.Count != 1 {
		t.Errorf("outcome = %+v", outcome)
	}

	if r.lastReq.Format != "%URL%" {
		t.Errorf("rendered format = %q", r.lastReq.Format)
	}
	if d.lastOpts.WindowID != 4 {
		t.Errorf("delivery window = %d, want 4", d.lastOpts.WindowID)
	}
	if !d.lastOpts.Notify {
		t.Error("notifications should be enabled from config")
	}
	if d.lastOpts.NotifyIcon != "https://example.com/icon.png" {
		t.Errorf("notification icon = %q, want the configured URL", d.lastOpts.NotifyIcon)
	}
}

func TestCopy_PresetResolved(t *testing.T) {
	r := &mockRenderer{}
	api := newCopyAPI(t, r, &mockDeliverer{})

	resp := api.Post("/v1/copy", map[string]any{
		"tabs":   []map[string]any{{"id": 1, "title": "A", "url": "https://a"}},
		"preset": "URL only",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	if r.lastReq.Format != "%URL%" {
		t.Errorf("resolved format = %q, want the preset's format", r.lastReq.Format)
	}
}

func TestCopy_InlineFormatWinsOverPreset(t *testing.T) {
	r := &mockRenderer{}
	api := newCopyAPI(t, r, &mockDeliverer{})

	resp := api.Post("/v1/copy", map[string]any{
		"tabs":   []map[string]any{{"id": 1, "title": "A", "url": "https://a"}},
		"format": "%TITLE%",
		"preset": "URL only",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d", resp.Code)
	}
	if r.lastReq.Format != "%TITLE%" {
		t.Errorf("resolved format = %q, inline format should win", r.lastReq.Format)
	}
}

func TestCopy_UnknownPreset(t *testing.T) {
	d := &mockDeliverer{}
	api := newCopyAPI(t, &mockRenderer{}, d)

	resp := api.Post("/v1/copy", map[string]any{
		"tabs":   []map[string]any{{"id": 1, "title": "A", "url": "https://a"}},
		"preset": "No such preset",
	})

	if resp.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.Code)
	}
	if d.calls != 0 {
		t.Error("nothing should be delivered for an unknown preset")
	}
}

func TestCopy_MissingFormatAndPreset(t *testing.T) {
	api := newCopyAPI(t, &mockRenderer{}, &mockDeliverer{})

	resp := api.Post("/v1/copy", map[string]any{
		"tabs": []map[string]any{{"id": 1, "title": "A", "url": "https://a"}},
	})

	if resp.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.Code)
	}
}

func TestCopy_TreePassedThrough(t *testing.T) {
	r := &mockRenderer{}
	api := newCopyAPI(t, r, &mockDeliverer{})

	resp := api.Post("/v1/copy", map[string]any{
		"tabs": []map[string]any{
			{"id": 1, "title": "A", "url": "https://a"},
			{"id": 2, "title": "B", "url": "https://b"},
		},
		"tree":            []map[string]any{{"id": 1, "children": []map[string]any{{"id": 2}}}},
		"selectedIds":     []int{1, 2},
		"descendantsOnly": true,
		"format":          "%INDENT%%URL%",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d", resp.Code)
	}
	if len(r.lastReq.Tree) != 1 || len(r.lastReq.Tree[0].Children) != 1 {
		t.Errorf("tree = %+v", r.lastReq.Tree)
	}
	if !r.lastReq.DescendantsOnly {
		t.Error("descendantsOnly should pass through")
	}
}
