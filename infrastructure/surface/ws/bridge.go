// ABOUTME: WebSocket bridge to the browser extension for surface and tab operations
// ABOUTME: Single connection, correlation-id request/response over JSON messages

package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"tabclip-api/core/interfaces"
)

// ErrNotConnected is returned when no extension is connected to the bridge.
var ErrNotConnected = errors.New("no browser extension connected")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// The service listens on loopback only; extension origins
	// (moz-extension://, chrome-extension://) never match the host.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// request is one command sent to the extension.
type request struct {
	ID     string                 `json:"id"`
	Action string                 `json:"action"`
	Params map[string]interface{} `json:"params,omitempty"`
}

// response is the extension's reply, correlated by id.
type response struct {
	ID     string          `json:"id"`
	OK     bool            `json:"ok"`
	Error  string          `json:"error,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
}

// Bridge drives the browser through a single WebSocket connection held by
// the extension. It implements both the surface provider and the tab source.
// A newly connecting extension replaces any previous connection.
type Bridge struct {
	logger interfaces.Logger

	mu      sync.RWMutex
	conn    *websocket.Conn
	pending map[string]chan response

	writeMu sync.Mutex
}

// NewBridge creates a bridge with no connection; the extension attaches
// later via HandleUpgrade.
func NewBridge(logger interfaces.Logger) *Bridge {
	return &Bridge{
		logger:  logger,
		pending: make(map[string]chan response),
	}
}

// HandleUpgrade upgrades an HTTP request to the extension's WebSocket
// connection and starts reading replies from it.
func (b *Bridge) HandleUpgrade(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		b.logger.Error("WebSocket upgrade failed", map[string]interface{}{
			"remote": r.RemoteAddr,
			"error":  err.Error(),
		})
		return
	}

	b.mu.Lock()
	if b.conn != nil {
		b.conn.Close()
		b.failPendingLocked(ErrNotConnected)
	}
	b.conn = conn
	b.mu.Unlock()

	b.logger.Info("Browser extension connected", map[string]interface{}{
		"remote": r.RemoteAddr,
	})

	go b.readLoop(conn)
}

// Connected reports whether an extension is currently attached.
func (b *Bridge) Connected() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.conn != nil
}

// readLoop routes replies to their waiting callers until the connection
// drops.
func (b *Bridge) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			b.mu.Lock()
			if b.conn == conn {
				b.conn = nil
				b.failPendingLocked(ErrNotConnected)
			}
			b.mu.Unlock()
			b.logger.Info("Browser extension disconnected", map[string]interface{}{
				"error": err.Error(),
			})
			return
		}

		var resp response
		if err := json.Unmarshal(data, &resp); err != nil {
			b.logger.Warn("Discarding malformed bridge message", map[string]interface{}{
				"error": err.Error(),
			})
			continue
		}

		b.mu.Lock()
		ch, ok := b.pending[resp.ID]
		if ok {
			delete(b.pending, resp.ID)
		}
		b.mu.Unlock()

		if ok {
			ch <- resp
		} else {
			b.logger.Debug("Reply with no waiting caller", map[string]interface{}{
				"id": resp.ID,
			})
		}
	}
}

// failPendingLocked resolves every in-flight call with err. Caller holds mu.
func (b *Bridge) failPendingLocked(err error) {
	for id, ch := range b.pending {
		delete(b.pending, id)
		ch <- response{ID: id, OK: false, Error: err.Error()}
	}
}

// call sends one command and waits for its reply or context expiry.
func (b *Bridge) call(ctx context.Context, action string, params map[string]interface{}) (json.RawMessage, error) {
	b.mu.Lock()
	conn := b.conn
	if conn == nil {
		b.mu.Unlock()
		return nil, ErrNotConnected
	}

	id := uuid.NewString()
	ch := make(chan response, 1)
	b.pending[id] = ch
	b.mu.Unlock()

	req := request{ID: id, Action: action, Params: params}

	b.writeMu.Lock()
	err := conn.WriteJSON(req)
	b.writeMu.Unlock()
	if err != nil {
		b.mu.Lock()
		delete(b.pending, id)
		b.mu.Unlock()
		return nil, fmt.Errorf("sending %s: %w", action, err)
	}

	select {
	case resp := <-ch:
		if !resp.OK {
			return nil, fmt.Errorf("%s: %s", action, resp.Error)
		}
		return resp.Result, nil

	case <-ctx.Done():
		b.mu.Lock()
		delete(b.pending, id)
		b.mu.Unlock()
		return nil, ctx.Err()
	}
}

// surfaceResult is the browser's description of a created surface.
type surfaceResult struct {
	TabID    int `json:"tabId"`
	WindowID int `json:"windowId"`
}

// CreateTab creates a blank, non-active tab in the given window.
func (b *Bridge) CreateTab(ctx context.Context, windowID int) (*interfaces.Surface, error) {
	result, err := b.call(ctx, "surface.create-tab", map[string]interface{}{
		"windowId": windowID,
	})
	if err != nil {
		return nil, err
	}

	var sr surfaceResult
	if err := json.Unmarshal(result, &sr); err != nil {
		return nil, fmt.Errorf("decoding create-tab result: %w", err)
	}
	return &interfaces.Surface{TabID: sr.TabID, WindowID: sr.WindowID}, nil
}

// CreateWindow creates a small blank temporary window.
func (b *Bridge) CreateWindow(ctx context.Context) (*interfaces.Surface, error) {
	result, err := b.call(ctx, "surface.create-window", nil)
	if err != nil {
		return nil, err
	}

	var sr surfaceResult
	if err := json.Unmarshal(result, &sr); err != nil {
		return nil, fmt.Errorf("decoding create-window result: %w", err)
	}
	return &interfaces.Surface{TabID: sr.TabID, WindowID: sr.WindowID, CreatedWindow: true}, nil
}

// ExecCopy runs the one-shot copy interception inside the surface. The
// extension replies once the copy event fired; the context bounds the wait.
func (b *Bridge) ExecCopy(ctx context.Context, surface *interfaces.Surface, plain, rich string) error {
	_, err := b.call(ctx, "surface.exec-copy", map[string]interface{}{
		"tabId": surface.TabID,
		"plain": plain,
		"rich":  rich,
	})
	return err
}

// RemoveTab removes a tab by id.
func (b *Bridge) RemoveTab(ctx context.Context, tabID int) error {
	_, err := b.call(ctx, "surface.remove-tab", map[string]interface{}{
		"tabId": tabID,
	})
	return err
}

// RemoveWindow removes a whole window by id.
func (b *Bridge) RemoveWindow(ctx context.Context, windowID int) error {
	_, err := b.call(ctx, "surface.remove-window", map[string]interface{}{
		"windowId": windowID,
	})
	return err
}

// ContainerName resolves a container's display name by its identifier.
func (b *Bridge) ContainerName(ctx context.Context, containerID string) (string, error) {
	result, err := b.call(ctx, "container.get-name", map[string]interface{}{
		"containerId": containerID,
	})
	if err != nil {
		return "", err
	}

	var nr struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(result, &nr); err != nil {
		return "", fmt.Errorf("decoding container name result: %w", err)
	}
	return nr.Name, nil
}
