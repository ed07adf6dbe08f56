package delivery

import (
	"context"
	"sync"

	"tabclip-api/core/interfaces"
)

// mockClipboard is a mock implementation of Clipboard
type mockClipboard struct {
	mu             sync.Mutex
	writeTextFunc  func(ctx context.Context, text string) error
	writeFunc      func(ctx context.Context, items []interfaces.ClipboardItem) error
	writeTextCalls []string
	writeCalls     [][]interfaces.ClipboardItem
}

func (m *mockClipboard) WriteText(ctx context.Context, text string) error {
	m.mu.Lock()
	m.writeTextCalls = append(m.writeTextCalls, text)
	m.mu.Unlock()

	if m.writeTextFunc != nil {
		return m.writeTextFunc(ctx, text)
	}
	return nil
}

func (m *mockClipboard) Write(ctx context.Context, items []interfaces.ClipboardItem) error {
	m.mu.Lock()
	m.writeCalls = append(m.writeCalls, items)
	m.mu.Unlock()

	if m.writeFunc != nil {
		return m.writeFunc(ctx, items)
	}
	return nil
}

func (m *mockClipboard) writeTextCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.writeTextCalls)
}

func (m *mockClipboard) writeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.writeCalls)
}

// mockSurfaceProvider is a mock implementation of SurfaceProvider
type mockSurfaceProvider struct {
	mu             sync.Mutex
	createTabFunc  func(ctx context.Context, windowID int) (*interfaces.Surface, error)
	createWinFunc  func(ctx context.Context) (*interfaces.Surface, error)
	execCopyFunc   func(ctx context.Context, surface *interfaces.Surface, plain, rich string) error
	removedTabs    []int
	removedWindows []int
}

func (m *mockSurfaceProvider) CreateTab(ctx context.Context, windowID int) (*interfaces.Surface, error) {
	if m.createTabFunc != nil {
		return m.createTabFunc(ctx, windowID)
	}
	return &interfaces.Surface{TabID: 101, WindowID: windowID}, nil
}

func (m *mockSurfaceProvider) CreateWindow(ctx context.Context) (*interfaces.Surface, error) {
	if m.createWinFunc != nil {
		return m.createWinFunc(ctx)
	}
	return &interfaces.Surface{TabID: 201, WindowID: 202, CreatedWindow: true}, nil
}

func (m *mockSurfaceProvider) ExecCopy(ctx context.Context, surface *interfaces.Surface, plain, rich string) error {
	if m.execCopyFunc != nil {
		return m.execCopyFunc(ctx, surface, plain, rich)
	}
	return nil
}

func (m *mockSurfaceProvider) RemoveTab(ctx context.Context, tabID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removedTabs = append(m.removedTabs, tabID)
	return nil
}

func (m *mockSurfaceProvider) RemoveWindow(ctx context.Context, windowID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removedWindows = append(m.removedWindows, windowID)
	return nil
}

func (m *mockSurfaceProvider) tabRemovals() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.removedTabs...)
}

func (m *mockSurfaceProvider) windowRemovals() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.removedWindows...)
}

// mockNotifier is a mock implementation of Notifier
type mockNotifier struct {
	mu         sync.Mutex
	notifyFunc func(ctx context.Context, n interfaces.Notification) (bool, error)
	calls      []interfaces.Notification
}

func (m *mockNotifier) Notify(ctx context.Context, n interfaces.Notification) (bool, error) {
	m.mu.Lock()
	m.calls = append(m.calls, n)
	m.mu.Unlock()

	if m.notifyFunc != nil {
		return m.notifyFunc(ctx, n)
	}
	return false, nil
}

func (m *mockNotifier) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockNotifier) lastCall() interfaces.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[len(m.calls)-1]
}

// nopLogger discards all log output
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

func testDeps() interfaces.Dependencies {
	return interfaces.Dependencies{Logger: nopLogger{}}
}
