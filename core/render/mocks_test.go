package render

import (
	"context"
	"sync"

	"tabclip-api/core/interfaces"
)

// mockExtractor is a mock implementation of ContentExtractor
type mockExtractor struct {
	mu          sync.Mutex
	extractFunc func(ctx context.Context, url string) (*interfaces.PageMetadata, error)
	calls       []string
}

func (m *mockExtractor) Extract(ctx context.Context, url string) (*interfaces.PageMetadata, error) {
	m.mu.Lock()
	m.calls = append(m.calls, url)
	m.mu.Unlock()

	if m.extractFunc != nil {
		return m.extractFunc(ctx, url)
	}
	return &interfaces.PageMetadata{}, nil
}

func (m *mockExtractor) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// mockTabSource is a mock implementation of TabSource
type mockTabSource struct {
	containerNameFunc func(ctx context.Context, id string) (string, error)
}

func (m *mockTabSource) ContainerName(ctx context.Context, id string) (string, error) {
	if m.containerNameFunc != nil {
		return m.containerNameFunc(ctx, id)
	}
	return "", nil
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
