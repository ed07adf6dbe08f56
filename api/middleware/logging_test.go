package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// recordingLogger captures log calls for assertions
type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) record(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) { l.record(msg) }
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  { l.record(msg) }
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  { l.record(msg) }
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) { l.record(msg) }

func (l *recordingLogger) has(msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.messages {
		if m == msg {
			return true
		}
	}
	return false
}

func TestRequestLoggingMiddleware_SetsRequestID(t *testing.T) {
	logger := &recordingLogger{}
	var seenID string
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/formats", nil))

	if seenID == "" {
		t.Error("handler should see a request id in its context")
	}
	if got := rec.Header().Get("X-Request-ID"); got != seenID {
		t.Errorf("X-Request-ID header = %q, want %q", got, seenID)
	}
	if !logger.has("Request completed") {
		t.Error("completion should be logged")
	}
}

func TestRequestLoggingMiddleware_LogsServerErrors(t *testing.T) {
	logger := &recordingLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if !logger.has("Request failed with server error") {
		t.Error("5xx responses should be logged as errors")
	}
}
