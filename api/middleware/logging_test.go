package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// MockLogger implements the Logger interface for testing
type MockLogger struct {
	logs []LogEntry
}

type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

func (m *MockLogger) Debug(msg string, fields map[string]interface{}) {
	m.logs = append(m.logs, LogEntry{Level: "DEBUG", Message: msg, Fields: fields})
}

func (m *MockLogger) Info(msg string, fields map[string]interface{}) {
	m.logs = append(m.logs, LogEntry{Level: "INFO", Message: msg, Fields: fields})
}

func (m *MockLogger) Warn(msg string, fields map[string]interface{}) {
	m.logs = append(m.logs, LogEntry{Level: "WARN", Message: msg, Fields: fields})
}

func (m *MockLogger) Error(msg string, fields map[string]interface{}) {
	m.logs = append(m.logs, LogEntry{Level: "ERROR", Message: msg, Fields: fields})
}

func TestRequestLoggingMiddleware_LogsMethodAndPath(t *testing.T) {
	logger := &MockLogger{}
	middleware := RequestLoggingMiddleware(logger)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/search?q=laptop", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Len(t, logger.logs, 1)

	entry := logger.logs[0]
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "request completed", entry.Message)
	assert.Equal(t, "GET", entry.Fields["method"])
	assert.Equal(t, "/search", entry.Fields["path"])
	assert.Equal(t, http.StatusOK, entry.Fields["status"])
	assert.NotEmpty(t, entry.Fields["request_id"])
}

func TestRequestLoggingMiddleware_ServerErrorsLogAtErrorLevel(t *testing.T) {
	logger := &MockLogger{}
	middleware := RequestLoggingMiddleware(logger)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	req := httptest.NewRequest("GET", "/search", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Len(t, logger.logs, 1)
	assert.Equal(t, "ERROR", logger.logs[0].Level)
	assert.Equal(t, http.StatusInternalServerError, logger.logs[0].Fields["status"])
}

func TestRequestLoggingMiddleware_SetsRequestIDHeader(t *testing.T) {
	logger := &MockLogger{}
	middleware := RequestLoggingMiddleware(logger)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/search", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	requestID := rec.Header().Get("X-Request-ID")
	assert.NotEmpty(t, requestID)
	// Request IDs are UUIDs
	assert.Len(t, requestID, 36)
	assert.Equal(t, requestID, logger.logs[0].Fields["request_id"])
}

func TestResponseWriter_CapturesStatusCode(t *testing.T) {
	rw := &responseWriter{
		ResponseWriter: httptest.NewRecorder(),
		statusCode:     http.StatusOK,
	}

	rw.WriteHeader(http.StatusCreated)
	assert.Equal(t, http.StatusCreated, rw.statusCode)
	assert.True(t, rw.written)

	// Subsequent calls should not change status
	rw.WriteHeader(http.StatusBadRequest)
	assert.Equal(t, http.StatusCreated, rw.statusCode)
}

func TestResponseWriter_DefaultsTo200(t *testing.T) {
	rw := &responseWriter{
		ResponseWriter: httptest.NewRecorder(),
		statusCode:     http.StatusOK,
	}

	rw.Write([]byte("test"))
	assert.Equal(t, http.StatusOK, rw.statusCode)
	assert.True(t, rw.written)
}
