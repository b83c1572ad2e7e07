package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hockey-notify-service/internal/metrics"
)

func TestLoggingMiddlewareSetsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	rec := metrics.NewRecorder()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if got := RequestIDFromContext(r.Context()); got == "" {
			t.Fatalf("expected request id in context")
		}
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodPost, "/notify", nil)
	rr := httptest.NewRecorder()

	handler := LoggingMiddleware(logger, rec, next)
	handler.ServeHTTP(rr, req)

	if !nextCalled {
		t.Fatalf("expected next handler to be called")
	}
	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status 418, got %d", rr.Code)
	}
	if got := rr.Header().Get("X-Request-ID"); got == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
	if !strings.Contains(buf.String(), "request complete") {
		t.Fatalf("expected completion log, got %q", buf.String())
	}
}

func TestLoggingMiddlewarePreservesValidRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := RequestIDFromContext(r.Context()); got != "caller-id-1" {
			t.Fatalf("expected caller request id, got %q", got)
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "caller-id-1")
	rr := httptest.NewRecorder()

	LoggingMiddleware(nil, nil, next).ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got != "caller-id-1" {
		t.Fatalf("expected header echoed, got %q", got)
	}
}

func TestLoggingMiddlewareUsesForwardedFor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.1")
	rr := httptest.NewRecorder()

	LoggingMiddleware(logger, nil, next).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(buf.String(), "198.51.100.1") {
		t.Fatalf("expected forwarded IP in log, got %q", buf.String())
	}
}

func TestResponseWriterDefaultsStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr, status: http.StatusOK}
	if w.status != http.StatusOK {
		t.Fatalf("expected default status 200, got %d", w.status)
	}
	w.WriteHeader(http.StatusAccepted)
	if w.status != http.StatusAccepted {
		t.Fatalf("expected status set to 202, got %d", w.status)
	}
}

func TestRequestIDHelpers(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Fatalf("expected empty id, got %s", got)
	}

	ctx = withRequestID(ctx, "abc123")
	if got := RequestIDFromContext(ctx); got != "abc123" {
		t.Fatalf("expected id from context, got %s", got)
	}

	if got := RequestIDFromContext(nil); got != "" {
		t.Fatalf("expected empty id for nil context, got %s", got)
	}
}

func TestRequestIDSanitization(t *testing.T) {
	if generateRequestID() == "" {
		t.Fatalf("expected generated id")
	}
	if fallbackRequestID() == "" {
		t.Fatalf("expected fallback id")
	}
	if sanitizeRequestID("valid-123") != "valid-123" {
		t.Fatalf("expected valid id to pass through")
	}
	sanitized := sanitizeRequestID("bad id")
	if sanitized == "bad id" || sanitized == "" {
		t.Fatalf("expected sanitized id to differ and be non-empty")
	}
}
