package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phoneyourrep/pyr-backend/internal/middleware"
)

// callWithOrigin wraps a 200-OK inner handler in the CORS middleware,
// optionally setting an Origin header, and returns the recorded response.
func callWithOrigin(t *testing.T, method, origin string) *httptest.ResponseRecorder {
	t.Helper()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.CORSMiddleware(inner)
	req := httptest.NewRequest(method, "/reps", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// TestCORSMiddleware_AllowedOrigin verifies that an allow-listed origin is
// echoed back in Access-Control-Allow-Origin.
func TestCORSMiddleware_AllowedOrigin(t *testing.T) {
	rec := callWithOrigin(t, http.MethodGet, "https://phoneyourrep.github.io")

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://phoneyourrep.github.io" {
		t.Errorf("expected origin to be echoed, got %q", got)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

// TestCORSMiddleware_UnknownOrigin verifies that an unknown origin gets no
// CORS grant but the request still passes through.
func TestCORSMiddleware_UnknownOrigin(t *testing.T) {
	rec := callWithOrigin(t, http.MethodGet, "https://evil.example.com")

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no allow-origin header, got %q", got)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

// TestCORSMiddleware_Preflight verifies that OPTIONS requests short-circuit
// with 204 and never reach the inner handler.
func TestCORSMiddleware_Preflight(t *testing.T) {
	rec := callWithOrigin(t, http.MethodOptions, "http://localhost:5173")

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", rec.Code)
	}
}
