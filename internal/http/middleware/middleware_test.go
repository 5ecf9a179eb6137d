package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func ok(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("OK"))
}

func TestSecurityHeaders(t *testing.T) {
	h := NewSecurity(false).Handler(http.HandlerFunc(ok))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, rr.Header().Get("Content-Security-Policy"), "script-src 'self' https://cdn.jsdelivr.net")
	assert.Empty(t, rr.Header().Get("Strict-Transport-Security"))
}

func TestSecurityHSTSBehindProxy(t *testing.T) {
	h := NewSecurity(true).Handler(http.HandlerFunc(ok))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Strict-Transport-Security"), "max-age=31536000")
}

func TestMetricsRouteLabels(t *testing.T) {
	m := NewMetrics()
	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/health", ok)
	r.Method(http.MethodGet, "/metrics", m.Exposition())

	for _, path := range []string{"/health", "/health", "/nope/1", "/nope/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rr.Body.String()

	assert.Contains(t, body, `http_requests_total{method="GET",route="/health",status="200"} 2`)
	assert.Contains(t, body, `http_requests_total{method="GET",route="unmatched",status="404"} 2`)
	assert.False(t, strings.Contains(body, "/nope/1"), "raw paths must not become labels")
}

func TestRequestLoggerPassesThrough(t *testing.T) {
	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}
