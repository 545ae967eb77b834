package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/justinas/alice"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/growth-dashboard-api/pkg/log"
	"github.com/vfg2006/growth-dashboard-api/pkg/metrics"
)

func TestMetricsPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/api/metrics", want: "/api/metrics"},
		{path: "/api/export/run", want: "/api/export/run"},
		{path: "/api/metrics/cumulative", want: "/api/metrics/cumulative"},
		{path: "/api/random-xyz", want: "api_not_found"},
		{path: "/api/metrics/2024-01-01", want: "api_not_found"},
		{path: "/api", want: "api_not_found"},
		{path: "/health", want: "/health"},
		{path: "/metrics", want: "/metrics"},
		{path: "/", want: "spa"},
		{path: "/assets/index-abc.js", want: "spa"},
		{path: "/dashboard/settings", want: "spa"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, MetricsPath(tt.path))
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	log.SetupTestLogger()

	var seen string
	h := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("Propaga o X-Request-ID recebido", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/metrics", nil)
		req.Header.Set(log.CorrelationIDHeader, "req-42")

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "req-42", seen)
		assert.Equal(t, "req-42", rec.Header().Get(log.CorrelationIDHeader))
	})

	t.Run("Gera um ID quando ausente", func(t *testing.T) {
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(log.CorrelationIDHeader))
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	h := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/metrics", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error","code":"SRV_001"}`, rec.Body.String())
}

func TestLoggingMiddleware_WrapsPanicRecovery(t *testing.T) {
	log.SetupTestLogger()

	h := alice.New(LoggingMiddleware(), LogPanicMiddleware()).ThenFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/crash", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(log.CorrelationIDHeader))

	scrape := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, scrape.Body.String(), `growth_dashboard_http_requests_total{method="DELETE",path="api_not_found",status="500"} 1`)
}

func TestCors(t *testing.T) {
	h := Cors([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/metrics", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	h.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/metrics", nil)
	req.Header.Set("Origin", "http://evil.example")
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
