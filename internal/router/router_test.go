package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pharmadesk/pharmacy-api/internal/config"
)

func newTestConfig() *config.Config {
	return &config.Config{
		CORS: config.CORSConfig{AllowOrigins: []string{"*"}},
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := NewRouter(newTestConfig())
	r.Setup()

	rec := httptest.NewRecorder()
	r.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	r := NewRouter(newTestConfig())
	r.Setup()

	rec := httptest.NewRecorder()
	r.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDHeaderIsPropagated(t *testing.T) {
	r := NewRouter(newTestConfig())
	r.Setup()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	r.Engine().ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestUnknownRouteIs404(t *testing.T) {
	r := NewRouter(newTestConfig())
	r.Setup()

	rec := httptest.NewRecorder()
	r.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRateLimitRejectsWhenExhausted(t *testing.T) {
	cfg := newTestConfig()
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerSecond: 1, Burst: 1}
	r := NewRouter(cfg)
	r.Setup()

	first := httptest.NewRecorder()
	r.Engine().ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	r.Engine().ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
