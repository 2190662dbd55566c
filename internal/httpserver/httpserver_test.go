package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-tracker/config"
	"meeting-tracker/pkg/llmprovider"
	"meeting-tracker/pkg/log"
)

type stubCompleter struct{}

func (stubCompleter) Complete(ctx context.Context, p llmprovider.ProviderConfig, apiKey, transcript string) (llmprovider.Completion, error) {
	return llmprovider.Completion{}, errors.New("not used")
}

func (stubCompleter) Ping(ctx context.Context, p llmprovider.ProviderConfig, apiKey string) error {
	return nil
}

func newTestServer(t *testing.T) (*HTTPServer, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	registry := prometheus.NewRegistry()
	manager := llmprovider.NewManager(
		llmprovider.DefaultProviders("http://localhost:3000"),
		stubCompleter{},
		func(string) (string, bool) { return "", false },
		log.NewNop(),
	)

	srv, err := New(log.NewNop(), Config{
		Logger:      log.NewNop(),
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "development",
		DB:          mock,
		LLM:         manager,
		Registry:    registry,
		App:         config.AppConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		RateLimit:   config.RateLimitConfig{LLMPerMin: 10, CRUDPerMin: 60, HealthPerMin: 120},
	})
	require.NoError(t, err)
	return srv, mock
}

func serve(srv *HTTPServer, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Port: 8080, Mode: gin.TestMode})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv, mock := newTestServer(t)

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/live", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	mock.ExpectQuery("SELECT 1").WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))
	w = serve(srv, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	mock.ExpectQuery("SELECT 1").WillReturnError(errors.New("connection refused"))
	w = serve(srv, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = serve(srv, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDomainRoutesRegistered(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/api/transcripts", "/api/action-items"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := serve(srv, req)
		assert.Equal(t, http.StatusNoContent, w.Code, path)
	}

	// Health probe fails without any configured API key.
	w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/health/llm", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "10", w.Header().Get("X-RateLimit-Limit"))
}

func TestRouteTable(t *testing.T) {
	srv, _ := newTestServer(t)

	got := map[string]bool{}
	for _, r := range srv.gin.Routes() {
		got[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"POST /api/transcripts",
		"GET /api/transcripts/:id",
		"GET /api/history",
		"POST /api/action-items",
		"PATCH /api/action-items/:id",
		"DELETE /api/action-items/:id",
		"GET /api/health/llm",
		"GET /api/health/db",
		"GET /metrics",
	} {
		assert.True(t, got[want], "missing route %s", want)
	}
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	srv, _ := newTestServer(t)

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error_code":404`)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}
