package app_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cotizaexport/cotizaexport/internal/app"
	"github.com/cotizaexport/cotizaexport/internal/observability"
	_ "github.com/cotizaexport/cotizaexport/testing"
)

func newRouter() http.Handler {
	return app.NewRouter(app.RouterParams{
		Logger:  slog.Default(),
		Config:  &app.Config{AppEnv: "development"},
		Metrics: observability.NewMetrics(),
	})
}

func TestHealthz(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestClientIDIssuedWhenMissing(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(app.ClientIDHeader))
}

func TestClientIDEchoedWhenPresent(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(app.ClientIDHeader, "client-abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "client-abc", rec.Header().Get(app.ClientIDHeader))
}

func TestMetricsEndpoint(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
