package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/cotizaexport/cotizaexport/internal/document"
	"github.com/cotizaexport/cotizaexport/internal/history"
	"github.com/cotizaexport/cotizaexport/internal/observability"
	"github.com/cotizaexport/cotizaexport/internal/quote"
	"github.com/cotizaexport/cotizaexport/internal/tariff"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	QuoteHandler    *quote.Handler
	TariffHandler   *tariff.Handler
	DocumentHandler *document.Handler
	HistoryHandler  *history.Handler
	Metrics         *observability.Metrics
}

// NewRouter constructs the chi.Router with service defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		if params.QuoteHandler != nil {
			params.QuoteHandler.MountRoutes(r)
		}
		if params.TariffHandler != nil {
			params.TariffHandler.MountRoutes(r)
		}
		if params.DocumentHandler != nil {
			params.DocumentHandler.MountRoutes(r)
		}
		if params.HistoryHandler != nil {
			params.HistoryHandler.MountRoutes(r)
		}
	})

	return r
}
