package history

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cotizaexport/cotizaexport/internal/platform/httpx"
	"github.com/cotizaexport/cotizaexport/internal/shared"
)

// Handler exposes the recent-history list over HTTP.
type Handler struct {
	logger *slog.Logger
	store  *Store
}

// NewHandler constructs the handler.
func NewHandler(logger *slog.Logger, store *Store) *Handler {
	return &Handler{logger: logger, store: store}
}

// MountRoutes registers the history routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/history", h.List)
	r.Delete("/history", h.Clear)
}

// List returns the caller's stored entries, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	clientID := shared.ClientIDFromContext(r.Context())
	httpx.JSON(w, http.StatusOK, h.store.List(r.Context(), clientID))
}

// Clear empties the caller's history.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	clientID := shared.ClientIDFromContext(r.Context())
	h.store.Clear(r.Context(), clientID)
	w.WriteHeader(http.StatusNoContent)
}
