package tariff

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cotizaexport/cotizaexport/internal/platform/httpx"
)

// LookupRequest is the lookup payload.
type LookupRequest struct {
	ProductDescription string `json:"productDescription"`
}

// LookupResponse carries the resolved code.
type LookupResponse struct {
	Code string `json:"code"`
}

// Handler exposes tariff lookups over HTTP.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs the handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers the tariff routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/tariff-code", h.Lookup)
}

// Lookup handles POST /tariff-code.
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	var req LookupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Malformed Request", "el cuerpo de la solicitud no es JSON válido")
		return
	}
	code, err := h.service.Lookup(r.Context(), req.ProductDescription)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, LookupResponse{Code: code})
}
