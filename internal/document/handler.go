package document

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cotizaexport/cotizaexport/internal/platform/httpx"
	"github.com/cotizaexport/cotizaexport/internal/shared"
)

// GenerateRequest is the generation envelope: which document, and the
// data to populate it with.
type GenerateRequest struct {
	DocumentType Kind    `json:"documentType"`
	Data         Request `json:"data"`
}

// GenerateResponse carries the generated markup.
type GenerateResponse struct {
	HTML string `json:"html"`
}

// Handler exposes document generation over HTTP.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs the handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers the document routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/documents", h.Generate)
}

// Generate handles POST /documents.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Malformed Request", "el cuerpo de la solicitud no es JSON válido")
		return
	}
	clientID := shared.ClientIDFromContext(r.Context())
	markup, err := h.service.Generate(r.Context(), clientID, req.DocumentType, req.Data)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, GenerateResponse{HTML: markup})
}
