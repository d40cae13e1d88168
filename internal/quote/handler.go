package quote

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cotizaexport/cotizaexport/internal/platform/httpx"
	"github.com/cotizaexport/cotizaexport/internal/shared"
)

// GenerateRequest is the submission envelope the browser sends.
type GenerateRequest struct {
	FormData ShipmentRequest `json:"formData"`
}

// Handler exposes the quotation workflow over HTTP.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs the handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// Generate handles POST /quotations.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Malformed Request", "el cuerpo de la solicitud no es JSON válido")
		return
	}

	clientID := shared.ClientIDFromContext(r.Context())
	report, err := h.service.Generate(r.Context(), clientID, req.FormData)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			httpx.ValidationProblem(w, "la solicitud contiene campos inválidos", verr.Fields)
			return
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}
