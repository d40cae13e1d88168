package quote

import "github.com/go-chi/chi/v5"

// MountRoutes registers the quotation routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/quotations", h.Generate)
}
