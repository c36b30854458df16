package notes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Mount attaches the note routes behind the session gate.
func (h *Handler) Mount(r chi.Router, requireSession func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(requireSession)
		r.Get("/dashboard", h.Dashboard)
		r.Post("/dashboard", h.Dashboard)
		r.Get("/delete/{noteID}", h.Delete)
	})
}
