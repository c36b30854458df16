package auth

import (
	"github.com/go-chi/chi/v5"
)

// Mount attaches the public auth routes. Register and login answer GET with
// the form page and POST with the submission.
func (h *Handler) Mount(r chi.Router) {
	r.Get("/", h.Landing)
	r.Get("/register", h.RegisterPage)
	r.Post("/register", h.Register)
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.Login)
	r.Get("/logout", h.Logout)
}
