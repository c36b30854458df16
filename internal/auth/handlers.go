package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/shadowwalkertech/noteboard/internal/web"
)

// Handler serves the public auth routes: landing, register, login, logout.
type Handler struct {
	creds    CredentialStore
	hasher   PasswordHasher
	sessions *Sessions
	pages    *web.Renderer
}

func NewHandler(creds CredentialStore, hasher PasswordHasher, sessions *Sessions, pages *web.Renderer) *Handler {
	return &Handler{creds: creds, hasher: hasher, sessions: sessions, pages: pages}
}

// Landing redirects authenticated visitors straight to the dashboard.
func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.Current(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.pages.Landing(w)
}

func (h *Handler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.pages.Register(w)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	// Usernames are taken as submitted: case-sensitive, no trimming.
	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		http.Error(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	hashed, err := h.hasher.Hash(password)
	if err != nil {
		http.Error(w, "Server error hashing password", http.StatusInternalServerError)
		return
	}

	if _, err := h.creds.Register(r.Context(), username, hashed); err != nil {
		if errors.Is(err, ErrDuplicateUsername) {
			http.Error(w, "User already exists", http.StatusConflict)
			return
		}
		log.Printf("[auth] register %q: %v", username, err)
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.pages.Login(w)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		http.Error(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	// Unknown user and wrong password collapse into one response so the login
	// form can't be used to enumerate usernames.
	user, err := h.creds.FindByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		log.Printf("[auth] login %q: %v", username, err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	if !h.hasher.Verify(password, user.PasswordHash) {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	if err := h.sessions.Issue(w, r, user.Username); err != nil {
		log.Printf("[auth] issue session for %q: %v", username, err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout clears the session cookie. Logging out while anonymous is a no-op.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(w, r); err != nil {
		log.Printf("[auth] clear session: %v", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
