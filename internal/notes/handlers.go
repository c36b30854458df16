package notes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shadowwalkertech/noteboard/internal/auth"
	"github.com/shadowwalkertech/noteboard/internal/utils"
	"github.com/shadowwalkertech/noteboard/internal/web"
)

// Handler serves the session-gated note routes. The session carries only the
// username, so every request resolves the numeric user id through the
// credential store before touching notes.
type Handler struct {
	store Store
	users auth.CredentialStore
	pages *web.Renderer
}

func NewHandler(store Store, users auth.CredentialStore, pages *web.Renderer) *Handler {
	return &Handler{store: store, users: users, pages: pages}
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) (*auth.User, bool) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return nil, false
	}
	user, err := h.users.FindByUsername(r.Context(), username)
	if err != nil {
		// Covers a signed cookie for an account that no longer exists.
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return nil, false
	}
	return user, true
}

// Dashboard renders the owner's note list. A POST appends the submitted note
// first; blank submissions are dropped by the store without surfacing an error.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		if _, err := h.store.Append(r.Context(), user.ID, r.FormValue("note")); err != nil {
			log.Printf("[notes] append for user %d: %v", user.ID, err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}
	}

	list, err := h.store.ListByOwner(r.Context(), user.ID)
	if err != nil {
		log.Printf("[notes] list for user %d: %v", user.ID, err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	views := make([]web.NoteView, 0, len(list))
	for _, n := range list {
		views = append(views, web.NoteView{ID: n.ID, Content: n.Content})
	}
	h.pages.Dashboard(w, web.DashboardData{Username: user.Username, Notes: views})
}

// Delete removes a note by id and returns to the dashboard. Deleting an id
// that doesn't exist still redirects.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.currentUser(w, r); !ok {
		return
	}

	noteID, err := strconv.ParseUint(chi.URLParam(r, "noteID"), 10, 32)
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	if err := h.store.Delete(r.Context(), uint(noteID)); err != nil {
		log.Printf("[notes] delete %d: %v", noteID, err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
