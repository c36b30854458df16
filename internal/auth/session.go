package auth

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "noteboard_session"

// Sessions binds requests to an authenticated username through a signed cookie.
// The cookie payload is the only session state; nothing is persisted server
// side, so the session lives until the browser closes or Clear runs.
//
// The identity carried is the username string. Protected handlers re-resolve
// the numeric user id from it on every request.
type Sessions struct {
	store *sessions.CookieStore
}

func NewSessions(key string) *Sessions {
	store := sessions.NewCookieStore([]byte(key))
	store.MaxAge(0) // browser-session cookie
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	return &Sessions{store: store}
}

// Current returns the username bound to the request's session cookie. A
// missing, unsigned, or tampered cookie reads as anonymous.
func (s *Sessions) Current(r *http.Request) (string, bool) {
	session, _ := s.store.Get(r, sessionName)
	username, ok := session.Values["username"].(string)
	return username, ok && username != ""
}

// Issue binds the username to a fresh signed cookie on the response.
func (s *Sessions) Issue(w http.ResponseWriter, r *http.Request, username string) error {
	session, _ := s.store.Get(r, sessionName)
	session.Values["username"] = username
	return session.Save(r, w)
}

// Clear expires the session cookie. Clearing an already-anonymous session is a
// no-op.
func (s *Sessions) Clear(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.store.Get(r, sessionName)
	delete(session.Values, "username")
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
