package middleware

import (
	"net/http"

	"github.com/shadowwalkertech/noteboard/internal/utils"
)

// SessionResolver reports the username bound to the request's session cookie.
type SessionResolver interface {
	Current(r *http.Request) (string, bool)
}

// RequireSession gates a route on an authenticated session. Anonymous requests
// are redirected to the login page; authenticated ones continue with the
// username injected into the request context.
func RequireSession(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, ok := resolver.Current(r)
			if !ok {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := utils.WithUsername(r.Context(), username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SecurityHeaders sets baseline response headers for the HTML pages.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
