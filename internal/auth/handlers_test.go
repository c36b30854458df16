package auth_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shadowwalkertech/noteboard/internal/auth"
	"github.com/shadowwalkertech/noteboard/internal/middleware"
	"github.com/shadowwalkertech/noteboard/internal/utils"
	"github.com/shadowwalkertech/noteboard/internal/web"
)

// fakeCredentialStore is an in-memory auth.CredentialStore for handler tests.
type fakeCredentialStore struct {
	nextID uint
	users  map[string]*auth.User
}

func newFakeCredentialStore() *fakeCredentialStore {
	return &fakeCredentialStore{users: map[string]*auth.User{}}
}

func (f *fakeCredentialStore) Register(ctx context.Context, username, passwordHash string) (uint, error) {
	if _, ok := f.users[username]; ok {
		return 0, auth.ErrDuplicateUsername
	}
	f.nextID++
	f.users[username] = &auth.User{ID: f.nextID, Username: username, PasswordHash: passwordHash}
	return f.nextID, nil
}

func (f *fakeCredentialStore) FindByUsername(ctx context.Context, username string) (*auth.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	return user, nil
}

// newAuthServer wires the auth handler onto a router the way main does, plus a
// session-gated dashboard stub so tests can observe authenticated state.
func newAuthServer(t *testing.T) (*httptest.Server, *fakeCredentialStore) {
	t.Helper()

	creds := newFakeCredentialStore()
	sessions := auth.NewSessions("test-secret-key")
	handler := auth.NewHandler(creds, auth.NewBcryptHasher(), sessions, web.NewRenderer())

	r := chi.NewRouter()
	handler.Mount(r)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(sessions))
		r.Get("/dashboard", func(w http.ResponseWriter, r *http.Request) {
			username, _ := utils.GetUsernameFromContext(r.Context())
			fmt.Fprintf(w, "dashboard for %s", username)
		})
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server, creds
}

// newClient returns an http.Client with a fresh cookie jar that does not
// follow redirects, so tests can assert on Location headers.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar.New: %v", err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func postForm(t *testing.T, client *http.Client, target string, form url.Values) *http.Response {
	t.Helper()
	resp, err := client.PostForm(target, form)
	if err != nil {
		t.Fatalf("POST %s: %v", target, err)
	}
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

func credentials(username, password string) url.Values {
	return url.Values{"username": {username}, "password": {password}}
}

func TestRegisterRedirectsToLogin(t *testing.T) {
	server, _ := newAuthServer(t)
	client := newClient(t)

	resp := postForm(t, client, server.URL+"/register", credentials("alice", "pw1"))
	readBody(t, resp)

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %q", loc)
	}
}

// TestDuplicateRegistration verifies the second registration of a username
// fails with "User already exists" and leaves the first user's hash untouched.
func TestDuplicateRegistration(t *testing.T) {
	server, creds := newAuthServer(t)
	client := newClient(t)

	readBody(t, postForm(t, client, server.URL+"/register", credentials("alice", "pw1")))
	firstHash := creds.users["alice"].PasswordHash

	resp := postForm(t, client, server.URL+"/register", credentials("alice", "pw2"))
	body := readBody(t, resp)

	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "User already exists") {
		t.Errorf("expected body to contain %q, got: %q", "User already exists", body)
	}
	if creds.users["alice"].PasswordHash != firstHash {
		t.Error("expected first user's password hash to be unaffected")
	}
}

func TestRegisterMissingFields(t *testing.T) {
	server, _ := newAuthServer(t)
	client := newClient(t)

	resp := postForm(t, client, server.URL+"/register", url.Values{"username": {"alice"}})
	readBody(t, resp)

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for missing password, got %d", resp.StatusCode)
	}
}

// TestLoginSetsSessionCookie verifies a successful login redirects to the
// dashboard with a session cookie, and that the cookie authenticates
// subsequent requests.
func TestLoginSetsSessionCookie(t *testing.T) {
	server, _ := newAuthServer(t)
	client := newClient(t)

	readBody(t, postForm(t, client, server.URL+"/register", credentials("alice", "pw1")))

	resp := postForm(t, client, server.URL+"/login", credentials("alice", "pw1"))
	readBody(t, resp)

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303 from login, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/dashboard" {
		t.Errorf("expected redirect to /dashboard, got %q", loc)
	}
	if setCookie := resp.Header.Get("Set-Cookie"); !strings.Contains(setCookie, "noteboard_session") {
		t.Errorf("expected Set-Cookie to contain the session cookie, got: %q", setCookie)
	}

	dashResp, err := client.Get(server.URL + "/dashboard")
	if err != nil {
		t.Fatalf("GET /dashboard: %v", err)
	}
	dashBody := readBody(t, dashResp)
	if dashResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /dashboard, got %d", dashResp.StatusCode)
	}
	if !strings.Contains(dashBody, "alice") {
		t.Errorf("expected dashboard for alice, got: %q", dashBody)
	}
}

// TestLoginFailuresIndistinguishable verifies that an unknown username and a
// wrong password produce byte-identical responses.
func TestLoginFailuresIndistinguishable(t *testing.T) {
	server, _ := newAuthServer(t)
	client := newClient(t)

	readBody(t, postForm(t, client, server.URL+"/register", credentials("alice", "pw1")))

	unknownResp := postForm(t, client, server.URL+"/login", credentials("nobody", "pw1"))
	unknownBody := readBody(t, unknownResp)

	wrongResp := postForm(t, client, server.URL+"/login", credentials("alice", "wrong"))
	wrongBody := readBody(t, wrongResp)

	if unknownResp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for unknown user, got %d", unknownResp.StatusCode)
	}
	if wrongResp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for wrong password, got %d", wrongResp.StatusCode)
	}
	if unknownBody != wrongBody {
		t.Errorf("expected identical failure bodies, got %q vs %q", unknownBody, wrongBody)
	}
	if !strings.Contains(unknownBody, "Invalid credentials") {
		t.Errorf("expected body to contain %q, got: %q", "Invalid credentials", unknownBody)
	}
}

// TestLogoutClearsSession verifies logout invalidates the session and that
// logging out twice is a no-op.
func TestLogoutClearsSession(t *testing.T) {
	server, _ := newAuthServer(t)
	client := newClient(t)

	readBody(t, postForm(t, client, server.URL+"/register", credentials("alice", "pw1")))
	readBody(t, postForm(t, client, server.URL+"/login", credentials("alice", "pw1")))

	logoutResp, err := client.Get(server.URL + "/logout")
	if err != nil {
		t.Fatalf("GET /logout: %v", err)
	}
	readBody(t, logoutResp)
	if logoutResp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303 from /logout, got %d", logoutResp.StatusCode)
	}
	if loc := logoutResp.Header.Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %q", loc)
	}

	// Dashboard access now redirects to login.
	dashResp, err := client.Get(server.URL + "/dashboard")
	if err != nil {
		t.Fatalf("GET /dashboard after logout: %v", err)
	}
	readBody(t, dashResp)
	if dashResp.StatusCode != http.StatusSeeOther {
		t.Errorf("expected 303 after logout, got %d", dashResp.StatusCode)
	}
	if loc := dashResp.Header.Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %q", loc)
	}

	// Second logout is a no-op, same redirect.
	againResp, err := client.Get(server.URL + "/logout")
	if err != nil {
		t.Fatalf("GET /logout again: %v", err)
	}
	readBody(t, againResp)
	if againResp.StatusCode != http.StatusSeeOther {
		t.Errorf("expected 303 from repeated logout, got %d", againResp.StatusCode)
	}
}

// TestLandingRedirectsAuthenticated verifies the landing page redirects
// logged-in users to the dashboard and renders for anonymous visitors.
func TestLandingRedirectsAuthenticated(t *testing.T) {
	server, _ := newAuthServer(t)
	client := newClient(t)

	anonResp, err := client.Get(server.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	anonBody := readBody(t, anonResp)
	if anonResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 landing for anonymous, got %d", anonResp.StatusCode)
	}
	if !strings.Contains(anonBody, "/register") {
		t.Errorf("expected landing page to link registration, got: %q", anonBody)
	}

	readBody(t, postForm(t, client, server.URL+"/register", credentials("alice", "pw1")))
	readBody(t, postForm(t, client, server.URL+"/login", credentials("alice", "pw1")))

	authResp, err := client.Get(server.URL + "/")
	if err != nil {
		t.Fatalf("GET / authenticated: %v", err)
	}
	readBody(t, authResp)
	if authResp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303 for authenticated landing, got %d", authResp.StatusCode)
	}
	if loc := authResp.Header.Get("Location"); loc != "/dashboard" {
		t.Errorf("expected redirect to /dashboard, got %q", loc)
	}
}
