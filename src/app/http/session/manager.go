// Package session ties the session cookie to user accounts.
//
// Manager is the single entry point handlers use to find out who is making
// a request, to sign users in or up, and to end their session.
package session

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"jokeshare/src/core/domain"
	"jokeshare/src/core/ports"
	"jokeshare/src/core/usecase"
)

// LoginPath is where unauthenticated users are sent.
const LoginPath = "/login"

// Authorization is the result of RequireUserID.
// Exactly one of UserID and RedirectTo is set.
type Authorization struct {
	UserID     string
	RedirectTo string
}

// Authorized reports whether the request carried a valid session.
func (a Authorization) Authorized() bool {
	return a.UserID != ""
}

// Manager manages user sessions on top of a ports.SessionStore.
type Manager struct {
	store ports.SessionStore
	auth  *usecase.AuthService
	log   *slog.Logger
}

func NewManager(store ports.SessionStore, auth *usecase.AuthService, log *slog.Logger) *Manager {
	return &Manager{store: store, auth: auth, log: log}
}

// GetUserID returns the user id of the request's session, if any.
func (m *Manager) GetUserID(r *http.Request) (string, bool) {
	return m.store.Read(r)
}

// RequireUserID returns the session user or, when there is none, the login
// URL that brings the user back to the requested path.
func (m *Manager) RequireUserID(r *http.Request) Authorization {
	if userID, ok := m.store.Read(r); ok {
		return Authorization{UserID: userID}
	}
	return Authorization{RedirectTo: LoginURL(r.URL.Path)}
}

// GetUser loads the session user. It returns nil without an error when the
// request has no session or the user no longer exists.
func (m *Manager) GetUser(ctx context.Context, r *http.Request) (*domain.User, error) {
	userID, _ := m.store.Read(r)
	return m.UserByID(ctx, userID)
}

// UserByID loads the user behind an already verified session user id. An
// empty id or a deleted user yields nil without an error.
func (m *Manager) UserByID(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, nil
	}

	user, err := m.auth.UserByID(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			m.log.Debug("session user no longer exists", "user_id", userID)
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// Login checks the credentials. Unknown usernames and wrong passwords both
// return an unauthorized error.
func (m *Manager) Login(ctx context.Context, username, password string) (*domain.User, error) {
	return m.auth.Login(ctx, username, password)
}

// Register creates a user with a hashed password.
func (m *Manager) Register(ctx context.Context, username, password string) (*domain.User, error) {
	return m.auth.Register(ctx, username, password)
}

// UsernameTaken reports whether username is already registered.
func (m *Manager) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return m.auth.UsernameTaken(ctx, username)
}

// CreateUserSession starts a session for userID and redirects to redirectTo.
func (m *Manager) CreateUserSession(w http.ResponseWriter, r *http.Request, userID, redirectTo string) error {
	if err := m.store.Commit(w, userID); err != nil {
		return err
	}
	http.Redirect(w, r, SafeRedirect(redirectTo), http.StatusFound)
	return nil
}

// Logout clears the session and redirects to the login page.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) {
	m.store.Destroy(w)
	http.Redirect(w, r, LoginPath, http.StatusFound)
}

// LoginURL returns the login page URL that redirects back to path.
func LoginURL(path string) string {
	return LoginPath + "?" + url.Values{"redirectTo": {path}}.Encode()
}

// SafeRedirect returns to if it is a local path, otherwise the default
// jokes page. Control characters are rejected because browsers strip them,
// which can turn "/\t/host" into the protocol-relative "//host".
func SafeRedirect(to string) string {
	if len(to) == 0 || to[0] != '/' {
		return domain.DefaultRedirect
	}
	for i := 0; i < len(to); i++ {
		if to[i] < 0x20 || to[i] == 0x7f {
			return domain.DefaultRedirect
		}
	}
	if len(to) > 1 && (to[1] == '/' || to[1] == '\\') {
		return domain.DefaultRedirect
	}
	u, err := url.Parse(to)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return domain.DefaultRedirect
	}
	return to
}
