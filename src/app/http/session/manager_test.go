package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"jokeshare/src/core/domain"
	"jokeshare/src/core/usecase"
	"jokeshare/src/infra/config"
	"jokeshare/src/infra/cookie"
	"jokeshare/src/infra/password"
)

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	args := m.Called(ctx, username, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUsers) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUsers) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newTestManager(users *mockUsers) *Manager {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := cookie.New(config.SessionConfig{
		Secret:     "test-secret",
		CookieName: "RJ_session",
		MaxAge:     time.Hour,
	})
	auth := usecase.NewAuthService(users, password.NewBcrypt(bcrypt.MinCost), log)
	return NewManager(store, auth, log)
}

// signIn creates a session for userID and returns a request carrying it.
func signIn(t *testing.T, m *Manager, userID, path string) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, m.CreateUserSession(rec, req, userID, "/jokes"))

	next := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range rec.Result().Cookies() {
		next.AddCookie(c)
	}
	return next
}

func TestCreateUserSession(t *testing.T) {
	m := newTestManager(&mockUsers{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, m.CreateUserSession(rec, req, "u1", "/jokes/abc"))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/jokes/abc", rec.Header().Get("Location"))
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "RJ_session=")
}

func TestCreateUserSession_RejectsForeignRedirect(t *testing.T) {
	m := newTestManager(&mockUsers{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, m.CreateUserSession(rec, req, "u1", "https://evil.example"))

	assert.Equal(t, "/jokes", rec.Header().Get("Location"))

	for _, to := range []string{"/\t/evil.example", "/\n/evil.example", "/\r/evil.example"} {
		rec = httptest.NewRecorder()
		require.NoError(t, m.CreateUserSession(rec, req, "u1", to))
		assert.Equal(t, "/jokes", rec.Header().Get("Location"), "redirectTo %q", to)
	}
}

func TestGetUserID(t *testing.T) {
	m := newTestManager(&mockUsers{})

	_, ok := m.GetUserID(httptest.NewRequest(http.MethodGet, "/jokes", nil))
	assert.False(t, ok)

	userID, ok := m.GetUserID(signIn(t, m, "u1", "/jokes"))
	assert.True(t, ok)
	assert.Equal(t, "u1", userID)
}

func TestRequireUserID(t *testing.T) {
	m := newTestManager(&mockUsers{})

	auth := m.RequireUserID(httptest.NewRequest(http.MethodPost, "/jokes/abc", nil))
	assert.False(t, auth.Authorized())

	loc, err := url.Parse(auth.RedirectTo)
	require.NoError(t, err)
	assert.Equal(t, "/login", loc.Path)
	assert.Equal(t, "/jokes/abc", loc.Query().Get("redirectTo"))

	auth = m.RequireUserID(signIn(t, m, "u1", "/jokes/abc"))
	assert.True(t, auth.Authorized())
	assert.Equal(t, "u1", auth.UserID)
	assert.Empty(t, auth.RedirectTo)
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()
	users := &mockUsers{}
	m := newTestManager(users)
	kody := &domain.User{ID: "u1", Username: "kody"}

	t.Run("no session", func(t *testing.T) {
		user, err := m.GetUser(ctx, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("existing user", func(t *testing.T) {
		users.On("FindUserByID", ctx, "u1").Return(kody, nil).Once()
		user, err := m.GetUser(ctx, signIn(t, m, "u1", "/jokes"))
		require.NoError(t, err)
		assert.Equal(t, kody, user)
	})

	t.Run("deleted user", func(t *testing.T) {
		users.On("FindUserByID", ctx, "gone").Return(nil, domain.NewNotFoundError("user")).Once()
		user, err := m.GetUser(ctx, signIn(t, m, "gone", "/jokes"))
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("storage failure", func(t *testing.T) {
		users.On("FindUserByID", ctx, "u2").Return(nil, domain.NewStorageError("find user by id", errors.New("down"))).Once()
		user, err := m.GetUser(ctx, signIn(t, m, "u2", "/jokes"))
		assert.True(t, domain.IsStorage(err))
		assert.Nil(t, user)
	})

	t.Run("empty id skips lookup", func(t *testing.T) {
		user, err := m.UserByID(ctx, "")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	users.AssertExpectations(t)
}

func TestLogout(t *testing.T) {
	m := newTestManager(&mockUsers{})

	rec := httptest.NewRecorder()
	m.Logout(rec, signIn(t, m, "u1", "/logout"))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestSafeRedirect(t *testing.T) {
	cases := map[string]string{
		"":                     "/jokes",
		"/jokes/new":           "/jokes/new",
		"/":                    "/",
		"//evil.example":       "/jokes",
		"/\\evil.example":      "/jokes",
		"https://evil.example": "/jokes",
		"jokes":                "/jokes",
		"/\t/evil.example":     "/jokes",
		"/\n/evil.example":     "/jokes",
		"/\r/evil.example":     "/jokes",
		"/jokes\x7f":           "/jokes",
		"/jokes?x=1#top":       "/jokes?x=1#top",
	}
	for in, want := range cases {
		assert.Equal(t, want, SafeRedirect(in), in)
	}
}
