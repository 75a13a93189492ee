package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokeshare/src/app/http/session"
	"jokeshare/src/core/usecase"
	"jokeshare/src/infra/config"
	"jokeshare/src/infra/cookie"
	"jokeshare/src/infra/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID_GeneratesID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/", func(c *gin.Context) { seen = GetRequestID(c) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_ReusesValidHeader(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", 200))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
}

func TestLogging_LevelFollowsStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(config.LogConfig{Level: "info", Format: "json"}, &buf)

	r := gin.New()
	r.Use(RequestID(), Logging(log))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
		c.Status(http.StatusInternalServerError)
	})

	for _, path := range []string{"/ok", "/missing", "/boom"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"level":"INFO"`)
	assert.Contains(t, lines[1], `"level":"WARN"`)
	assert.Contains(t, lines[2], `"level":"ERROR"`)
	assert.Contains(t, lines[2], assert.AnError.Error())
}

func TestSession_StoresVerifiedUserID(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := cookie.New(config.SessionConfig{Secret: "test-secret", CookieName: "RJ_session", MaxAge: time.Hour})
	sessions := session.NewManager(store, usecase.NewAuthService(nil, nil, log), log)

	r := gin.New()
	r.Use(Session(sessions))
	var seen string
	r.GET("/", func(c *gin.Context) { seen = GetUserID(c) })

	signed := httptest.NewRecorder()
	require.NoError(t, store.Commit(signed, "u1"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range signed.Result().Cookies() {
		req.AddCookie(ck)
	}
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "u1", seen)

	seen = "unset"
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "RJ_session", Value: "forged"})
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Empty(t, seen)
}
