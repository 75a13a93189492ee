// Package cookie implements ports.SessionStore as a signed session cookie.
//
// The cookie value is an HS256 JWT whose subject is the user id. Nothing
// is kept server side: a cookie is valid while its signature checks out
// and it has not expired.
package cookie

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"jokeshare/src/core/domain"
	"jokeshare/src/core/ports"
	"jokeshare/src/infra/config"
)

var _ ports.SessionStore = (*Store)(nil)

// Store reads and writes the session cookie.
type Store struct {
	name   string
	secret []byte
	maxAge time.Duration
	secure bool
	now    func() time.Time
}

// New creates a Store from the session configuration.
func New(cfg config.SessionConfig) *Store {
	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = domain.DefaultSessionMaxAge
	}
	return &Store{
		name:   cfg.CookieName,
		secret: []byte(cfg.Secret),
		maxAge: maxAge,
		secure: cfg.Secure,
		now:    time.Now,
	}
}

// Read returns the user id carried by the request's session cookie.
func (s *Store) Read(r *http.Request) (string, bool) {
	c, err := r.Cookie(s.name)
	if err != nil || c.Value == "" {
		return "", false
	}

	userID, err := s.parse(c.Value)
	if err != nil {
		return "", false
	}
	return userID, true
}

// Commit writes a fresh session cookie for userID.
func (s *Store) Commit(w http.ResponseWriter, userID string) error {
	now := s.now()
	expires := now.Add(s.maxAge)

	value, err := s.sign(userID, now, expires)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(s.maxAge / time.Second),
		Secure:   s.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Destroy expires the session cookie.
func (s *Store) Destroy(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Secure:   s.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Store) sign(userID string, now, expires time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return token, nil
}

func (s *Store) parse(value string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(value, &claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("session has no subject")
	}
	return claims.Subject, nil
}
