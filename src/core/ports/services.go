package ports

import (
	"net/http"
)

// SessionStore reads and writes the signed session cookie.
type SessionStore interface {
	// Read returns the user id held by the request's session, if the cookie
	// is present, authentic and unexpired.
	Read(r *http.Request) (userID string, ok bool)

	// Commit issues a fresh session for userID on w.
	Commit(w http.ResponseWriter, userID string) error

	// Destroy clears the session cookie on w.
	Destroy(w http.ResponseWriter)
}

// PasswordHasher performs one-way, salted password hashing.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare reports whether password matches hash.
	Compare(hash, password string) bool
}
