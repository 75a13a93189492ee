package middleware

import (
	"github.com/gin-gonic/gin"

	"jokeshare/src/app/http/session"
)

// UserIDKey is the context key for the session user id.
const UserIDKey = "user_id"

// Session verifies the session cookie once per request and stores the user
// id in the context under UserIDKey, where handlers and the access log read
// it. It never rejects a request; handlers decide what a missing session
// means.
func Session(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := sessions.GetUserID(c.Request); ok {
			c.Set(UserIDKey, userID)
		}
		c.Next()
	}
}

// GetUserID retrieves the session user id from the Gin context.
// Returns empty string if the request has no session.
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
