package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"jokeshare/src/app/http/response"
)

// Recovery is a middleware that recovers from panics and renders the 500
// error page. It logs the panic with stack trace for debugging.
//
// This should be the first middleware in the chain to catch all panics.
//
// Usage:
//
//	router.Use(middleware.Recovery(logger))
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger(c, log).Error("panic recovered",
					"error", err,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"stack", string(debug.Stack()),
				)

				// Headers may already be out if the panic happened mid-render.
				if c.Writer.Written() {
					c.Abort()
					return
				}
				response.AbortWithAppError(c, http.StatusInternalServerError)
			}
		}()

		c.Next()
	}
}
