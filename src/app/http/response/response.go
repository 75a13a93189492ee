// Package response renders HTML pages and maps domain errors to HTTP status
// codes, so every handler answers in the same way.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jokeshare/src/app/http/view"
	"jokeshare/src/core/domain"
)

// Template names registered by the web package.
const (
	PageHome          = "home.html"
	PageLogin         = "login.html"
	PageJokesIndex    = "jokes_index.html"
	PageJokeShow      = "jokes_show.html"
	PageJokeNew       = "jokes_new.html"
	PageJokesBoundary = "jokes_boundary.html"
	PageError         = "error.html"
)

// MsgUnexpected is shown when a request fails for reasons unrelated to its input.
const MsgUnexpected = "Something unexpected went wrong. Sorry about that."

// HTML renders page with data.
func HTML(c *gin.Context, status int, page string, data any) {
	c.HTML(status, page, data)
}

// Redirect sends a 302 to location.
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// StatusOf maps a domain error to the HTTP status used in this app.
// A wrong owner is reported as 401, not 403.
func StatusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case domain.IsNotFound(err):
		return http.StatusNotFound
	case domain.IsValidationError(err), domain.IsConflict(err):
		return http.StatusBadRequest
	case domain.IsUnauthorized(err), domain.IsForbidden(err):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// AppError renders the root error page for status.
func AppError(c *gin.Context, status int) {
	page := view.ErrorPage{
		Status:     status,
		StatusText: http.StatusText(status),
	}
	switch {
	case status >= http.StatusInternalServerError:
		page.Document = view.CrashDocument()
		page.Message = MsgUnexpected
	default:
		page.Document = view.StatusDocument(status, page.StatusText)
	}
	c.HTML(status, PageError, page)
}

// AbortWithAppError renders the root error page and stops the handler chain.
func AbortWithAppError(c *gin.Context, status int) {
	AppError(c, status)
	c.Abort()
}

// FromDomainError renders the root error page for err. Errors that map to
// 500 are attached to the context for the access log.
func FromDomainError(c *gin.Context, err error) {
	status := StatusOf(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	AppError(c, status)
}
