package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jokeshare/src/app/http/response"
	"jokeshare/src/app/http/view"
)

// HomeHandler serves the landing page.
type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home renders the landing page.
// GET /
func (h *HomeHandler) Home(c *gin.Context) {
	response.HTML(c, http.StatusOK, response.PageHome, view.HomeDocument())
}

// NotFound renders the root 404 page for unknown routes.
func (h *HomeHandler) NotFound(c *gin.Context) {
	response.AppError(c, http.StatusNotFound)
}
