package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jokeshare/src/app/http/dto"
	"jokeshare/src/app/http/response"
	"jokeshare/src/app/http/session"
	"jokeshare/src/app/http/view"
	"jokeshare/src/core/domain"
)

// Login form messages.
const (
	MsgFormNotSubmitted = "Form not submitted correctly."
	MsgBadCredentials   = "Username/Password combination is incorrect"
	MsgRegisterFailed   = "Something went wrong trying to create a new user."
	MsgLoginTypeInvalid = "Login type invalid"
	msgUsernameTakenFmt = "User with username %s already exists"
)

// AuthHandler handles login, registration and logout.
type AuthHandler struct {
	sessions *session.Manager
	log      *slog.Logger
}

func NewAuthHandler(sessions *session.Manager, log *slog.Logger) *AuthHandler {
	return &AuthHandler{sessions: sessions, log: log}
}

// LoginPage renders the login form.
// GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	response.HTML(c, http.StatusOK, response.PageLogin, view.LoginPage{
		Document:   view.LoginDocument(),
		RedirectTo: c.Query("redirectTo"),
		LoginType:  dto.LoginTypeLogin,
	})
}

// Login signs a user in or registers a new one, depending on loginType.
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Debug("login form rejected", "missing", dto.MissingFields(err))
		h.badRequest(c, view.LoginPage{
			RedirectTo: c.PostForm("redirectTo"),
			FormError:  MsgFormNotSubmitted,
		})
		return
	}

	ctx := c.Request.Context()
	loginType, username, password := *form.LoginType, *form.Username, *form.Password

	// The password is never sent back to the browser.
	page := view.LoginPage{
		RedirectTo: form.RedirectTo,
		LoginType:  loginType,
		Username:   username,
	}

	if errs := domain.ValidateCredentials(username, password); len(errs) > 0 {
		page.FieldErrors = errs
		h.badRequest(c, page)
		return
	}

	switch loginType {
	case dto.LoginTypeLogin:
		user, err := h.sessions.Login(ctx, username, password)
		if err != nil {
			if domain.IsUnauthorized(err) {
				page.FormError = MsgBadCredentials
				h.badRequest(c, page)
				return
			}
			response.FromDomainError(c, err)
			return
		}
		h.startSession(c, user.ID, form.RedirectTo)

	case dto.LoginTypeRegister:
		taken, err := h.sessions.UsernameTaken(ctx, username)
		if err != nil {
			response.FromDomainError(c, err)
			return
		}
		if taken {
			page.FormError = fmt.Sprintf(msgUsernameTakenFmt, username)
			h.badRequest(c, page)
			return
		}

		user, err := h.sessions.Register(ctx, username, password)
		if err != nil {
			if domain.IsConflict(err) {
				page.FormError = fmt.Sprintf(msgUsernameTakenFmt, username)
			} else {
				_ = c.Error(err)
				page.FormError = MsgRegisterFailed
			}
			h.badRequest(c, page)
			return
		}
		h.startSession(c, user.ID, form.RedirectTo)

	default:
		page.FormError = MsgLoginTypeInvalid
		h.badRequest(c, page)
	}
}

// Logout ends the session and sends the user to the login page.
// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Logout(c.Writer, c.Request)
}

// LogoutRedirect sends stray GET requests home.
// GET /logout
func (h *AuthHandler) LogoutRedirect(c *gin.Context) {
	response.Redirect(c, "/")
}

func (h *AuthHandler) startSession(c *gin.Context, userID, redirectTo string) {
	if err := h.sessions.CreateUserSession(c.Writer, c.Request, userID, redirectTo); err != nil {
		response.FromDomainError(c, err)
	}
}

func (h *AuthHandler) badRequest(c *gin.Context, page view.LoginPage) {
	page.Document = view.LoginDocument()
	if page.LoginType == "" {
		page.LoginType = dto.LoginTypeLogin
	}
	response.HTML(c, http.StatusBadRequest, response.PageLogin, page)
}
