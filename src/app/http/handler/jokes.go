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
	"jokeshare/src/app/middleware"
	"jokeshare/src/core/domain"
	"jokeshare/src/core/usecase"
)

// Jokes boundary messages.
const (
	MsgNoJokes          = "There are no jokes to display."
	MsgRandomFailed     = "I did a whoopsies."
	MsgLoginToCreate    = "You must be logged in to create a joke."
	MsgDeleteMissing    = "Can't delete what does not exist"
	msgJokeUnknownFmt   = "Huh? What the heck is \"%s\"?"
	msgNotYourJokeFmt   = "Sorry, but %s is not your joke."
	msgJokeLoadErrorFmt = "There was an error loading joke by the id %s. Sorry."
)

const newJokePath = "/jokes/new"

// JokesHandler serves every page under /jokes.
type JokesHandler struct {
	jokes    *usecase.JokeService
	sessions *session.Manager
	log      *slog.Logger
}

func NewJokesHandler(jokes *usecase.JokeService, sessions *session.Manager, log *slog.Logger) *JokesHandler {
	return &JokesHandler{jokes: jokes, sessions: sessions, log: log}
}

// layout loads the navigation shared by the jokes pages. On failure it
// renders the root error page and returns false.
func (h *JokesHandler) layout(c *gin.Context, activeID string) (view.JokesLayout, bool) {
	ctx := c.Request.Context()

	user, err := h.sessions.UserByID(ctx, middleware.GetUserID(c))
	if err != nil {
		response.FromDomainError(c, err)
		return view.JokesLayout{}, false
	}

	recent, err := h.jokes.Recent(ctx)
	if err != nil {
		response.FromDomainError(c, err)
		return view.JokesLayout{}, false
	}

	return view.JokesLayout{User: user, Jokes: recent, ActiveID: activeID}, true
}

// boundary renders message inside the jokes layout with status.
func (h *JokesHandler) boundary(c *gin.Context, status int, page view.JokesPage, message string) {
	page.Message = message
	if page.Document == (view.Document{}) {
		page.Document = view.JokesDocument()
	}
	response.HTML(c, status, response.PageJokesBoundary, page)
}

// Index shows a random joke.
// GET /jokes
func (h *JokesHandler) Index(c *gin.Context) {
	layout, ok := h.layout(c, "")
	if !ok {
		return
	}
	page := view.JokesPage{Document: view.JokesDocument(), Layout: layout}

	random, err := h.jokes.Random(c.Request.Context())
	if err != nil {
		if domain.IsNotFound(err) {
			h.boundary(c, http.StatusNotFound, page, MsgNoJokes)
			return
		}
		_ = c.Error(err)
		h.boundary(c, http.StatusInternalServerError, page, MsgRandomFailed)
		return
	}

	page.Joke = random.Joke
	page.Jokester = random.Jokester
	response.HTML(c, http.StatusOK, response.PageJokesIndex, page)
}

// Show renders a single joke, with a delete button for its jokester.
// GET /jokes/:jokeId
func (h *JokesHandler) Show(c *gin.Context) {
	id := c.Param("jokeId")
	layout, ok := h.layout(c, id)
	if !ok {
		return
	}
	page := view.JokesPage{Document: view.JokeDocument(nil), Layout: layout}

	viewerID := middleware.GetUserID(c)
	jv, err := h.jokes.Get(c.Request.Context(), id, viewerID)
	if err != nil {
		if domain.IsNotFound(err) {
			h.boundary(c, http.StatusNotFound, page, fmt.Sprintf(msgJokeUnknownFmt, id))
			return
		}
		_ = c.Error(err)
		h.boundary(c, http.StatusInternalServerError, page, fmt.Sprintf(msgJokeLoadErrorFmt, id))
		return
	}

	page.Document = view.JokeDocument(jv.Joke)
	page.Joke = jv.Joke
	page.IsOwner = jv.IsOwner
	response.HTML(c, http.StatusOK, response.PageJokeShow, page)
}

// Action handles form actions on a joke. Only delete is supported.
// POST /jokes/:jokeId
func (h *JokesHandler) Action(c *gin.Context) {
	var form dto.JokeActionForm
	if err := c.ShouldBind(&form); err != nil {
		response.AppError(c, http.StatusBadRequest)
		return
	}

	auth := h.sessions.RequireUserID(c.Request)
	if !auth.Authorized() {
		response.Redirect(c, auth.RedirectTo)
		return
	}

	id := c.Param("jokeId")
	err := h.jokes.Delete(c.Request.Context(), id, auth.UserID)
	if err == nil {
		response.Redirect(c, "/jokes")
		return
	}

	layout, ok := h.layout(c, id)
	if !ok {
		return
	}
	page := view.JokesPage{Document: view.JokeDocument(nil), Layout: layout}

	switch {
	case domain.IsNotFound(err):
		h.boundary(c, http.StatusNotFound, page, MsgDeleteMissing)
	case domain.IsForbidden(err):
		h.boundary(c, http.StatusUnauthorized, page, fmt.Sprintf(msgNotYourJokeFmt, id))
	default:
		_ = c.Error(err)
		h.boundary(c, http.StatusInternalServerError, page, fmt.Sprintf(msgJokeLoadErrorFmt, id))
	}
}

// New renders the new joke form, or a 401 boundary when signed out.
// GET /jokes/new
func (h *JokesHandler) New(c *gin.Context) {
	layout, ok := h.layout(c, "")
	if !ok {
		return
	}
	page := view.JokesPage{Document: view.JokesDocument(), Layout: layout}

	if middleware.GetUserID(c) == "" {
		h.unauthorized(c, page)
		return
	}
	response.HTML(c, http.StatusOK, response.PageJokeNew, page)
}

// Create stores a new joke for the session user.
// POST /jokes/new
func (h *JokesHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		h.renderUnauthorized(c)
		return
	}

	var form dto.JokeForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Debug("joke form rejected", "missing", dto.MissingFields(err))
		h.renderForm(c, http.StatusBadRequest, view.JokeForm{FormError: MsgFormNotSubmitted})
		return
	}

	name, content := *form.Name, *form.Content
	joke, err := h.jokes.Create(c.Request.Context(), userID, name, content)
	if err != nil {
		switch {
		case domain.IsValidationError(err):
			h.renderForm(c, http.StatusBadRequest, view.JokeForm{
				Name:        name,
				Content:     content,
				FieldErrors: domain.FieldErrorsOf(err),
			})
		case domain.IsUnauthorized(err):
			h.renderUnauthorized(c)
		default:
			_ = c.Error(err)
			h.renderForm(c, http.StatusInternalServerError, view.JokeForm{
				Name:      name,
				Content:   content,
				FormError: response.MsgUnexpected,
			})
		}
		return
	}

	response.Redirect(c, "/jokes/"+joke.ID)
}

func (h *JokesHandler) renderForm(c *gin.Context, status int, form view.JokeForm) {
	layout, ok := h.layout(c, "")
	if !ok {
		return
	}
	response.HTML(c, status, response.PageJokeNew, view.JokesPage{
		Document: view.JokesDocument(),
		Layout:   layout,
		Form:     form,
	})
}

func (h *JokesHandler) renderUnauthorized(c *gin.Context) {
	layout, ok := h.layout(c, "")
	if !ok {
		return
	}
	h.unauthorized(c, view.JokesPage{Document: view.JokesDocument(), Layout: layout})
}

func (h *JokesHandler) unauthorized(c *gin.Context, page view.JokesPage) {
	page.LoginURL = session.LoginURL(newJokePath)
	h.boundary(c, http.StatusUnauthorized, page, MsgLoginToCreate)
}
