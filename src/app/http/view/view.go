// Package view holds the data passed to the HTML templates.
//
// Every page embeds Document for the <head> metadata. Pages under /jokes
// also embed JokesLayout, which renders the navigation around them.
package view

import (
	"fmt"

	"jokeshare/src/core/domain"
)

// Default document metadata.
const (
	DefaultTitle       = "Remix: So great, it's funny!"
	DefaultDescription = "Learn Remix and laugh at the same time!"
)

// Document is the root HTML document metadata.
type Document struct {
	Title       string
	Description string
}

// JokesLayout is the navigation shared by every /jokes page.
type JokesLayout struct {
	// User is nil when nobody is signed in.
	User     *domain.User
	Jokes    []domain.JokeListItem
	ActiveID string
}

// JokeForm is the state of the new joke form.
type JokeForm struct {
	Name        string
	Content     string
	FieldErrors domain.FieldErrors
	FormError   string
}

// JokesPage renders any page inside the jokes layout.
type JokesPage struct {
	Document
	Layout JokesLayout

	// Joke and Jokester are set on the random joke and detail pages.
	Joke     *domain.Joke
	Jokester *domain.User
	IsOwner  bool

	// Message is shown by the boundary page, with a link to LoginURL
	// when it is set.
	Message  string
	LoginURL string

	Form JokeForm
}

// LoginPage renders the login and registration form.
type LoginPage struct {
	Document
	RedirectTo  string
	LoginType   string
	Username    string
	FormError   string
	FieldErrors domain.FieldErrors
}

// ErrorPage renders the root error boundary.
type ErrorPage struct {
	Document
	Status     int
	StatusText string
	Message    string
}

// HomeDocument is the landing page metadata.
func HomeDocument() Document {
	return Document{
		Title:       DefaultTitle,
		Description: "Remix jokes app. Learn Remix and laugh at the same time!",
	}
}

// JokesDocument is the metadata for jokes pages without a joke of their own.
func JokesDocument() Document {
	return Document{Title: DefaultTitle, Description: DefaultDescription}
}

// LoginDocument is the login page metadata.
func LoginDocument() Document {
	return Document{
		Title:       "Remix Jokes | Login",
		Description: "Login to submit your own jokes to Remix Jokes!",
	}
}

// JokeDocument is the metadata for a joke's detail page.
func JokeDocument(j *domain.Joke) Document {
	if j == nil {
		return Document{Title: "No joke", Description: "No joke found"}
	}
	return Document{
		Title:       fmt.Sprintf("%s joke", j.Name),
		Description: fmt.Sprintf("Enjoy the %q joke and much more", j.Name),
	}
}

// StatusDocument is the metadata for an error page with an HTTP status.
func StatusDocument(status int, statusText string) Document {
	return Document{
		Title:       fmt.Sprintf("%d %s", status, statusText),
		Description: DefaultDescription,
	}
}

// CrashDocument is the metadata for the unexpected error page.
func CrashDocument() Document {
	return Document{Title: "Uh-oh!", Description: DefaultDescription}
}
