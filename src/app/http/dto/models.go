package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// LoginForm is the payload of POST /login.
type LoginForm struct {
	LoginType  *string `form:"loginType" json:"loginType" binding:"required"`
	Username   *string `form:"username" json:"username" binding:"required"`
	Password   *string `form:"password" json:"password" binding:"required"`
	RedirectTo string  `form:"redirectTo" json:"redirectTo"`
}

// Login type values.
const (
	LoginTypeLogin    = "login"
	LoginTypeRegister = "register"
)

// JokeForm is the payload of POST /jokes/new.
type JokeForm struct {
	Name    *string `form:"name" json:"name" binding:"required"`
	Content *string `form:"content" json:"content" binding:"required"`
}

// JokeActionForm is the payload of POST /jokes/:jokeId.
type JokeActionForm struct {
	Method string `form:"_method" json:"_method" binding:"required,oneof=delete"`
}

// MethodDelete is the only supported JokeActionForm method.
const MethodDelete = "delete"

// MissingFields lists the form fields rejected by binding validation.
// It returns nil if err is not a validation failure.
func MissingFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, lowerFirst(fe.Field()))
	}
	return fields
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
