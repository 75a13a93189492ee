package domain

import "unicode/utf8"

// Minimum lengths, counted in runes. An emoji outside the Basic Multilingual
// Plane counts once here, where a UTF-16 length would count it twice.
const (
	MinUsernameLength    = 3
	MinPasswordLength    = 6
	MinJokeNameLength    = 2
	MinJokeContentLength = 10
)

// Form field names shared by validation and the HTML forms.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldName     = "name"
	FieldContent  = "content"
)

// ValidateUsername returns a message if username is too short.
func ValidateUsername(username string) string {
	if utf8.RuneCountInString(username) < MinUsernameLength {
		return "Usernames must be at least 3 characters long"
	}
	return ""
}

// ValidatePassword returns a message if password is too short.
func ValidatePassword(password string) string {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return "Passwords must be at least 6 characters long"
	}
	return ""
}

// ValidateJokeName returns a message if name is too short.
func ValidateJokeName(name string) string {
	if utf8.RuneCountInString(name) < MinJokeNameLength {
		return "That joke's name is too short"
	}
	return ""
}

// ValidateJokeContent returns a message if content is too short.
func ValidateJokeContent(content string) string {
	if utf8.RuneCountInString(content) < MinJokeContentLength {
		return "That joke is too short"
	}
	return ""
}

// ValidateCredentials runs the username and password rules.
func ValidateCredentials(username, password string) FieldErrors {
	errs := FieldErrors{}
	errs.Add(FieldUsername, ValidateUsername(username))
	errs.Add(FieldPassword, ValidatePassword(password))
	return errs
}

// ValidateJoke runs the joke name and content rules.
func ValidateJoke(name, content string) FieldErrors {
	errs := FieldErrors{}
	errs.Add(FieldName, ValidateJokeName(name))
	errs.Add(FieldContent, ValidateJokeContent(content))
	return errs
}
