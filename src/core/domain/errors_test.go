package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrorIs(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("joke")))
	assert.True(t, IsConflict(NewConflictError("username taken")))
	assert.True(t, IsForbidden(NewForbiddenError("not your joke")))
	assert.True(t, IsUnauthorized(NewUnauthorizedError("invalid credentials")))
	assert.True(t, IsValidationError(NewValidationError(FieldName, "too short")))

	wrapped := fmt.Errorf("load joke: %w", NewNotFoundError("joke"))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsConflict(wrapped))
}

func TestStorageErrorKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStorageError("count jokes", cause)

	assert.True(t, IsStorage(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "storage failure: count jokes: connection reset", err.Error())
}

func TestDomainErrorMessage(t *testing.T) {
	assert.Equal(t, "resource not found: joke", NewNotFoundError("joke").Error())
	assert.Equal(t, "invalid input: too short (field: name) (fields: name)",
		NewValidationError(FieldName, "too short").Error())
	assert.Equal(t, "invalid input: form has invalid fields (fields: content, name)",
		NewFieldErrors(FieldErrors{FieldName: "a", FieldContent: "b"}).Error())
}

func TestFieldErrorsOf(t *testing.T) {
	assert.Nil(t, FieldErrorsOf(nil))
	assert.Nil(t, FieldErrorsOf(NewNotFoundError("joke")))
	assert.Equal(t, FieldErrors{FieldName: "too short"}, FieldErrorsOf(NewValidationError(FieldName, "too short")))
}

func TestJokeIsOwnedBy(t *testing.T) {
	joke := &Joke{ID: "j1", JokesterID: "u1"}
	assert.True(t, joke.IsOwnedBy("u1"))
	assert.False(t, joke.IsOwnedBy("u2"))
	assert.False(t, joke.IsOwnedBy(""))
	assert.False(t, (&Joke{}).IsOwnedBy(""))
}
