// Package domain contains domain entities, value objects, and domain-specific errors.
// This package should have no external dependencies except the standard library.
package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Domain error types for consistent error handling across the application.
// These errors represent business rule violations and domain constraints.

var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized is returned when authentication is required but not provided,
	// or when credentials do not match.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the user lacks permission for the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict is returned when there's a conflict with the current state,
	// such as a username that is already taken.
	ErrConflict = errors.New("conflict")

	// ErrStorage is returned when the data store fails for reasons unrelated to the request.
	ErrStorage = errors.New("storage failure")
)

// FieldErrors maps form field names to human-readable validation messages.
type FieldErrors map[string]string

// Add records msg for field. Empty messages are ignored so validators can be chained.
func (f FieldErrors) Add(field, msg string) {
	if msg == "" {
		return
	}
	f[field] = msg
}

// Err returns a validation DomainError carrying f, or nil when f is empty.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return NewFieldErrors(f)
}

// DomainError wraps a base error with additional context.
// It provides a standard way to add details to domain errors.
type DomainError struct {
	// Base is the underlying error type (e.g., ErrNotFound)
	Base error

	// Message provides human-readable context
	Message string

	// Field indicates which field caused the error (for single-field validation errors)
	Field string

	// Fields holds every failing field for form validation errors
	Fields FieldErrors

	// Cause is the lower-level error, if any (driver errors for ErrStorage)
	Cause error
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	var b strings.Builder
	b.WriteString(e.Base.Error())
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " (field: %s)", e.Field)
	}
	if len(e.Fields) > 0 {
		names := make([]string, 0, len(e.Fields))
		for name := range e.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintf(&b, " (fields: %s)", strings.Join(names, ", "))
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the base error and the cause for errors.Is/As support.
func (e *DomainError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Base}
	}
	return []error{e.Base, e.Cause}
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Base:    ErrNotFound,
		Message: resource,
	}
}

// NewValidationError creates a validation error for a specific field.
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Base:    ErrInvalidInput,
		Message: message,
		Field:   field,
		Fields:  FieldErrors{field: message},
	}
}

// NewFieldErrors creates a validation error covering several form fields.
func NewFieldErrors(fields FieldErrors) *DomainError {
	return &DomainError{
		Base:    ErrInvalidInput,
		Message: "form has invalid fields",
		Fields:  fields,
	}
}

// NewConflictError creates a conflict error with context.
func NewConflictError(message string) *DomainError {
	return &DomainError{
		Base:    ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a forbidden error with context.
func NewForbiddenError(message string) *DomainError {
	return &DomainError{
		Base:    ErrForbidden,
		Message: message,
	}
}

// NewUnauthorizedError creates an unauthorized error with context.
func NewUnauthorizedError(message string) *DomainError {
	return &DomainError{
		Base:    ErrUnauthorized,
		Message: message,
	}
}

// NewStorageError wraps a data store failure for operation op.
func NewStorageError(op string, cause error) *DomainError {
	return &DomainError{
		Base:    ErrStorage,
		Message: op,
		Cause:   cause,
	}
}

// FieldErrorsOf extracts per-field validation messages from err.
// It returns nil if err is not a validation error.
func FieldErrorsOf(err error) FieldErrors {
	var de *DomainError
	if !errors.As(err, &de) || !errors.Is(de.Base, ErrInvalidInput) {
		return nil
	}
	if len(de.Fields) > 0 {
		return de.Fields
	}
	if de.Field != "" {
		return FieldErrors{de.Field: de.Message}
	}
	return nil
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsForbidden checks if an error is a forbidden error.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsUnauthorized checks if an error is unauthorized.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsStorage checks if an error is a data store failure.
func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}
