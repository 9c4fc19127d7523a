package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// ErrAccountFrozen rejects any action by a frozen user. It is a forbidden
// error, so callers that only check ErrForbidden still deny the request.
var ErrAccountFrozen = fmt.Errorf("account frozen: %w", ErrForbidden)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// PageCountConflictCode is the machine-readable code clients use to show
// the "is this the same edition?" prompt.
const PageCountConflictCode = "PAGE_COUNT_MISMATCH"

// PageCountConflictError reports that a draft's total page count disagrees
// with the total already recorded for the same book chain. Both values are
// carried so the caller can ask the user which one is right. Given is nil
// when the draft carried no total at all.
type PageCountConflictError struct {
	Existing int
	Given    *int
}

func (e *PageCountConflictError) Error() string {
	return fmt.Sprintf("%s:%d:%s", PageCountConflictCode, e.Existing, e.GivenText())
}

// GivenText renders Given for logs, "null" when the draft had no total.
func (e *PageCountConflictError) GivenText() string {
	if e.Given == nil {
		return "null"
	}
	return strconv.Itoa(*e.Given)
}

func (e *PageCountConflictError) Unwrap() error { return ErrConflict }

// NewPageCountConflict creates a PageCountConflictError.
func NewPageCountConflict(existing int, given *int) *PageCountConflictError {
	return &PageCountConflictError{Existing: existing, Given: given}
}
