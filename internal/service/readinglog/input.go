package readinglog

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/domain"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// HistoryInput selects the chain whose history is returned.
type HistoryInput struct {
	// UserID is the chain owner; nil means the caller.
	UserID *uuid.UUID
	Title  string
	Author string
	// CurrentLogID marks the version the caller is viewing.
	CurrentLogID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i HistoryInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(i.Author) == "" {
		errs = append(errs, domain.FieldError{Field: "author", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListAllInput pages through every user's logs.
type ListAllInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListAllInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i ListAllInput) limit() int {
	if i.Limit == 0 {
		return DefaultListLimit
	}
	return i.Limit
}
