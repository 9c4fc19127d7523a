// Package logdraft validates the user-editable content of a reading log,
// shared by log writes and violation record edits.
package logdraft

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/readtrack-backend/internal/domain"
)

// Input is a reading log draft as submitted by a client.
type Input struct {
	Title       string    `json:"title"       validate:"required,max=255"`
	Author      string    `json:"author"      validate:"required,max=255"`
	Date        time.Time `json:"date"        validate:"required,notfuture"`
	TimeSpent   int       `json:"timeSpent"   validate:"gte=0"`
	CurrentPage *int      `json:"currentPage" validate:"omitempty,gte=1"`
	TotalPages  *int      `json:"totalPages"  validate:"omitempty,gte=1"`
	Notes       *string   `json:"notes"       validate:"omitempty,maxbytes"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
	// now is the clock used by the notfuture rule.
	now = time.Now
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		// Dates are calendar days; today in UTC is still allowed.
		_ = v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
			d, ok := fl.Field().Interface().(time.Time)
			if !ok {
				return false
			}
			return !domain.TruncateToDate(d).After(domain.TruncateToDate(now().UTC()))
		})
		_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
			return len(fl.Field().String()) <= domain.MaxNotesLength
		})
		validate = v
	})
	return validate
}

var messages = map[string]string{
	"required":  "required",
	"notfuture": "must not be in the future",
	"maxbytes":  "too long",
	"gte":       "must be at least ",
	"max":       "max length is ",
}

// Normalize returns a copy with title, author and notes trimmed.
// Blank notes become nil.
func (i Input) Normalize() Input {
	i.Title = strings.TrimSpace(i.Title)
	i.Author = strings.TrimSpace(i.Author)
	if i.Notes != nil {
		notes := strings.TrimSpace(*i.Notes)
		if notes == "" {
			i.Notes = nil
		} else {
			i.Notes = &notes
		}
	}
	return i
}

// Validate normalizes the input and checks every field, collecting all
// failures into a *domain.ValidationError.
func (i Input) Validate() error {
	err := instance().Struct(i.Normalize())
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[fe.Tag()]
		if !ok {
			msg = "invalid"
		} else if fe.Param() != "" {
			msg += fe.Param()
		}
		fields = append(fields, domain.FieldError{Field: fe.Field(), Message: msg})
	}
	return domain.NewValidationErrors(fields)
}

// Draft converts a validated input to a domain draft.
func (i Input) Draft() domain.LogDraft {
	n := i.Normalize()
	return domain.LogDraft{
		Title:       n.Title,
		Author:      n.Author,
		Date:        domain.TruncateToDate(n.Date),
		TimeSpent:   n.TimeSpent,
		CurrentPage: n.CurrentPage,
		TotalPages:  n.TotalPages,
		Notes:       n.Notes,
	}
}
