package administration

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/domain"
)

const (
	// MaxBatchSize caps the users touched by one call.
	MaxBatchSize = 100
	// MaxListLimit caps one page of users.
	MaxListLimit = 200
)

// BatchInput selects the users an admin action applies to.
type BatchInput struct {
	UserIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i BatchInput) Validate() error {
	var errs []domain.FieldError
	switch {
	case len(i.UserIDs) == 0:
		errs = append(errs, domain.FieldError{Field: "userIds", Message: "required"})
	case len(i.UserIDs) > MaxBatchSize:
		errs = append(errs, domain.FieldError{Field: "userIds", Message: "must hold at most 100 ids"})
	}
	for _, id := range i.UserIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "userIds", Message: "must not contain the nil id"})
			break
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ids returns UserIDs without duplicates, in first-seen order.
func (i BatchInput) ids() []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(i.UserIDs))
	out := make([]uuid.UUID, 0, len(i.UserIDs))
	for _, id := range i.UserIDs {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// ListUsersInput pages through the user directory. An empty SortBy orders
// by creation time; a zero Limit uses the configured default.
type ListUsersInput struct {
	SortBy string
	Desc   bool
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListUsersInput) Validate() error {
	var errs []domain.FieldError
	if i.SortBy != "" && !domain.UserSortField(i.SortBy).IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "must be one of created_at, username, email, times_flagged"})
	}
	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i ListUsersInput) sortField() domain.UserSortField {
	if i.SortBy == "" {
		return domain.UserSortCreatedAt
	}
	return domain.UserSortField(i.SortBy)
}
