package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/readtrack-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the given role. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "reader-" + suffix + "@example.com",
		Username:  "reader-" + suffix,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, role, times_flagged, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, 0, $5, $6)`,
		user.ID, user.Email, user.Username, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// LogOption customizes a log created by SeedLog.
type LogOption func(l *domain.ReadingLog)

// WithPages sets current and total pages.
func WithPages(current, total int) LogOption {
	return func(l *domain.ReadingLog) {
		l.CurrentPage = &current
		l.TotalPages = &total
	}
}

// WithPrevious links the log to a predecessor.
func WithPrevious(id uuid.UUID) LogOption {
	return func(l *domain.ReadingLog) { l.PreviousVersionID = &id }
}

// NotCurrent marks the log as a non-head version.
func NotCurrent() LogOption {
	return func(l *domain.ReadingLog) { l.IsCurrent = false }
}

// WithDate overrides the log date.
func WithDate(d time.Time) LogOption {
	return func(l *domain.ReadingLog) { l.Date = domain.TruncateToDate(d) }
}

// SeedLog inserts a reading log for userID. By default the log is current
// and has no predecessor.
func SeedLog(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title, author string, opts ...LogOption) domain.ReadingLog {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	l := domain.ReadingLog{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Author:    author,
		Date:      domain.TruncateToDate(now),
		TimeSpent: 30,
		CreatedAt: now,
		IsCurrent: true,
	}
	for _, opt := range opts {
		opt(&l)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO reading_logs (id, user_id, title, author, log_date, time_spent, current_page,
		     total_pages, notes, created_at, previous_version_id, is_current)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		l.ID, l.UserID, l.Title, l.Author, l.Date, l.TimeSpent, l.CurrentPage,
		l.TotalPages, l.Notes, l.CreatedAt, l.PreviousVersionID, l.IsCurrent,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLog insert: %v", err)
	}

	return l
}

// SeedViolation inserts a violation record for owner.
func SeedViolation(t *testing.T, pool *pgxpool.Pool, owner domain.User, title, author string) domain.ViolationRecord {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	total := 300
	v := domain.ViolationRecord{
		ID:         uuid.New(),
		UserID:     owner.ID,
		Username:   owner.Username,
		Title:      title,
		Author:     author,
		Date:       domain.TruncateToDate(now),
		TimeSpent:  15,
		TotalPages: &total,
		Reason:     domain.DefaultViolationReason,
		CreatedAt:  now.Add(-time.Hour),
		FlaggedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO violation_logs (id, user_id, username, title, author, log_date, time_spent,
		     current_page, total_pages, notes, reason, created_at, flagged_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		v.ID, v.UserID, v.Username, v.Title, v.Author, v.Date, v.TimeSpent,
		v.CurrentPage, v.TotalPages, v.Notes, v.Reason, v.CreatedAt, v.FlaggedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedViolation insert: %v", err)
	}

	return v
}
