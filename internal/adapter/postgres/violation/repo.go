// Package violation implements the quarantine store for flagged reading logs.
package violation

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/readtrack-backend/internal/domain"
)

const (
	table  = "violation_logs"
	entity = "violation_log"
)

var columns = []string{
	"id", "user_id", "username", "title", "author", "log_date", "time_spent",
	"current_page", "total_pages", "notes", "reason", "created_at", "flagged_at",
}

// Repo provides violation record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new violation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Username    string    `db:"username"`
	Title       string    `db:"title"`
	Author      string    `db:"author"`
	LogDate     time.Time `db:"log_date"`
	TimeSpent   int       `db:"time_spent"`
	CurrentPage *int      `db:"current_page"`
	TotalPages  *int      `db:"total_pages"`
	Notes       *string   `db:"notes"`
	Reason      string    `db:"reason"`
	CreatedAt   time.Time `db:"created_at"`
	FlaggedAt   time.Time `db:"flagged_at"`
}

func (r row) toDomain() domain.ViolationRecord {
	return domain.ViolationRecord{
		ID:          r.ID,
		UserID:      r.UserID,
		Username:    r.Username,
		Title:       r.Title,
		Author:      r.Author,
		Date:        domain.TruncateToDate(r.LogDate),
		TimeSpent:   r.TimeSpent,
		CurrentPage: r.CurrentPage,
		TotalPages:  r.TotalPages,
		Notes:       r.Notes,
		Reason:      r.Reason,
		CreatedAt:   r.CreatedAt,
		FlaggedAt:   r.FlaggedAt,
	}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

func (r *Repo) selectRecords() sq.SelectBuilder {
	return postgres.Builder.Select(columns...).From(table)
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder, id fmt.Stringer) ([]domain.ViolationRecord, error) {
	sql, args, err := b.OrderBy("log_date DESC", "flagged_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", entity, err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, table, id)
	}

	out := make([]domain.ViolationRecord, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// GetByID returns a violation record by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ViolationRecord, error) {
	sql, args, err := r.selectRecords().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", entity, err)
	}

	var rw row
	if err := pgxscan.Get(ctx, r.q(ctx), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	v := rw.toDomain()
	return &v, nil
}

// ListByUser returns the violation records of one owner, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ViolationRecord, error) {
	return r.list(ctx, r.selectRecords().Where(sq.Eq{"user_id": userID}), userID)
}

// List returns violation records of every user, newest first.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.ViolationRecord, error) {
	return r.list(ctx, r.selectRecords().Limit(uint64(limit)).Offset(uint64(offset)), nil)
}

// Insert persists a new violation record.
func (r *Repo) Insert(ctx context.Context, v domain.ViolationRecord) error {
	sql, args, err := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(v.ID, v.UserID, v.Username, v.Title, v.Author, v.Date, v.TimeSpent,
			v.CurrentPage, v.TotalPages, v.Notes, v.Reason, v.CreatedAt, v.FlaggedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s insert: %w", entity, err)
	}

	if _, err := r.q(ctx).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, entity, v.ID)
	}
	return nil
}

// Update overwrites the content fields of a violation record. Owner,
// reason and timestamps are kept.
func (r *Repo) Update(ctx context.Context, v domain.ViolationRecord) error {
	sql, args, err := postgres.Builder.Update(table).
		SetMap(map[string]any{
			"title":        v.Title,
			"author":       v.Author,
			"log_date":     v.Date,
			"time_spent":   v.TimeSpent,
			"current_page": v.CurrentPage,
			"total_pages":  v.TotalPages,
			"notes":        v.Notes,
		}).
		Where(sq.Eq{"id": v.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s update: %w", entity, err)
	}

	return r.execOne(ctx, sql, args, v.ID)
}

// Delete removes a violation record by primary key.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build %s delete: %w", entity, err)
	}

	return r.execOne(ctx, sql, args, id)
}

func (r *Repo) execOne(ctx context.Context, sql string, args []any, id uuid.UUID) error {
	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}
