// Package readinglog implements the reading log store using PostgreSQL.
package readinglog

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
	table  = "reading_logs"
	entity = "reading_log"
)

var columns = []string{
	"id", "user_id", "title", "author", "log_date", "time_spent", "current_page",
	"total_pages", "notes", "created_at", "previous_version_id", "is_current",
}

// Repo provides reading log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new reading log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID                uuid.UUID  `db:"id"`
	UserID            uuid.UUID  `db:"user_id"`
	Title             string     `db:"title"`
	Author            string     `db:"author"`
	LogDate           time.Time  `db:"log_date"`
	TimeSpent         int        `db:"time_spent"`
	CurrentPage       *int       `db:"current_page"`
	TotalPages        *int       `db:"total_pages"`
	Notes             *string    `db:"notes"`
	CreatedAt         time.Time  `db:"created_at"`
	PreviousVersionID *uuid.UUID `db:"previous_version_id"`
	IsCurrent         bool       `db:"is_current"`
}

func (r row) toDomain() domain.ReadingLog {
	return domain.ReadingLog{
		ID:                r.ID,
		UserID:            r.UserID,
		Title:             r.Title,
		Author:            r.Author,
		Date:              domain.TruncateToDate(r.LogDate),
		TimeSpent:         r.TimeSpent,
		CurrentPage:       r.CurrentPage,
		TotalPages:        r.TotalPages,
		Notes:             r.Notes,
		CreatedAt:         r.CreatedAt,
		PreviousVersionID: r.PreviousVersionID,
		IsCurrent:         r.IsCurrent,
	}
}

func toDomainList(rows []row) []domain.ReadingLog {
	out := make([]domain.ReadingLog, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

func (r *Repo) selectLogs() sq.SelectBuilder {
	return postgres.Builder.Select(columns...).From(table)
}

func chainWhere(key domain.ChainKey) sq.And {
	return sq.And{
		sq.Eq{"user_id": key.UserID},
		sq.Expr("lower(title) = ?", key.Title),
		sq.Expr("lower(author) = ?", key.Author),
	}
}

// ordered by log date, newest first; creation time breaks ties.
func newestFirst(b sq.SelectBuilder) sq.SelectBuilder {
	return b.OrderBy("log_date DESC", "created_at DESC")
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder, id fmt.Stringer) ([]domain.ReadingLog, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", entity, err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, table, id)
	}
	return toDomainList(rows), nil
}

func (r *Repo) get(ctx context.Context, b sq.SelectBuilder, id fmt.Stringer) (*domain.ReadingLog, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", entity, err)
	}

	var rw row
	if err := pgxscan.Get(ctx, r.q(ctx), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	l := rw.toDomain()
	return &l, nil
}

// GetByID returns a log by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReadingLog, error) {
	return r.get(ctx, r.selectLogs().Where(sq.Eq{"id": id}), id)
}

// FindByChain returns every log in the chain identified by key, newest first.
// A non-nil excludeID leaves that log out of the result.
func (r *Repo) FindByChain(ctx context.Context, key domain.ChainKey, excludeID *uuid.UUID) ([]domain.ReadingLog, error) {
	where := chainWhere(key)
	if excludeID != nil {
		where = append(where, sq.NotEq{"id": *excludeID})
	}
	return r.list(ctx, newestFirst(r.selectLogs().Where(where)), key.UserID)
}

// FindCurrent returns the head of the chain identified by key, locking it
// for the rest of the surrounding transaction. Returns domain.ErrNotFound
// when the chain has no head.
func (r *Repo) FindCurrent(ctx context.Context, key domain.ChainKey) (*domain.ReadingLog, error) {
	b := r.selectLogs().
		Where(append(chainWhere(key), sq.Eq{"is_current": true})).
		Limit(1).
		Suffix("FOR UPDATE")
	return r.get(ctx, b, key.UserID)
}

// FindByPreviousVersion returns the logs whose previous version is id,
// newest first.
func (r *Repo) FindByPreviousVersion(ctx context.Context, id uuid.UUID) ([]domain.ReadingLog, error) {
	return r.list(ctx, newestFirst(r.selectLogs().Where(sq.Eq{"previous_version_id": id})), id)
}

// ListByUser returns all logs owned by userID, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ReadingLog, error) {
	return r.list(ctx, newestFirst(r.selectLogs().Where(sq.Eq{"user_id": userID})), userID)
}

// ListAll returns logs of every user, newest first.
func (r *Repo) ListAll(ctx context.Context, limit, offset int) ([]domain.ReadingLog, error) {
	b := newestFirst(r.selectLogs()).Limit(uint64(limit)).Offset(uint64(offset))
	return r.list(ctx, b, nil)
}

// Insert persists a new log.
func (r *Repo) Insert(ctx context.Context, l domain.ReadingLog) error {
	sql, args, err := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(l.ID, l.UserID, l.Title, l.Author, l.Date, l.TimeSpent, l.CurrentPage,
			l.TotalPages, l.Notes, l.CreatedAt, l.PreviousVersionID, l.IsCurrent).
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s insert: %w", entity, err)
	}

	if _, err := r.q(ctx).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, entity, l.ID)
	}
	return nil
}

// Update overwrites the content, linkage and head flag of an existing log.
// Owner and creation time never change.
func (r *Repo) Update(ctx context.Context, l domain.ReadingLog) error {
	sql, args, err := postgres.Builder.Update(table).
		SetMap(map[string]any{
			"title":               l.Title,
			"author":              l.Author,
			"log_date":            l.Date,
			"time_spent":          l.TimeSpent,
			"current_page":        l.CurrentPage,
			"total_pages":         l.TotalPages,
			"notes":               l.Notes,
			"previous_version_id": l.PreviousVersionID,
			"is_current":          l.IsCurrent,
		}).
		Where(sq.Eq{"id": l.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s update: %w", entity, err)
	}

	return r.execOne(ctx, sql, args, l.ID)
}

// Delete removes a log by primary key.
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
