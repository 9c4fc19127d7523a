// Package user implements the user directory lookups the moderation core
// needs, using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/readtrack-backend/internal/domain"
)

const (
	table  = "users"
	entity = "user"
)

var columns = []string{"id", "email", "username", "role", "times_flagged", "frozen", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Username     string    `db:"username"`
	Role         string    `db:"role"`
	TimesFlagged int       `db:"times_flagged"`
	Frozen       bool      `db:"frozen"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.User {
	return domain.User{
		ID:           r.ID,
		Email:        r.Email,
		Username:     r.Username,
		Role:         domain.UserRole(r.Role),
		TimesFlagged: r.TimesFlagged,
		Frozen:       r.Frozen,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

func (r *Repo) get(ctx context.Context, where sq.Sqlizer, id fmt.Stringer) (*domain.User, error) {
	sql, args, err := postgres.Builder.Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", entity, err)
	}

	var rw row
	if err := pgxscan.Get(ctx, r.q(ctx), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	u := rw.toDomain()
	return &u, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.get(ctx, sq.Eq{"id": id}, id)
}

// GetByEmail returns a user by email address, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.get(ctx, sq.Expr("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))), nil)
}

// GetByIDs returns the users among ids that exist. Unknown ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	sql, args, err := postgres.Builder.Select(columns...).From(table).
		Where(sq.Eq{"id": ids}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", entity, err)
	}
	return r.selectUsers(ctx, sql, args)
}

// List returns a page of users ordered by field, with id as tie-breaker.
// field must be valid; it is interpolated into the query.
func (r *Repo) List(ctx context.Context, field domain.UserSortField, desc bool, limit, offset int) ([]domain.User, error) {
	if !field.IsValid() {
		return nil, fmt.Errorf("%s sort %q: %w", entity, field, domain.ErrValidation)
	}
	dir := "ASC"
	if desc {
		dir = "DESC"
	}

	sql, args, err := postgres.Builder.Select(columns...).From(table).
		OrderBy(string(field)+" "+dir, "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s list: %w", entity, err)
	}
	return r.selectUsers(ctx, sql, args)
}

func (r *Repo) selectUsers(ctx context.Context, sql string, args []any) ([]domain.User, error) {
	var rows []row
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, nil)
	}
	out := make([]domain.User, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// Create inserts a new user.
func (r *Repo) Create(ctx context.Context, u domain.User) error {
	sql, args, err := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(u.ID, u.Email, u.Username, string(u.Role), u.TimesFlagged, u.Frozen, u.CreatedAt, u.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s insert: %w", entity, err)
	}

	if _, err := r.q(ctx).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, entity, u.ID)
	}
	return nil
}

// SetRole changes the role of a user.
func (r *Repo) SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) error {
	return r.update(ctx, id, sq.Eq{"role": string(role)})
}

// SetFrozen freezes or unfreezes a user.
func (r *Repo) SetFrozen(ctx context.Context, id uuid.UUID, frozen bool) error {
	return r.update(ctx, id, sq.Eq{"frozen": frozen})
}

// IncrementTimesFlagged adds one to the user's violation counter.
func (r *Repo) IncrementTimesFlagged(ctx context.Context, id uuid.UUID) error {
	return r.update(ctx, id, sq.Eq{"times_flagged": sq.Expr("times_flagged + 1")})
}

// DecrementTimesFlagged subtracts one from the user's violation counter,
// never going below zero.
func (r *Repo) DecrementTimesFlagged(ctx context.Context, id uuid.UUID) error {
	return r.update(ctx, id, sq.Eq{"times_flagged": sq.Expr("GREATEST(times_flagged - 1, 0)")})
}

func (r *Repo) update(ctx context.Context, id uuid.UUID, set sq.Eq) error {
	set["updated_at"] = sq.Expr("now()")

	sql, args, err := postgres.Builder.Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s update: %w", entity, err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}
