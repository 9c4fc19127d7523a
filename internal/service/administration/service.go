// Package administration lets admins freeze accounts and change roles.
package administration

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/adapter/notify"
	"github.com/heartmarshall/readtrack-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
	List(ctx context.Context, field domain.UserSortField, desc bool, limit, offset int) ([]domain.User, error)
	SetFrozen(ctx context.Context, id uuid.UUID, frozen bool) error
	SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) error
}

type accessPolicy interface {
	RequireAdmin(ctx context.Context, actorID uuid.UUID) (domain.Principal, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type notifier interface {
	NotifyAccountFrozen(ctx context.Context, n notify.AccountFrozenNotice) error
}

type recorder interface {
	ModerationAction(action string)
	NotificationFailed()
}

// Service implements admin user moderation.
type Service struct {
	users     userRepo
	access    accessPolicy
	tx        txManager
	notifier  notifier
	metrics   recorder
	log       *slog.Logger
	listLimit int
	now       func() time.Time
}

// NewService creates a new administration service. listLimit is the page
// size used when ListUsers is called without a limit.
func NewService(
	log *slog.Logger,
	users userRepo,
	access accessPolicy,
	tx txManager,
	notifier notifier,
	metrics recorder,
	listLimit int,
) *Service {
	return &Service{
		users:     users,
		access:    access,
		tx:        tx,
		notifier:  notifier,
		metrics:   metrics,
		log:       log.With("service", "administration"),
		listLimit: listLimit,
		now:       time.Now,
	}
}
