// Package moderation quarantines reading logs that violate content policy
// and lets administrators restore or amend them.
package moderation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/adapter/notify"
	"github.com/heartmarshall/readtrack-backend/internal/config"
	"github.com/heartmarshall/readtrack-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type logRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReadingLog, error)
	FindByChain(ctx context.Context, key domain.ChainKey, excludeID *uuid.UUID) ([]domain.ReadingLog, error)
	Insert(ctx context.Context, l domain.ReadingLog) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type violationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ViolationRecord, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ViolationRecord, error)
	List(ctx context.Context, limit, offset int) ([]domain.ViolationRecord, error)
	Insert(ctx context.Context, v domain.ViolationRecord) error
	Update(ctx context.Context, v domain.ViolationRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	IncrementTimesFlagged(ctx context.Context, id uuid.UUID) error
	DecrementTimesFlagged(ctx context.Context, id uuid.UUID) error
}

type accessPolicy interface {
	RequireOwnerOrAdmin(ctx context.Context, actorID, ownerID uuid.UUID) (domain.Principal, error)
	RequireAdmin(ctx context.Context, actorID uuid.UUID) (domain.Principal, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// chainDetacher removes a log while keeping its version chain connected.
type chainDetacher interface {
	Detach(ctx context.Context, target domain.ReadingLog) error
}

type notifier interface {
	NotifyViolation(ctx context.Context, n notify.ViolationNotice) error
}

type recorder interface {
	ModerationAction(action string)
	NotificationFailed()
}

// Service implements the moderation engine.
type Service struct {
	logs       logRepo
	violations violationRepo
	users      userRepo
	access     accessPolicy
	tx         txManager
	chain      chainDetacher
	notifier   notifier
	metrics    recorder
	log        *slog.Logger
	cfg        config.ModerationConfig
	now        func() time.Time
}

// NewService creates a new moderation service.
func NewService(
	log *slog.Logger,
	logs logRepo,
	violations violationRepo,
	users userRepo,
	access accessPolicy,
	tx txManager,
	chain chainDetacher,
	notifier notifier,
	metrics recorder,
	cfg config.ModerationConfig,
) *Service {
	return &Service{
		logs:       logs,
		violations: violations,
		users:      users,
		access:     access,
		tx:         tx,
		chain:      chain,
		notifier:   notifier,
		metrics:    metrics,
		log:        log.With("service", "moderation"),
		cfg:        cfg,
		now:        time.Now,
	}
}
