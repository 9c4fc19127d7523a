// Package readinglog maintains per-book version chains of reading logs:
// creating new versions, editing them in place, removing them without
// breaking the chain, and reading a book's history.
package readinglog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type logRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReadingLog, error)
	FindByChain(ctx context.Context, key domain.ChainKey, excludeID *uuid.UUID) ([]domain.ReadingLog, error)
	FindCurrent(ctx context.Context, key domain.ChainKey) (*domain.ReadingLog, error)
	FindByPreviousVersion(ctx context.Context, id uuid.UUID) ([]domain.ReadingLog, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ReadingLog, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.ReadingLog, error)
	Insert(ctx context.Context, l domain.ReadingLog) error
	Update(ctx context.Context, l domain.ReadingLog) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type accessPolicy interface {
	Resolve(ctx context.Context, actorID uuid.UUID) (domain.Principal, error)
	RequireOwnerOrAdmin(ctx context.Context, actorID, ownerID uuid.UUID) (domain.Principal, error)
	RequireAdmin(ctx context.Context, actorID uuid.UUID) (domain.Principal, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type recorder interface {
	LogWritten(operation string)
	PageConflict(operation string)
}

// Operation labels for logs and metrics.
const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// Service implements the version chain manager and the history query.
type Service struct {
	logs    logRepo
	access  accessPolicy
	tx      txManager
	metrics recorder
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new reading log service.
func NewService(
	log *slog.Logger,
	logs logRepo,
	access accessPolicy,
	tx txManager,
	metrics recorder,
) *Service {
	return &Service{
		logs:    logs,
		access:  access,
		tx:      tx,
		metrics: metrics,
		log:     log.With("service", "readinglog"),
		now:     time.Now,
	}
}
