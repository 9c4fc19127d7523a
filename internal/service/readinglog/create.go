package readinglog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/domain"
	"github.com/heartmarshall/readtrack-backend/internal/service/logdraft"
)

// CreateLog records a new version of a book for actorID, who must exist.
// The chain's current head, if any, is demoted and becomes the new log's
// previous version. A total page count that disagrees with the head's
// fails with *domain.PageCountConflictError and changes nothing.
func (s *Service) CreateLog(ctx context.Context, actorID uuid.UUID, input logdraft.Input) (*domain.ReadingLog, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	owner, err := s.access.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}

	draft := input.Draft()
	created := domain.ReadingLog{
		ID:        uuid.New(),
		UserID:    owner.UserID,
		CreatedAt: s.now().UTC(),
		IsCurrent: true,
	}
	created.ApplyDraft(draft)

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		head, err := s.logs.FindCurrent(ctx, created.ChainKey())
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return s.logs.Insert(ctx, created)
		case err != nil:
			return fmt.Errorf("find chain head: %w", err)
		}

		if err := domain.CheckHeadPageCount(*head, draft.TotalPages); err != nil {
			return err
		}

		head.IsCurrent = false
		if err := s.logs.Update(ctx, *head); err != nil {
			return fmt.Errorf("demote chain head: %w", err)
		}

		created.PreviousVersionID = &head.ID
		if err := s.logs.Insert(ctx, created); err != nil {
			return fmt.Errorf("insert log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, s.writeFailed(ctx, opCreate, err)
	}

	s.metrics.LogWritten(opCreate)
	s.log.InfoContext(ctx, "reading log created",
		slog.String("user_id", created.UserID.String()),
		slog.String("log_id", created.ID.String()),
		slog.Bool("new_chain", created.PreviousVersionID == nil),
	)

	return &created, nil
}

// writeFailed records page count conflicts before handing err back.
func (s *Service) writeFailed(ctx context.Context, op string, err error) error {
	var conflict *domain.PageCountConflictError
	if errors.As(err, &conflict) {
		s.metrics.PageConflict(op)
		s.log.InfoContext(ctx, "page count conflict",
			slog.String("operation", op),
			slog.Int("existing", conflict.Existing),
			slog.String("given", conflict.GivenText()),
		)
	}
	return err
}
