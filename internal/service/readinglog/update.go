package readinglog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/domain"
	"github.com/heartmarshall/readtrack-backend/internal/service/logdraft"
)

// UpdateLog overwrites the content of an existing version in place; no new
// version is created. The total page count is checked against every other
// version of the owner's chain for the draft's title and author.
func (s *Service) UpdateLog(ctx context.Context, actorID, logID uuid.UUID, input logdraft.Input) (*domain.ReadingLog, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	draft := input.Draft()

	var updated domain.ReadingLog
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		target, err := s.logs.GetByID(ctx, logID)
		if err != nil {
			return fmt.Errorf("get log: %w", err)
		}

		if _, err := s.access.RequireOwnerOrAdmin(ctx, actorID, target.UserID); err != nil {
			return err
		}

		others, err := s.logs.FindByChain(ctx, domain.NewChainKey(target.UserID, draft.Title, draft.Author), &logID)
		if err != nil {
			return fmt.Errorf("find chain: %w", err)
		}
		if err := domain.CheckPageCount(others, draft.TotalPages); err != nil {
			return err
		}

		target.ApplyDraft(draft)
		if err := s.logs.Update(ctx, *target); err != nil {
			return fmt.Errorf("update log: %w", err)
		}
		updated = *target
		return nil
	})
	if err != nil {
		return nil, s.writeFailed(ctx, opUpdate, err)
	}

	s.metrics.LogWritten(opUpdate)
	s.log.InfoContext(ctx, "reading log updated",
		slog.String("actor_id", actorID.String()),
		slog.String("user_id", updated.UserID.String()),
		slog.String("log_id", updated.ID.String()),
	)

	return &updated, nil
}
