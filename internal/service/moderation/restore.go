package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/domain"
)

// RestoreViolation puts a quarantined log back into the log store under a
// new ID. The restored log is not current and is not linked into the chain
// it came from. The owner's flag counter is decremented, never below zero.
func (s *Service) RestoreViolation(ctx context.Context, actorID, violationID uuid.UUID) (*domain.ReadingLog, error) {
	if _, err := s.access.RequireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	var restored domain.ReadingLog
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		v, err := s.violations.GetByID(ctx, violationID)
		if err != nil {
			return fmt.Errorf("get violation: %w", err)
		}

		if err := s.users.DecrementTimesFlagged(ctx, v.UserID); err != nil {
			return fmt.Errorf("decrement times flagged: %w", err)
		}

		restored = v.RestoredLog(uuid.New())
		if err := s.logs.Insert(ctx, restored); err != nil {
			return fmt.Errorf("insert restored log: %w", err)
		}

		if err := s.violations.Delete(ctx, v.ID); err != nil {
			return fmt.Errorf("delete violation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ModerationAction(domain.ModerationActionRestore.String())
	s.log.InfoContext(ctx, "violation restored",
		slog.String("actor_id", actorID.String()),
		slog.String("user_id", restored.UserID.String()),
		slog.String("violation_id", violationID.String()),
		slog.String("log_id", restored.ID.String()),
	)

	return &restored, nil
}
