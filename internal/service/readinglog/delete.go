package readinglog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/domain"
)

// DeleteLog removes one version from its chain. Successors are re-linked to
// the removed version's predecessor, and when the head is removed the head
// flag moves to a neighbour so the chain keeps exactly one current version.
func (s *Service) DeleteLog(ctx context.Context, actorID, logID uuid.UUID) error {
	var target *domain.ReadingLog
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		target, err = s.logs.GetByID(ctx, logID)
		if err != nil {
			return fmt.Errorf("get log: %w", err)
		}

		if _, err := s.access.RequireOwnerOrAdmin(ctx, actorID, target.UserID); err != nil {
			return err
		}

		return s.Detach(ctx, *target)
	})
	if err != nil {
		return err
	}

	s.metrics.LogWritten(opDelete)
	s.log.InfoContext(ctx, "reading log deleted",
		slog.String("actor_id", actorID.String()),
		slog.String("user_id", target.UserID.String()),
		slog.String("log_id", logID.String()),
		slog.Bool("was_current", target.IsCurrent),
	)

	return nil
}

// Detach deletes target from the log store while keeping its chain
// connected. It performs several writes and must run inside a transaction.
//
// Order matters for the one-head-per-chain index: successors are re-linked
// first, the target is deleted, and only then is a neighbour promoted.
// The newest successor takes the head flag; without one, the predecessor does.
func (s *Service) Detach(ctx context.Context, target domain.ReadingLog) error {
	successors, err := s.logs.FindByPreviousVersion(ctx, target.ID)
	if err != nil {
		return fmt.Errorf("find successors: %w", err)
	}

	for i := range successors {
		successors[i].PreviousVersionID = target.PreviousVersionID
		if err := s.logs.Update(ctx, successors[i]); err != nil {
			return fmt.Errorf("relink successor %s: %w", successors[i].ID, err)
		}
	}

	if err := s.logs.Delete(ctx, target.ID); err != nil {
		return fmt.Errorf("delete log: %w", err)
	}

	if !target.IsCurrent {
		return nil
	}

	var heir *domain.ReadingLog
	switch {
	case len(successors) > 0:
		heir = &successors[0]
	case target.PreviousVersionID != nil:
		heir, err = s.logs.GetByID(ctx, *target.PreviousVersionID)
		if err != nil {
			return fmt.Errorf("get predecessor: %w", err)
		}
	default:
		return nil
	}

	heir.IsCurrent = true
	if err := s.logs.Update(ctx, *heir); err != nil {
		return fmt.Errorf("promote %s: %w", heir.ID, err)
	}
	return nil
}
