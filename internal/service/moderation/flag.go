package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/adapter/notify"
	"github.com/heartmarshall/readtrack-backend/internal/domain"
)

// FlagLog moves a reading log into quarantine. The snapshot, the owner's
// flag counter and the removal from the log store commit together; the
// owner is notified afterwards and a failed notice never fails the flag.
func (s *Service) FlagLog(ctx context.Context, actorID, logID uuid.UUID) (*domain.ViolationRecord, error) {
	if _, err := s.access.RequireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	var (
		record domain.ViolationRecord
		owner  *domain.User
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		target, err := s.logs.GetByID(ctx, logID)
		if err != nil {
			return fmt.Errorf("get log: %w", err)
		}

		owner, err = s.users.GetByID(ctx, target.UserID)
		if err != nil {
			return fmt.Errorf("get owner: %w", err)
		}

		record = domain.NewViolationRecord(*target, *owner, s.cfg.ViolationReason, s.now().UTC())
		if err := s.violations.Insert(ctx, record); err != nil {
			return fmt.Errorf("insert violation: %w", err)
		}

		if err := s.users.IncrementTimesFlagged(ctx, owner.ID); err != nil {
			return fmt.Errorf("increment times flagged: %w", err)
		}

		if s.cfg.SpliceOnFlag {
			return s.chain.Detach(ctx, *target)
		}
		// The successor, if any, loses its previous version.
		if err := s.logs.Delete(ctx, target.ID); err != nil {
			return fmt.Errorf("delete log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ModerationAction(domain.ModerationActionFlag.String())
	s.log.InfoContext(ctx, "reading log flagged",
		slog.String("actor_id", actorID.String()),
		slog.String("user_id", record.UserID.String()),
		slog.String("log_id", record.ID.String()),
	)

	s.notifyOwner(ctx, *owner, record)

	return &record, nil
}

func (s *Service) notifyOwner(ctx context.Context, owner domain.User, record domain.ViolationRecord) {
	if owner.Email == "" {
		return
	}

	err := s.notifier.NotifyViolation(ctx, notify.ViolationNotice{
		Email:     owner.Email,
		Username:  owner.Username,
		Title:     record.Title,
		Author:    record.Author,
		Date:      record.Date,
		Reason:    record.Reason,
		FlaggedAt: record.FlaggedAt,
	})
	if err != nil {
		s.metrics.NotificationFailed()
		s.log.WarnContext(ctx, "violation notice not delivered",
			slog.String("user_id", owner.ID.String()),
			slog.String("log_id", record.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}
