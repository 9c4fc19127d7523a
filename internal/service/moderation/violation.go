package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/domain"
	"github.com/heartmarshall/readtrack-backend/internal/service/logdraft"
)

// UpdateViolation overwrites the content of a quarantined record in place.
// The total page count is checked against the owner's live chain for the
// draft's title and author.
func (s *Service) UpdateViolation(ctx context.Context, actorID, violationID uuid.UUID, input logdraft.Input) (*domain.ViolationRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	draft := input.Draft()

	var updated domain.ViolationRecord
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		v, err := s.violations.GetByID(ctx, violationID)
		if err != nil {
			return fmt.Errorf("get violation: %w", err)
		}

		if _, err := s.access.RequireOwnerOrAdmin(ctx, actorID, v.UserID); err != nil {
			return err
		}

		chain, err := s.logs.FindByChain(ctx, domain.NewChainKey(v.UserID, draft.Title, draft.Author), nil)
		if err != nil {
			return fmt.Errorf("find chain: %w", err)
		}
		if err := domain.CheckPageCount(chain, draft.TotalPages); err != nil {
			return err
		}

		v.ApplyDraft(draft)
		if err := s.violations.Update(ctx, *v); err != nil {
			return fmt.Errorf("update violation: %w", err)
		}
		updated = *v
		return nil
	})
	if err != nil {
		var conflict *domain.PageCountConflictError
		if errors.As(err, &conflict) {
			s.log.InfoContext(ctx, "page count conflict",
				slog.String("operation", domain.ModerationActionUpdate.String()),
				slog.Int("existing", conflict.Existing),
				slog.String("given", conflict.GivenText()),
			)
		}
		return nil, err
	}

	s.metrics.ModerationAction(domain.ModerationActionUpdate.String())
	s.log.InfoContext(ctx, "violation updated",
		slog.String("actor_id", actorID.String()),
		slog.String("violation_id", violationID.String()),
	)

	return &updated, nil
}

// GetViolation returns one quarantined record to an admin.
func (s *Service) GetViolation(ctx context.Context, actorID, violationID uuid.UUID) (*domain.ViolationRecord, error) {
	if _, err := s.access.RequireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	v, err := s.violations.GetByID(ctx, violationID)
	if err != nil {
		return nil, fmt.Errorf("get violation: %w", err)
	}
	return v, nil
}

// ListViolations pages through every quarantined record, newest first.
func (s *Service) ListViolations(ctx context.Context, actorID uuid.UUID, input ListInput) ([]domain.ViolationRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.access.RequireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.ListLimit
	}

	records, err := s.violations.List(ctx, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list violations: %w", err)
	}
	return records, nil
}

// ListUserViolations returns the quarantined records of one owner.
func (s *Service) ListUserViolations(ctx context.Context, actorID, userID uuid.UUID) ([]domain.ViolationRecord, error) {
	if _, err := s.access.RequireOwnerOrAdmin(ctx, actorID, userID); err != nil {
		return nil, err
	}

	records, err := s.violations.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user violations: %w", err)
	}
	return records, nil
}
