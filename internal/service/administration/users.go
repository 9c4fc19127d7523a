package administration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/adapter/notify"
	"github.com/heartmarshall/readtrack-backend/internal/domain"
)

// BatchResult sorts the requested ids by outcome. Unknown ids are skipped
// rather than failing the batch.
type BatchResult struct {
	Changed   []uuid.UUID
	Unchanged []uuid.UUID
	Missing   []uuid.UUID
}

// FreezeUsers freezes every known account in input. A frozen user is
// rejected by the access policy until unfrozen. Each newly frozen user with
// an email is notified after commit; a failed notice never fails the call.
// An admin cannot freeze themselves.
func (s *Service) FreezeUsers(ctx context.Context, actorID uuid.UUID, input BatchInput) (*BatchResult, error) {
	return s.apply(ctx, actorID, input, domain.ModerationActionFreeze)
}

// UnfreezeUsers lifts the freeze from every known account in input.
func (s *Service) UnfreezeUsers(ctx context.Context, actorID uuid.UUID, input BatchInput) (*BatchResult, error) {
	return s.apply(ctx, actorID, input, domain.ModerationActionUnfreeze)
}

// PromoteUsers grants the admin role to every known account in input.
func (s *Service) PromoteUsers(ctx context.Context, actorID uuid.UUID, input BatchInput) (*BatchResult, error) {
	return s.apply(ctx, actorID, input, domain.ModerationActionPromote)
}

// DemoteUsers returns every known account in input to the user role. An
// admin cannot demote themselves.
func (s *Service) DemoteUsers(ctx context.Context, actorID uuid.UUID, input BatchInput) (*BatchResult, error) {
	return s.apply(ctx, actorID, input, domain.ModerationActionDemote)
}

// ListUsers returns a page of the user directory. Admin only.
func (s *Service) ListUsers(ctx context.Context, actorID uuid.UUID, input ListUsersInput) ([]domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.access.RequireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.listLimit
	}

	users, err := s.users.List(ctx, input.sortField(), input.Desc, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *Service) apply(ctx context.Context, actorID uuid.UUID, input BatchInput, action domain.ModerationAction) (*BatchResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.access.RequireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	ids := input.ids()
	if locksOutActor(action) {
		for _, id := range ids {
			if id == actorID {
				return nil, domain.NewValidationError("userIds", "must not include the caller")
			}
		}
	}

	var (
		result  BatchResult
		changed []domain.User
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		found, err := s.users.GetByIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("get users: %w", err)
		}

		byID := make(map[uuid.UUID]domain.User, len(found))
		for _, u := range found {
			byID[u.ID] = u
		}

		result, changed = BatchResult{}, nil
		for _, id := range ids {
			u, ok := byID[id]
			switch {
			case !ok:
				result.Missing = append(result.Missing, id)
			case !needsChange(u, action):
				result.Unchanged = append(result.Unchanged, id)
			default:
				if err := s.change(ctx, id, action); err != nil {
					return err
				}
				result.Changed = append(result.Changed, id)
				changed = append(changed, u)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for range changed {
		s.metrics.ModerationAction(action.String())
	}
	s.log.InfoContext(ctx, "users updated",
		slog.String("action", action.String()),
		slog.String("actor_id", actorID.String()),
		slog.Int("changed", len(result.Changed)),
		slog.Int("unchanged", len(result.Unchanged)),
		slog.Int("missing", len(result.Missing)),
	)

	if action == domain.ModerationActionFreeze {
		frozenAt := s.now().UTC()
		for _, u := range changed {
			s.notifyFrozen(ctx, u, frozenAt)
		}
	}

	return &result, nil
}

// locksOutActor reports whether action would take the caller's own admin
// access away.
func locksOutActor(action domain.ModerationAction) bool {
	return action == domain.ModerationActionFreeze || action == domain.ModerationActionDemote
}

func needsChange(u domain.User, action domain.ModerationAction) bool {
	switch action {
	case domain.ModerationActionFreeze:
		return !u.Frozen
	case domain.ModerationActionUnfreeze:
		return u.Frozen
	case domain.ModerationActionPromote:
		return !u.IsAdmin()
	case domain.ModerationActionDemote:
		return u.IsAdmin()
	}
	return false
}

func (s *Service) change(ctx context.Context, id uuid.UUID, action domain.ModerationAction) error {
	var err error
	switch action {
	case domain.ModerationActionFreeze:
		err = s.users.SetFrozen(ctx, id, true)
	case domain.ModerationActionUnfreeze:
		err = s.users.SetFrozen(ctx, id, false)
	case domain.ModerationActionPromote:
		err = s.users.SetRole(ctx, id, domain.UserRoleAdmin)
	case domain.ModerationActionDemote:
		err = s.users.SetRole(ctx, id, domain.UserRoleUser)
	default:
		return fmt.Errorf("unsupported user action %q", action)
	}
	if err != nil {
		return fmt.Errorf("%s user %s: %w", action, id, err)
	}
	return nil
}

func (s *Service) notifyFrozen(ctx context.Context, u domain.User, frozenAt time.Time) {
	if u.Email == "" {
		return
	}

	err := s.notifier.NotifyAccountFrozen(ctx, notify.AccountFrozenNotice{
		Email:    u.Email,
		Username: u.Username,
		FrozenAt: frozenAt,
	})
	if err != nil {
		s.metrics.NotificationFailed()
		s.log.WarnContext(ctx, "account frozen notice not delivered",
			slog.String("user_id", u.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}
