package readinglog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/domain"
)

// GetLog returns one log to its owner or an admin.
func (s *Service) GetLog(ctx context.Context, actorID, logID uuid.UUID) (*domain.ReadingLog, error) {
	l, err := s.logs.GetByID(ctx, logID)
	if err != nil {
		return nil, fmt.Errorf("get log: %w", err)
	}

	if _, err := s.access.RequireOwnerOrAdmin(ctx, actorID, l.UserID); err != nil {
		return nil, err
	}

	return l, nil
}

// ListLogs returns every log of the caller, newest first.
func (s *Service) ListLogs(ctx context.Context, actorID uuid.UUID) ([]domain.ReadingLog, error) {
	p, err := s.access.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}

	logs, err := s.logs.ListByUser(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	return logs, nil
}

// ListAllLogs returns logs of every user for moderation, newest first.
func (s *Service) ListAllLogs(ctx context.Context, actorID uuid.UUID, input ListAllInput) ([]domain.ReadingLog, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.access.RequireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	logs, err := s.logs.ListAll(ctx, input.limit(), input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list all logs: %w", err)
	}
	return logs, nil
}

// GetHistory returns every version of one book, newest first. IsCurrent on
// each item marks input.CurrentLogID, not the chain head, so a client can
// highlight the version it is showing.
func (s *Service) GetHistory(ctx context.Context, actorID uuid.UUID, input HistoryInput) ([]domain.HistoryItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ownerID := actorID
	if input.UserID != nil {
		ownerID = *input.UserID
	}

	if _, err := s.access.RequireOwnerOrAdmin(ctx, actorID, ownerID); err != nil {
		return nil, err
	}

	chain, err := s.logs.FindByChain(ctx, domain.NewChainKey(ownerID, input.Title, input.Author), nil)
	if err != nil {
		return nil, fmt.Errorf("find chain: %w", err)
	}

	items := make([]domain.HistoryItem, 0, len(chain))
	for _, l := range chain {
		items = append(items, domain.NewHistoryItem(l, input.CurrentLogID))
	}
	return items, nil
}
