// Package access holds the single authorization rule for reading logs and
// violation records: the owner may act, and so may any admin.
package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Policy resolves callers against the user directory. The role always comes
// from storage, never from the token.
type Policy struct {
	users userRepo
}

// NewPolicy creates a Policy.
func NewPolicy(users userRepo) *Policy {
	return &Policy{users: users}
}

// Resolve loads the principal for actorID. An unknown actor yields
// domain.ErrNotFound, a frozen one domain.ErrAccountFrozen and a nil ID
// domain.ErrUnauthorized.
func (p *Policy) Resolve(ctx context.Context, actorID uuid.UUID) (domain.Principal, error) {
	if actorID == uuid.Nil {
		return domain.Principal{}, domain.ErrUnauthorized
	}

	u, err := p.users.GetByID(ctx, actorID)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("resolve actor: %w", err)
	}
	if u.Frozen {
		return domain.Principal{}, fmt.Errorf("actor %s: %w", actorID, domain.ErrAccountFrozen)
	}

	return domain.Principal{UserID: u.ID, Role: u.Role}, nil
}

// RequireOwnerOrAdmin resolves actorID and checks it may act on a resource
// owned by ownerID. Returns domain.ErrForbidden otherwise.
func (p *Policy) RequireOwnerOrAdmin(ctx context.Context, actorID, ownerID uuid.UUID) (domain.Principal, error) {
	principal, err := p.resolveKnown(ctx, actorID)
	if err != nil {
		return domain.Principal{}, err
	}
	if !principal.CanActOn(ownerID) {
		return domain.Principal{}, domain.ErrForbidden
	}
	return principal, nil
}

// RequireAdmin resolves actorID and checks it holds the admin role.
// Returns domain.ErrForbidden otherwise.
func (p *Policy) RequireAdmin(ctx context.Context, actorID uuid.UUID) (domain.Principal, error) {
	principal, err := p.resolveKnown(ctx, actorID)
	if err != nil {
		return domain.Principal{}, err
	}
	if !principal.IsAdmin() {
		return domain.Principal{}, domain.ErrForbidden
	}
	return principal, nil
}

// resolveKnown is Resolve for permission checks: a caller missing from the
// directory is unauthenticated rather than a missing resource.
func (p *Policy) resolveKnown(ctx context.Context, actorID uuid.UUID) (domain.Principal, error) {
	principal, err := p.Resolve(ctx, actorID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Principal{}, fmt.Errorf("actor %s: %w", actorID, domain.ErrUnauthorized)
	}
	return principal, err
}
