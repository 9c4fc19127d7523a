package readinglog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/domain"
)

var _ accessPolicy = &accessPolicyMock{}

type accessPolicyMock struct {
	RequireAdminFunc        func(ctx context.Context, actorID uuid.UUID) (domain.Principal, error)
	RequireOwnerOrAdminFunc func(ctx context.Context, actorID uuid.UUID, ownerID uuid.UUID) (domain.Principal, error)
	ResolveFunc             func(ctx context.Context, actorID uuid.UUID) (domain.Principal, error)

	calls struct {
		RequireAdmin []struct {
			Ctx     context.Context
			ActorID uuid.UUID
		}
		RequireOwnerOrAdmin []struct {
			Ctx     context.Context
			ActorID uuid.UUID
			OwnerID uuid.UUID
		}
		Resolve []struct {
			Ctx     context.Context
			ActorID uuid.UUID
		}
	}
	lockRequireAdmin        sync.RWMutex
	lockRequireOwnerOrAdmin sync.RWMutex
	lockResolve             sync.RWMutex
}

func (mock *accessPolicyMock) RequireAdmin(ctx context.Context, actorID uuid.UUID) (domain.Principal, error) {
	if mock.RequireAdminFunc == nil {
		panic("accessPolicyMock.RequireAdminFunc: method is nil but accessPolicy.RequireAdmin was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ActorID uuid.UUID
	}{Ctx: ctx, ActorID: actorID}
	mock.lockRequireAdmin.Lock()
	mock.calls.RequireAdmin = append(mock.calls.RequireAdmin, callInfo)
	mock.lockRequireAdmin.Unlock()
	return mock.RequireAdminFunc(ctx, actorID)
}

func (mock *accessPolicyMock) RequireAdminCalls() []struct {
	Ctx     context.Context
	ActorID uuid.UUID
} {
	mock.lockRequireAdmin.RLock()
	calls := mock.calls.RequireAdmin
	mock.lockRequireAdmin.RUnlock()
	return calls
}

func (mock *accessPolicyMock) RequireOwnerOrAdmin(ctx context.Context, actorID uuid.UUID, ownerID uuid.UUID) (domain.Principal, error) {
	if mock.RequireOwnerOrAdminFunc == nil {
		panic("accessPolicyMock.RequireOwnerOrAdminFunc: method is nil but accessPolicy.RequireOwnerOrAdmin was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ActorID uuid.UUID
		OwnerID uuid.UUID
	}{Ctx: ctx, ActorID: actorID, OwnerID: ownerID}
	mock.lockRequireOwnerOrAdmin.Lock()
	mock.calls.RequireOwnerOrAdmin = append(mock.calls.RequireOwnerOrAdmin, callInfo)
	mock.lockRequireOwnerOrAdmin.Unlock()
	return mock.RequireOwnerOrAdminFunc(ctx, actorID, ownerID)
}

func (mock *accessPolicyMock) RequireOwnerOrAdminCalls() []struct {
	Ctx     context.Context
	ActorID uuid.UUID
	OwnerID uuid.UUID
} {
	mock.lockRequireOwnerOrAdmin.RLock()
	calls := mock.calls.RequireOwnerOrAdmin
	mock.lockRequireOwnerOrAdmin.RUnlock()
	return calls
}

func (mock *accessPolicyMock) Resolve(ctx context.Context, actorID uuid.UUID) (domain.Principal, error) {
	if mock.ResolveFunc == nil {
		panic("accessPolicyMock.ResolveFunc: method is nil but accessPolicy.Resolve was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ActorID uuid.UUID
	}{Ctx: ctx, ActorID: actorID}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, actorID)
}

func (mock *accessPolicyMock) ResolveCalls() []struct {
	Ctx     context.Context
	ActorID uuid.UUID
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}
