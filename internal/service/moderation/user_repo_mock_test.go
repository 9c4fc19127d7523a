package moderation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	DecrementTimesFlaggedFunc func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	IncrementTimesFlaggedFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		DecrementTimesFlagged []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		IncrementTimesFlagged []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockDecrementTimesFlagged sync.RWMutex
	lockGetByID               sync.RWMutex
	lockIncrementTimesFlagged sync.RWMutex
}

func (mock *userRepoMock) DecrementTimesFlagged(ctx context.Context, id uuid.UUID) error {
	if mock.DecrementTimesFlaggedFunc == nil {
		panic("userRepoMock.DecrementTimesFlaggedFunc: method is nil but userRepo.DecrementTimesFlagged was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDecrementTimesFlagged.Lock()
	mock.calls.DecrementTimesFlagged = append(mock.calls.DecrementTimesFlagged, callInfo)
	mock.lockDecrementTimesFlagged.Unlock()
	return mock.DecrementTimesFlaggedFunc(ctx, id)
}

func (mock *userRepoMock) DecrementTimesFlaggedCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDecrementTimesFlagged.RLock()
	calls := mock.calls.DecrementTimesFlagged
	mock.lockDecrementTimesFlagged.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) IncrementTimesFlagged(ctx context.Context, id uuid.UUID) error {
	if mock.IncrementTimesFlaggedFunc == nil {
		panic("userRepoMock.IncrementTimesFlaggedFunc: method is nil but userRepo.IncrementTimesFlagged was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockIncrementTimesFlagged.Lock()
	mock.calls.IncrementTimesFlagged = append(mock.calls.IncrementTimesFlagged, callInfo)
	mock.lockIncrementTimesFlagged.Unlock()
	return mock.IncrementTimesFlaggedFunc(ctx, id)
}

func (mock *userRepoMock) IncrementTimesFlaggedCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockIncrementTimesFlagged.RLock()
	calls := mock.calls.IncrementTimesFlagged
	mock.lockIncrementTimesFlagged.RUnlock()
	return calls
}
