package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/domain"
	"github.com/heartmarshall/readtrack-backend/internal/service/administration"
)

var _ userAdminService = &userAdminServiceMock{}

type userAdminServiceMock struct {
	DemoteUsersFunc   func(ctx context.Context, actorID uuid.UUID, input administration.BatchInput) (*administration.BatchResult, error)
	FreezeUsersFunc   func(ctx context.Context, actorID uuid.UUID, input administration.BatchInput) (*administration.BatchResult, error)
	ListUsersFunc     func(ctx context.Context, actorID uuid.UUID, input administration.ListUsersInput) ([]domain.User, error)
	PromoteUsersFunc  func(ctx context.Context, actorID uuid.UUID, input administration.BatchInput) (*administration.BatchResult, error)
	UnfreezeUsersFunc func(ctx context.Context, actorID uuid.UUID, input administration.BatchInput) (*administration.BatchResult, error)

	calls struct {
		DemoteUsers []struct {
			Ctx     context.Context
			ActorID uuid.UUID
			Input   administration.BatchInput
		}
		FreezeUsers []struct {
			Ctx     context.Context
			ActorID uuid.UUID
			Input   administration.BatchInput
		}
		ListUsers []struct {
			Ctx     context.Context
			ActorID uuid.UUID
			Input   administration.ListUsersInput
		}
		PromoteUsers []struct {
			Ctx     context.Context
			ActorID uuid.UUID
			Input   administration.BatchInput
		}
		UnfreezeUsers []struct {
			Ctx     context.Context
			ActorID uuid.UUID
			Input   administration.BatchInput
		}
	}
	lockDemoteUsers   sync.RWMutex
	lockFreezeUsers   sync.RWMutex
	lockListUsers     sync.RWMutex
	lockPromoteUsers  sync.RWMutex
	lockUnfreezeUsers sync.RWMutex
}

func (mock *userAdminServiceMock) DemoteUsers(ctx context.Context, actorID uuid.UUID, input administration.BatchInput) (*administration.BatchResult, error) {
	if mock.DemoteUsersFunc == nil {
		panic("userAdminServiceMock.DemoteUsersFunc: method is nil but userAdminService.DemoteUsers was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ActorID uuid.UUID
		Input   administration.BatchInput
	}{Ctx: ctx, ActorID: actorID, Input: input}
	mock.lockDemoteUsers.Lock()
	mock.calls.DemoteUsers = append(mock.calls.DemoteUsers, callInfo)
	mock.lockDemoteUsers.Unlock()
	return mock.DemoteUsersFunc(ctx, actorID, input)
}

func (mock *userAdminServiceMock) DemoteUsersCalls() []struct {
	Ctx     context.Context
	ActorID uuid.UUID
	Input   administration.BatchInput
} {
	mock.lockDemoteUsers.RLock()
	calls := mock.calls.DemoteUsers
	mock.lockDemoteUsers.RUnlock()
	return calls
}

func (mock *userAdminServiceMock) FreezeUsers(ctx context.Context, actorID uuid.UUID, input administration.BatchInput) (*administration.BatchResult, error) {
	if mock.FreezeUsersFunc == nil {
		panic("userAdminServiceMock.FreezeUsersFunc: method is nil but userAdminService.FreezeUsers was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ActorID uuid.UUID
		Input   administration.BatchInput
	}{Ctx: ctx, ActorID: actorID, Input: input}
	mock.lockFreezeUsers.Lock()
	mock.calls.FreezeUsers = append(mock.calls.FreezeUsers, callInfo)
	mock.lockFreezeUsers.Unlock()
	return mock.FreezeUsersFunc(ctx, actorID, input)
}

func (mock *userAdminServiceMock) FreezeUsersCalls() []struct {
	Ctx     context.Context
	ActorID uuid.UUID
	Input   administration.BatchInput
} {
	mock.lockFreezeUsers.RLock()
	calls := mock.calls.FreezeUsers
	mock.lockFreezeUsers.RUnlock()
	return calls
}

func (mock *userAdminServiceMock) ListUsers(ctx context.Context, actorID uuid.UUID, input administration.ListUsersInput) ([]domain.User, error) {
	if mock.ListUsersFunc == nil {
		panic("userAdminServiceMock.ListUsersFunc: method is nil but userAdminService.ListUsers was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ActorID uuid.UUID
		Input   administration.ListUsersInput
	}{Ctx: ctx, ActorID: actorID, Input: input}
	mock.lockListUsers.Lock()
	mock.calls.ListUsers = append(mock.calls.ListUsers, callInfo)
	mock.lockListUsers.Unlock()
	return mock.ListUsersFunc(ctx, actorID, input)
}

func (mock *userAdminServiceMock) ListUsersCalls() []struct {
	Ctx     context.Context
	ActorID uuid.UUID
	Input   administration.ListUsersInput
} {
	mock.lockListUsers.RLock()
	calls := mock.calls.ListUsers
	mock.lockListUsers.RUnlock()
	return calls
}

func (mock *userAdminServiceMock) PromoteUsers(ctx context.Context, actorID uuid.UUID, input administration.BatchInput) (*administration.BatchResult, error) {
	if mock.PromoteUsersFunc == nil {
		panic("userAdminServiceMock.PromoteUsersFunc: method is nil but userAdminService.PromoteUsers was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ActorID uuid.UUID
		Input   administration.BatchInput
	}{Ctx: ctx, ActorID: actorID, Input: input}
	mock.lockPromoteUsers.Lock()
	mock.calls.PromoteUsers = append(mock.calls.PromoteUsers, callInfo)
	mock.lockPromoteUsers.Unlock()
	return mock.PromoteUsersFunc(ctx, actorID, input)
}

func (mock *userAdminServiceMock) PromoteUsersCalls() []struct {
	Ctx     context.Context
	ActorID uuid.UUID
	Input   administration.BatchInput
} {
	mock.lockPromoteUsers.RLock()
	calls := mock.calls.PromoteUsers
	mock.lockPromoteUsers.RUnlock()
	return calls
}

func (mock *userAdminServiceMock) UnfreezeUsers(ctx context.Context, actorID uuid.UUID, input administration.BatchInput) (*administration.BatchResult, error) {
	if mock.UnfreezeUsersFunc == nil {
		panic("userAdminServiceMock.UnfreezeUsersFunc: method is nil but userAdminService.UnfreezeUsers was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ActorID uuid.UUID
		Input   administration.BatchInput
	}{Ctx: ctx, ActorID: actorID, Input: input}
	mock.lockUnfreezeUsers.Lock()
	mock.calls.UnfreezeUsers = append(mock.calls.UnfreezeUsers, callInfo)
	mock.lockUnfreezeUsers.Unlock()
	return mock.UnfreezeUsersFunc(ctx, actorID, input)
}

func (mock *userAdminServiceMock) UnfreezeUsersCalls() []struct {
	Ctx     context.Context
	ActorID uuid.UUID
	Input   administration.BatchInput
} {
	mock.lockUnfreezeUsers.RLock()
	calls := mock.calls.UnfreezeUsers
	mock.lockUnfreezeUsers.RUnlock()
	return calls
}
