package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/domain"
	"github.com/heartmarshall/readtrack-backend/internal/service/logdraft"
	"github.com/heartmarshall/readtrack-backend/internal/service/moderation"
)

var _ moderationService = &moderationServiceMock{}

type moderationServiceMock struct {
	FlagLogFunc            func(ctx context.Context, actorID uuid.UUID, logID uuid.UUID) (*domain.ViolationRecord, error)
	GetViolationFunc       func(ctx context.Context, actorID uuid.UUID, violationID uuid.UUID) (*domain.ViolationRecord, error)
	ListUserViolationsFunc func(ctx context.Context, actorID uuid.UUID, userID uuid.UUID) ([]domain.ViolationRecord, error)
	ListViolationsFunc     func(ctx context.Context, actorID uuid.UUID, input moderation.ListInput) ([]domain.ViolationRecord, error)
	RestoreViolationFunc   func(ctx context.Context, actorID uuid.UUID, violationID uuid.UUID) (*domain.ReadingLog, error)
	UpdateViolationFunc    func(ctx context.Context, actorID uuid.UUID, violationID uuid.UUID, input logdraft.Input) (*domain.ViolationRecord, error)

	calls struct {
		FlagLog []struct {
			Ctx     context.Context
			ActorID uuid.UUID
			LogID   uuid.UUID
		}
		GetViolation []struct {
			Ctx         context.Context
			ActorID     uuid.UUID
			ViolationID uuid.UUID
		}
		ListUserViolations []struct {
			Ctx     context.Context
			ActorID uuid.UUID
			UserID  uuid.UUID
		}
		ListViolations []struct {
			Ctx     context.Context
			ActorID uuid.UUID
			Input   moderation.ListInput
		}
		RestoreViolation []struct {
			Ctx         context.Context
			ActorID     uuid.UUID
			ViolationID uuid.UUID
		}
		UpdateViolation []struct {
			Ctx         context.Context
			ActorID     uuid.UUID
			ViolationID uuid.UUID
			Input       logdraft.Input
		}
	}
	lockFlagLog            sync.RWMutex
	lockGetViolation       sync.RWMutex
	lockListUserViolations sync.RWMutex
	lockListViolations     sync.RWMutex
	lockRestoreViolation   sync.RWMutex
	lockUpdateViolation    sync.RWMutex
}

func (mock *moderationServiceMock) FlagLog(ctx context.Context, actorID uuid.UUID, logID uuid.UUID) (*domain.ViolationRecord, error) {
	if mock.FlagLogFunc == nil {
		panic("moderationServiceMock.FlagLogFunc: method is nil but moderationService.FlagLog was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ActorID uuid.UUID
		LogID   uuid.UUID
	}{Ctx: ctx, ActorID: actorID, LogID: logID}
	mock.lockFlagLog.Lock()
	mock.calls.FlagLog = append(mock.calls.FlagLog, callInfo)
	mock.lockFlagLog.Unlock()
	return mock.FlagLogFunc(ctx, actorID, logID)
}

func (mock *moderationServiceMock) FlagLogCalls() []struct {
	Ctx     context.Context
	ActorID uuid.UUID
	LogID   uuid.UUID
} {
	mock.lockFlagLog.RLock()
	calls := mock.calls.FlagLog
	mock.lockFlagLog.RUnlock()
	return calls
}

func (mock *moderationServiceMock) GetViolation(ctx context.Context, actorID uuid.UUID, violationID uuid.UUID) (*domain.ViolationRecord, error) {
	if mock.GetViolationFunc == nil {
		panic("moderationServiceMock.GetViolationFunc: method is nil but moderationService.GetViolation was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ActorID     uuid.UUID
		ViolationID uuid.UUID
	}{Ctx: ctx, ActorID: actorID, ViolationID: violationID}
	mock.lockGetViolation.Lock()
	mock.calls.GetViolation = append(mock.calls.GetViolation, callInfo)
	mock.lockGetViolation.Unlock()
	return mock.GetViolationFunc(ctx, actorID, violationID)
}

func (mock *moderationServiceMock) GetViolationCalls() []struct {
	Ctx         context.Context
	ActorID     uuid.UUID
	ViolationID uuid.UUID
} {
	mock.lockGetViolation.RLock()
	calls := mock.calls.GetViolation
	mock.lockGetViolation.RUnlock()
	return calls
}

func (mock *moderationServiceMock) ListUserViolations(ctx context.Context, actorID uuid.UUID, userID uuid.UUID) ([]domain.ViolationRecord, error) {
	if mock.ListUserViolationsFunc == nil {
		panic("moderationServiceMock.ListUserViolationsFunc: method is nil but moderationService.ListUserViolations was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ActorID uuid.UUID
		UserID  uuid.UUID
	}{Ctx: ctx, ActorID: actorID, UserID: userID}
	mock.lockListUserViolations.Lock()
	mock.calls.ListUserViolations = append(mock.calls.ListUserViolations, callInfo)
	mock.lockListUserViolations.Unlock()
	return mock.ListUserViolationsFunc(ctx, actorID, userID)
}

func (mock *moderationServiceMock) ListUserViolationsCalls() []struct {
	Ctx     context.Context
	ActorID uuid.UUID
	UserID  uuid.UUID
} {
	mock.lockListUserViolations.RLock()
	calls := mock.calls.ListUserViolations
	mock.lockListUserViolations.RUnlock()
	return calls
}

func (mock *moderationServiceMock) ListViolations(ctx context.Context, actorID uuid.UUID, input moderation.ListInput) ([]domain.ViolationRecord, error) {
	if mock.ListViolationsFunc == nil {
		panic("moderationServiceMock.ListViolationsFunc: method is nil but moderationService.ListViolations was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ActorID uuid.UUID
		Input   moderation.ListInput
	}{Ctx: ctx, ActorID: actorID, Input: input}
	mock.lockListViolations.Lock()
	mock.calls.ListViolations = append(mock.calls.ListViolations, callInfo)
	mock.lockListViolations.Unlock()
	return mock.ListViolationsFunc(ctx, actorID, input)
}

func (mock *moderationServiceMock) ListViolationsCalls() []struct {
	Ctx     context.Context
	ActorID uuid.UUID
	Input   moderation.ListInput
} {
	mock.lockListViolations.RLock()
	calls := mock.calls.ListViolations
	mock.lockListViolations.RUnlock()
	return calls
}

func (mock *moderationServiceMock) RestoreViolation(ctx context.Context, actorID uuid.UUID, violationID uuid.UUID) (*domain.ReadingLog, error) {
	if mock.RestoreViolationFunc == nil {
		panic("moderationServiceMock.RestoreViolationFunc: method is nil but moderationService.RestoreViolation was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ActorID     uuid.UUID
		ViolationID uuid.UUID
	}{Ctx: ctx, ActorID: actorID, ViolationID: violationID}
	mock.lockRestoreViolation.Lock()
	mock.calls.RestoreViolation = append(mock.calls.RestoreViolation, callInfo)
	mock.lockRestoreViolation.Unlock()
	return mock.RestoreViolationFunc(ctx, actorID, violationID)
}

func (mock *moderationServiceMock) RestoreViolationCalls() []struct {
	Ctx         context.Context
	ActorID     uuid.UUID
	ViolationID uuid.UUID
} {
	mock.lockRestoreViolation.RLock()
	calls := mock.calls.RestoreViolation
	mock.lockRestoreViolation.RUnlock()
	return calls
}

func (mock *moderationServiceMock) UpdateViolation(ctx context.Context, actorID uuid.UUID, violationID uuid.UUID, input logdraft.Input) (*domain.ViolationRecord, error) {
	if mock.UpdateViolationFunc == nil {
		panic("moderationServiceMock.UpdateViolationFunc: method is nil but moderationService.UpdateViolation was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ActorID     uuid.UUID
		ViolationID uuid.UUID
		Input       logdraft.Input
	}{Ctx: ctx, ActorID: actorID, ViolationID: violationID, Input: input}
	mock.lockUpdateViolation.Lock()
	mock.calls.UpdateViolation = append(mock.calls.UpdateViolation, callInfo)
	mock.lockUpdateViolation.Unlock()
	return mock.UpdateViolationFunc(ctx, actorID, violationID, input)
}

func (mock *moderationServiceMock) UpdateViolationCalls() []struct {
	Ctx         context.Context
	ActorID     uuid.UUID
	ViolationID uuid.UUID
	Input       logdraft.Input
} {
	mock.lockUpdateViolation.RLock()
	calls := mock.calls.UpdateViolation
	mock.lockUpdateViolation.RUnlock()
	return calls
}
