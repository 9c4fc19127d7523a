package moderation

import (
	"context"
	"sync"

	"github.com/heartmarshall/readtrack-backend/internal/domain"
)

var _ chainDetacher = &chainDetacherMock{}

type chainDetacherMock struct {
	DetachFunc func(ctx context.Context, target domain.ReadingLog) error

	calls struct {
		Detach []struct {
			Ctx    context.Context
			Target domain.ReadingLog
		}
	}
	lockDetach sync.RWMutex
}

func (mock *chainDetacherMock) Detach(ctx context.Context, target domain.ReadingLog) error {
	if mock.DetachFunc == nil {
		panic("chainDetacherMock.DetachFunc: method is nil but chainDetacher.Detach was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Target domain.ReadingLog
	}{Ctx: ctx, Target: target}
	mock.lockDetach.Lock()
	mock.calls.Detach = append(mock.calls.Detach, callInfo)
	mock.lockDetach.Unlock()
	return mock.DetachFunc(ctx, target)
}

func (mock *chainDetacherMock) DetachCalls() []struct {
	Ctx    context.Context
	Target domain.ReadingLog
} {
	mock.lockDetach.RLock()
	calls := mock.calls.Detach
	mock.lockDetach.RUnlock()
	return calls
}
