package administration

import (
	"context"
	"sync"

	"github.com/heartmarshall/readtrack-backend/internal/adapter/notify"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	NotifyAccountFrozenFunc func(ctx context.Context, n notify.AccountFrozenNotice) error

	calls struct {
		NotifyAccountFrozen []struct {
			Ctx context.Context
			N   notify.AccountFrozenNotice
		}
	}
	lockNotifyAccountFrozen sync.RWMutex
}

func (mock *notifierMock) NotifyAccountFrozen(ctx context.Context, n notify.AccountFrozenNotice) error {
	if mock.NotifyAccountFrozenFunc == nil {
		panic("notifierMock.NotifyAccountFrozenFunc: method is nil but notifier.NotifyAccountFrozen was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   notify.AccountFrozenNotice
	}{Ctx: ctx, N: n}
	mock.lockNotifyAccountFrozen.Lock()
	mock.calls.NotifyAccountFrozen = append(mock.calls.NotifyAccountFrozen, callInfo)
	mock.lockNotifyAccountFrozen.Unlock()
	return mock.NotifyAccountFrozenFunc(ctx, n)
}

func (mock *notifierMock) NotifyAccountFrozenCalls() []struct {
	Ctx context.Context
	N   notify.AccountFrozenNotice
} {
	mock.lockNotifyAccountFrozen.RLock()
	calls := mock.calls.NotifyAccountFrozen
	mock.lockNotifyAccountFrozen.RUnlock()
	return calls
}
