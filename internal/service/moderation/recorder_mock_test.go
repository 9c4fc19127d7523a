package moderation

import (
	"sync"
)

var _ recorder = &recorderMock{}

type recorderMock struct {
	ModerationActionFunc   func(action string)
	NotificationFailedFunc func()

	calls struct {
		ModerationAction []struct {
			Action string
		}
		NotificationFailed []struct{}
	}
	lockModerationAction   sync.RWMutex
	lockNotificationFailed sync.RWMutex
}

func (mock *recorderMock) ModerationAction(action string) {
	if mock.ModerationActionFunc == nil {
		panic("recorderMock.ModerationActionFunc: method is nil but recorder.ModerationAction was just called")
	}
	callInfo := struct {
		Action string
	}{Action: action}
	mock.lockModerationAction.Lock()
	mock.calls.ModerationAction = append(mock.calls.ModerationAction, callInfo)
	mock.lockModerationAction.Unlock()
	mock.ModerationActionFunc(action)
}

func (mock *recorderMock) ModerationActionCalls() []struct {
	Action string
} {
	mock.lockModerationAction.RLock()
	calls := mock.calls.ModerationAction
	mock.lockModerationAction.RUnlock()
	return calls
}

func (mock *recorderMock) NotificationFailed() {
	if mock.NotificationFailedFunc == nil {
		panic("recorderMock.NotificationFailedFunc: method is nil but recorder.NotificationFailed was just called")
	}
	mock.lockNotificationFailed.Lock()
	mock.calls.NotificationFailed = append(mock.calls.NotificationFailed, struct{}{})
	mock.lockNotificationFailed.Unlock()
	mock.NotificationFailedFunc()
}

func (mock *recorderMock) NotificationFailedCalls() []struct{} {
	mock.lockNotificationFailed.RLock()
	calls := mock.calls.NotificationFailed
	mock.lockNotificationFailed.RUnlock()
	return calls
}
