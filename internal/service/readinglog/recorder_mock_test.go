package readinglog

import (
	"sync"
)

var _ recorder = &recorderMock{}

type recorderMock struct {
	LogWrittenFunc   func(operation string)
	PageConflictFunc func(operation string)

	calls struct {
		LogWritten []struct {
			Operation string
		}
		PageConflict []struct {
			Operation string
		}
	}
	lockLogWritten   sync.RWMutex
	lockPageConflict sync.RWMutex
}

func (mock *recorderMock) LogWritten(operation string) {
	if mock.LogWrittenFunc == nil {
		panic("recorderMock.LogWrittenFunc: method is nil but recorder.LogWritten was just called")
	}
	callInfo := struct {
		Operation string
	}{Operation: operation}
	mock.lockLogWritten.Lock()
	mock.calls.LogWritten = append(mock.calls.LogWritten, callInfo)
	mock.lockLogWritten.Unlock()
	mock.LogWrittenFunc(operation)
}

func (mock *recorderMock) LogWrittenCalls() []struct {
	Operation string
} {
	mock.lockLogWritten.RLock()
	calls := mock.calls.LogWritten
	mock.lockLogWritten.RUnlock()
	return calls
}

func (mock *recorderMock) PageConflict(operation string) {
	if mock.PageConflictFunc == nil {
		panic("recorderMock.PageConflictFunc: method is nil but recorder.PageConflict was just called")
	}
	callInfo := struct {
		Operation string
	}{Operation: operation}
	mock.lockPageConflict.Lock()
	mock.calls.PageConflict = append(mock.calls.PageConflict, callInfo)
	mock.lockPageConflict.Unlock()
	mock.PageConflictFunc(operation)
}

func (mock *recorderMock) PageConflictCalls() []struct {
	Operation string
} {
	mock.lockPageConflict.RLock()
	calls := mock.calls.PageConflict
	mock.lockPageConflict.RUnlock()
	return calls
}
