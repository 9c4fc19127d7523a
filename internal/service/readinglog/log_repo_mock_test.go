package readinglog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/readtrack-backend/internal/domain"
)

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	DeleteFunc                func(ctx context.Context, id uuid.UUID) error
	FindByChainFunc           func(ctx context.Context, key domain.ChainKey, excludeID *uuid.UUID) ([]domain.ReadingLog, error)
	FindByPreviousVersionFunc func(ctx context.Context, id uuid.UUID) ([]domain.ReadingLog, error)
	FindCurrentFunc           func(ctx context.Context, key domain.ChainKey) (*domain.ReadingLog, error)
	GetByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.ReadingLog, error)
	InsertFunc                func(ctx context.Context, l domain.ReadingLog) error
	ListAllFunc               func(ctx context.Context, limit int, offset int) ([]domain.ReadingLog, error)
	ListByUserFunc            func(ctx context.Context, userID uuid.UUID) ([]domain.ReadingLog, error)
	UpdateFunc                func(ctx context.Context, l domain.ReadingLog) error

	calls struct {
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		FindByChain []struct {
			Ctx       context.Context
			Key       domain.ChainKey
			ExcludeID *uuid.UUID
		}
		FindByPreviousVersion []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		FindCurrent []struct {
			Ctx context.Context
			Key domain.ChainKey
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Insert []struct {
			Ctx context.Context
			L   domain.ReadingLog
		}
		ListAll []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			L   domain.ReadingLog
		}
	}
	lockDelete                sync.RWMutex
	lockFindByChain           sync.RWMutex
	lockFindByPreviousVersion sync.RWMutex
	lockFindCurrent           sync.RWMutex
	lockGetByID               sync.RWMutex
	lockInsert                sync.RWMutex
	lockListAll               sync.RWMutex
	lockListByUser            sync.RWMutex
	lockUpdate                sync.RWMutex
}

func (mock *logRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("logRepoMock.DeleteFunc: method is nil but logRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *logRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *logRepoMock) FindByChain(ctx context.Context, key domain.ChainKey, excludeID *uuid.UUID) ([]domain.ReadingLog, error) {
	if mock.FindByChainFunc == nil {
		panic("logRepoMock.FindByChainFunc: method is nil but logRepo.FindByChain was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Key       domain.ChainKey
		ExcludeID *uuid.UUID
	}{Ctx: ctx, Key: key, ExcludeID: excludeID}
	mock.lockFindByChain.Lock()
	mock.calls.FindByChain = append(mock.calls.FindByChain, callInfo)
	mock.lockFindByChain.Unlock()
	return mock.FindByChainFunc(ctx, key, excludeID)
}

func (mock *logRepoMock) FindByChainCalls() []struct {
	Ctx       context.Context
	Key       domain.ChainKey
	ExcludeID *uuid.UUID
} {
	mock.lockFindByChain.RLock()
	calls := mock.calls.FindByChain
	mock.lockFindByChain.RUnlock()
	return calls
}

func (mock *logRepoMock) FindByPreviousVersion(ctx context.Context, id uuid.UUID) ([]domain.ReadingLog, error) {
	if mock.FindByPreviousVersionFunc == nil {
		panic("logRepoMock.FindByPreviousVersionFunc: method is nil but logRepo.FindByPreviousVersion was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockFindByPreviousVersion.Lock()
	mock.calls.FindByPreviousVersion = append(mock.calls.FindByPreviousVersion, callInfo)
	mock.lockFindByPreviousVersion.Unlock()
	return mock.FindByPreviousVersionFunc(ctx, id)
}

func (mock *logRepoMock) FindByPreviousVersionCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockFindByPreviousVersion.RLock()
	calls := mock.calls.FindByPreviousVersion
	mock.lockFindByPreviousVersion.RUnlock()
	return calls
}

func (mock *logRepoMock) FindCurrent(ctx context.Context, key domain.ChainKey) (*domain.ReadingLog, error) {
	if mock.FindCurrentFunc == nil {
		panic("logRepoMock.FindCurrentFunc: method is nil but logRepo.FindCurrent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key domain.ChainKey
	}{Ctx: ctx, Key: key}
	mock.lockFindCurrent.Lock()
	mock.calls.FindCurrent = append(mock.calls.FindCurrent, callInfo)
	mock.lockFindCurrent.Unlock()
	return mock.FindCurrentFunc(ctx, key)
}

func (mock *logRepoMock) FindCurrentCalls() []struct {
	Ctx context.Context
	Key domain.ChainKey
} {
	mock.lockFindCurrent.RLock()
	calls := mock.calls.FindCurrent
	mock.lockFindCurrent.RUnlock()
	return calls
}

func (mock *logRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReadingLog, error) {
	if mock.GetByIDFunc == nil {
		panic("logRepoMock.GetByIDFunc: method is nil but logRepo.GetByID was just called")
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

func (mock *logRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *logRepoMock) Insert(ctx context.Context, l domain.ReadingLog) error {
	if mock.InsertFunc == nil {
		panic("logRepoMock.InsertFunc: method is nil but logRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   domain.ReadingLog
	}{Ctx: ctx, L: l}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, l)
}

func (mock *logRepoMock) InsertCalls() []struct {
	Ctx context.Context
	L   domain.ReadingLog
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *logRepoMock) ListAll(ctx context.Context, limit int, offset int) ([]domain.ReadingLog, error) {
	if mock.ListAllFunc == nil {
		panic("logRepoMock.ListAllFunc: method is nil but logRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx, limit, offset)
}

func (mock *logRepoMock) ListAllCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *logRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ReadingLog, error) {
	if mock.ListByUserFunc == nil {
		panic("logRepoMock.ListByUserFunc: method is nil but logRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *logRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *logRepoMock) Update(ctx context.Context, l domain.ReadingLog) error {
	if mock.UpdateFunc == nil {
		panic("logRepoMock.UpdateFunc: method is nil but logRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   domain.ReadingLog
	}{Ctx: ctx, L: l}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, l)
}

func (mock *logRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	L   domain.ReadingLog
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
