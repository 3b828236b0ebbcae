package client

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/propertypasalo/backend/internal/domain"
)

var _ clientRepo = &clientRepoMock{}

type clientRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	ListFunc             func(ctx context.Context) ([]domain.Client, error)
	UpdateFunc           func(ctx context.Context, c domain.Client) (*domain.Client, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		GetByIDForUpdate []struct {
			ID uuid.UUID
		}
		List   []struct{}
		Update []struct {
			C domain.Client
		}
	}
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockList             sync.RWMutex
	lockUpdate           sync.RWMutex
}

func (mock *clientRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	if mock.GetByIDFunc == nil {
		panic("clientRepoMock.GetByIDFunc: method is nil but clientRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *clientRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *clientRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("clientRepoMock.GetByIDForUpdateFunc: method is nil but clientRepo.GetByIDForUpdate was just called")
	}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, struct{ ID uuid.UUID }{ID: id})
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *clientRepoMock) GetByIDForUpdateCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *clientRepoMock) List(ctx context.Context) ([]domain.Client, error) {
	if mock.ListFunc == nil {
		panic("clientRepoMock.ListFunc: method is nil but clientRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *clientRepoMock) ListCalls() []struct{} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *clientRepoMock) Update(ctx context.Context, c domain.Client) (*domain.Client, error) {
	if mock.UpdateFunc == nil {
		panic("clientRepoMock.UpdateFunc: method is nil but clientRepo.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ C domain.Client }{C: c})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, c)
}

func (mock *clientRepoMock) UpdateCalls() []struct{ C domain.Client } {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	CreateFunc func(ctx context.Context, a domain.Activity) (domain.Activity, error)

	calls struct {
		Create []struct {
			A domain.Activity
		}
	}
	lockCreate sync.RWMutex
}

func (mock *activityRepoMock) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	if mock.CreateFunc == nil {
		panic("activityRepoMock.CreateFunc: method is nil but activityRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ A domain.Activity }{A: a})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *activityRepoMock) CreateCalls() []struct{ A domain.Activity } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback inline, mirroring a committed
// transaction.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
