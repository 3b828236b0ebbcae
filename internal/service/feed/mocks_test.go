package feed

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/propertypasalo/backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	ListRecentFunc func(ctx context.Context, limit int) ([]domain.Event, error)

	calls struct {
		ListRecent []struct {
			Limit int
		}
	}
	lockListRecent sync.RWMutex
}

func (mock *eventRepoMock) ListRecent(ctx context.Context, limit int) ([]domain.Event, error) {
	if mock.ListRecentFunc == nil {
		panic("eventRepoMock.ListRecentFunc: method is nil but eventRepo.ListRecent was just called")
	}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, struct{ Limit int }{Limit: limit})
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, limit)
}

func (mock *eventRepoMock) ListRecentCalls() []struct{ Limit int } {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}

var _ counterRepo = &counterRepoMock{}

type counterRepoMock struct {
	GetFunc func(ctx context.Context, name string) (int64, error)

	calls struct {
		Get []struct {
			Name string
		}
	}
	lockGet sync.RWMutex
}

func (mock *counterRepoMock) Get(ctx context.Context, name string) (int64, error) {
	if mock.GetFunc == nil {
		panic("counterRepoMock.GetFunc: method is nil but counterRepo.Get was just called")
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, struct{ Name string }{Name: name})
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, name)
}

func (mock *counterRepoMock) GetCalls() []struct{ Name string } {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

var _ inquiryRepo = &inquiryRepoMock{}

type inquiryRepoMock struct {
	ListFunc func(ctx context.Context) ([]domain.Inquiry, error)

	calls struct {
		List []struct{}
	}
	lockList sync.RWMutex
}

func (mock *inquiryRepoMock) List(ctx context.Context) ([]domain.Inquiry, error) {
	if mock.ListFunc == nil {
		panic("inquiryRepoMock.ListFunc: method is nil but inquiryRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *inquiryRepoMock) ListCalls() []struct{} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	ListRecentFunc   func(ctx context.Context, limit int) ([]domain.Activity, error)
	ListByClientFunc func(ctx context.Context, clientID uuid.UUID, limit int) ([]domain.Activity, error)

	calls struct {
		ListRecent []struct {
			Limit int
		}
		ListByClient []struct {
			ClientID uuid.UUID
			Limit    int
		}
	}
	lockListRecent   sync.RWMutex
	lockListByClient sync.RWMutex
}

func (mock *activityRepoMock) ListRecent(ctx context.Context, limit int) ([]domain.Activity, error) {
	if mock.ListRecentFunc == nil {
		panic("activityRepoMock.ListRecentFunc: method is nil but activityRepo.ListRecent was just called")
	}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, struct{ Limit int }{Limit: limit})
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, limit)
}

func (mock *activityRepoMock) ListRecentCalls() []struct{ Limit int } {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}

func (mock *activityRepoMock) ListByClient(ctx context.Context, clientID uuid.UUID, limit int) ([]domain.Activity, error) {
	if mock.ListByClientFunc == nil {
		panic("activityRepoMock.ListByClientFunc: method is nil but activityRepo.ListByClient was just called")
	}
	callInfo := struct {
		ClientID uuid.UUID
		Limit    int
	}{ClientID: clientID, Limit: limit}
	mock.lockListByClient.Lock()
	mock.calls.ListByClient = append(mock.calls.ListByClient, callInfo)
	mock.lockListByClient.Unlock()
	return mock.ListByClientFunc(ctx, clientID, limit)
}

func (mock *activityRepoMock) ListByClientCalls() []struct {
	ClientID uuid.UUID
	Limit    int
} {
	mock.lockListByClient.RLock()
	calls := mock.calls.ListByClient
	mock.lockListByClient.RUnlock()
	return calls
}
