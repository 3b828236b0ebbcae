package intake

import (
	"context"
	"sync"

	"github.com/propertypasalo/backend/internal/domain"
)

var _ inquiryRepo = &inquiryRepoMock{}

type inquiryRepoMock struct {
	CreateFunc func(ctx context.Context, inq domain.Inquiry) (domain.Inquiry, error)

	calls struct {
		Create []struct {
			Inq domain.Inquiry
		}
	}
	lockCreate sync.RWMutex
}

func (mock *inquiryRepoMock) Create(ctx context.Context, inq domain.Inquiry) (domain.Inquiry, error) {
	if mock.CreateFunc == nil {
		panic("inquiryRepoMock.CreateFunc: method is nil but inquiryRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Inq domain.Inquiry }{Inq: inq})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, inq)
}

func (mock *inquiryRepoMock) CreateCalls() []struct{ Inq domain.Inquiry } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	CreateFunc func(ctx context.Context, e domain.Event) (domain.Event, error)

	calls struct {
		Create []struct {
			E domain.Event
		}
	}
	lockCreate sync.RWMutex
}

func (mock *eventRepoMock) Create(ctx context.Context, e domain.Event) (domain.Event, error) {
	if mock.CreateFunc == nil {
		panic("eventRepoMock.CreateFunc: method is nil but eventRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ E domain.Event }{E: e})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *eventRepoMock) CreateCalls() []struct{ E domain.Event } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
