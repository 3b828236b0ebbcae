package confirmation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/propertypasalo/backend/internal/domain"
)

var _ inquiryRepo = &inquiryRepoMock{}

type inquiryRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, status domain.InquiryStatus) (*domain.Inquiry, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		UpdateStatus []struct {
			ID     uuid.UUID
			Status domain.InquiryStatus
		}
	}
	lockGetByID      sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

func (mock *inquiryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error) {
	if mock.GetByIDFunc == nil {
		panic("inquiryRepoMock.GetByIDFunc: method is nil but inquiryRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *inquiryRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *inquiryRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InquiryStatus) (*domain.Inquiry, error) {
	if mock.UpdateStatusFunc == nil {
		panic("inquiryRepoMock.UpdateStatusFunc: method is nil but inquiryRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		ID     uuid.UUID
		Status domain.InquiryStatus
	}{ID: id, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *inquiryRepoMock) UpdateStatusCalls() []struct {
	ID     uuid.UUID
	Status domain.InquiryStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
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

var _ counterRepo = &counterRepoMock{}

type counterRepoMock struct {
	IncrementFunc func(ctx context.Context, name string) (int64, error)

	calls struct {
		Increment []struct {
			Name string
		}
	}
	lockIncrement sync.RWMutex
}

func (mock *counterRepoMock) Increment(ctx context.Context, name string) (int64, error) {
	if mock.IncrementFunc == nil {
		panic("counterRepoMock.IncrementFunc: method is nil but counterRepo.Increment was just called")
	}
	mock.lockIncrement.Lock()
	mock.calls.Increment = append(mock.calls.Increment, struct{ Name string }{Name: name})
	mock.lockIncrement.Unlock()
	return mock.IncrementFunc(ctx, name)
}

func (mock *counterRepoMock) IncrementCalls() []struct{ Name string } {
	mock.lockIncrement.RLock()
	calls := mock.calls.Increment
	mock.lockIncrement.RUnlock()
	return calls
}

var _ Notifier = &notifierMock{}

type notifierMock struct {
	ConfirmationReceivedFunc func(ctx context.Context, inq domain.Inquiry) error

	calls struct {
		ConfirmationReceived []struct {
			Inq domain.Inquiry
		}
	}
	lockConfirmationReceived sync.RWMutex
}

func (mock *notifierMock) ConfirmationReceived(ctx context.Context, inq domain.Inquiry) error {
	if mock.ConfirmationReceivedFunc == nil {
		panic("notifierMock.ConfirmationReceivedFunc: method is nil but Notifier.ConfirmationReceived was just called")
	}
	mock.lockConfirmationReceived.Lock()
	mock.calls.ConfirmationReceived = append(mock.calls.ConfirmationReceived, struct{ Inq domain.Inquiry }{Inq: inq})
	mock.lockConfirmationReceived.Unlock()
	return mock.ConfirmationReceivedFunc(ctx, inq)
}

func (mock *notifierMock) ConfirmationReceivedCalls() []struct{ Inq domain.Inquiry } {
	mock.lockConfirmationReceived.RLock()
	calls := mock.calls.ConfirmationReceived
	mock.lockConfirmationReceived.RUnlock()
	return calls
}
