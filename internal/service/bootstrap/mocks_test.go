package bootstrap

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ adminsRepo = &adminsRepoMock{}

type adminsRepoMock struct {
	AnyFunc   func(ctx context.Context) (bool, error)
	GrantFunc func(ctx context.Context, uid uuid.UUID) error

	calls struct {
		Any   []struct{}
		Grant []struct {
			UID uuid.UUID
		}
	}
	lockAny   sync.RWMutex
	lockGrant sync.RWMutex
}

func (mock *adminsRepoMock) Any(ctx context.Context) (bool, error) {
	if mock.AnyFunc == nil {
		panic("adminsRepoMock.AnyFunc: method is nil but adminsRepo.Any was just called")
	}
	mock.lockAny.Lock()
	mock.calls.Any = append(mock.calls.Any, struct{}{})
	mock.lockAny.Unlock()
	return mock.AnyFunc(ctx)
}

func (mock *adminsRepoMock) AnyCalls() []struct{} {
	mock.lockAny.RLock()
	calls := mock.calls.Any
	mock.lockAny.RUnlock()
	return calls
}

func (mock *adminsRepoMock) Grant(ctx context.Context, uid uuid.UUID) error {
	if mock.GrantFunc == nil {
		panic("adminsRepoMock.GrantFunc: method is nil but adminsRepo.Grant was just called")
	}
	mock.lockGrant.Lock()
	mock.calls.Grant = append(mock.calls.Grant, struct{ UID uuid.UUID }{UID: uid})
	mock.lockGrant.Unlock()
	return mock.GrantFunc(ctx, uid)
}

func (mock *adminsRepoMock) GrantCalls() []struct{ UID uuid.UUID } {
	mock.lockGrant.RLock()
	calls := mock.calls.Grant
	mock.lockGrant.RUnlock()
	return calls
}
