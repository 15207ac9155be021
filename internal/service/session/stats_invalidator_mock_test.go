package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ statsInvalidator = &statsInvalidatorMock{}

type statsInvalidatorMock struct {
	InvalidateFunc func(ctx context.Context, userID uuid.UUID) error

	calls struct {
		Invalidate []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockInvalidate sync.RWMutex
}

func (mock *statsInvalidatorMock) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if mock.InvalidateFunc == nil {
		panic("statsInvalidatorMock.InvalidateFunc: method is nil but statsInvalidator.Invalidate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockInvalidate.Lock()
	mock.calls.Invalidate = append(mock.calls.Invalidate, callInfo)
	mock.lockInvalidate.Unlock()
	return mock.InvalidateFunc(ctx, userID)
}

func (mock *statsInvalidatorMock) InvalidateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockInvalidate.RLock()
	calls := mock.calls.Invalidate
	mock.lockInvalidate.RUnlock()
	return calls
}
