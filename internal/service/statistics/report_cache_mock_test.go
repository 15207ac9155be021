package statistics

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
)

var _ reportCache = &reportCacheMock{}

type reportCacheMock struct {
	GetFunc func(ctx context.Context, userID uuid.UUID, r domain.TimeRange) (*domain.StatisticsReport, int64, error)
	SetFunc func(ctx context.Context, userID uuid.UUID, generation int64, report *domain.StatisticsReport) error

	calls struct {
		Get []struct {
			Ctx    context.Context
			UserID uuid.UUID
			R      domain.TimeRange
		}
		Set []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			Generation int64
			Report     *domain.StatisticsReport
		}
	}
	lockGet sync.RWMutex
	lockSet sync.RWMutex
}

func (mock *reportCacheMock) Get(ctx context.Context, userID uuid.UUID, r domain.TimeRange) (*domain.StatisticsReport, int64, error) {
	if mock.GetFunc == nil {
		panic("reportCacheMock.GetFunc: method is nil but reportCache.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		R      domain.TimeRange
	}{Ctx: ctx, UserID: userID, R: r}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID, r)
}

func (mock *reportCacheMock) GetCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	R      domain.TimeRange
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *reportCacheMock) Set(ctx context.Context, userID uuid.UUID, generation int64, report *domain.StatisticsReport) error {
	if mock.SetFunc == nil {
		panic("reportCacheMock.SetFunc: method is nil but reportCache.Set was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		Generation int64
		Report     *domain.StatisticsReport
	}{Ctx: ctx, UserID: userID, Generation: generation, Report: report}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, userID, generation, report)
}

func (mock *reportCacheMock) SetCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	Generation int64
	Report     *domain.StatisticsReport
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}
