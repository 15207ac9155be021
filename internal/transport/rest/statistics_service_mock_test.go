package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
	"github.com/heartmarshall/studydeck-backend/internal/service/statistics"
)

var _ statisticsService = &statisticsServiceMock{}

type statisticsServiceMock struct {
	GetUserStatisticsFunc func(ctx context.Context, input statistics.GetStatisticsInput) (*domain.StatisticsReport, error)

	calls struct {
		GetUserStatistics []struct {
			Ctx   context.Context
			Input statistics.GetStatisticsInput
		}
	}
	lockGetUserStatistics sync.RWMutex
}

func (mock *statisticsServiceMock) GetUserStatistics(ctx context.Context, input statistics.GetStatisticsInput) (*domain.StatisticsReport, error) {
	if mock.GetUserStatisticsFunc == nil {
		panic("statisticsServiceMock.GetUserStatisticsFunc: method is nil but statisticsService.GetUserStatistics was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input statistics.GetStatisticsInput
	}{Ctx: ctx, Input: input}
	mock.lockGetUserStatistics.Lock()
	mock.calls.GetUserStatistics = append(mock.calls.GetUserStatistics, callInfo)
	mock.lockGetUserStatistics.Unlock()
	return mock.GetUserStatisticsFunc(ctx, input)
}

func (mock *statisticsServiceMock) GetUserStatisticsCalls() []struct {
	Ctx   context.Context
	Input statistics.GetStatisticsInput
} {
	mock.lockGetUserStatistics.RLock()
	calls := mock.calls.GetUserStatistics
	mock.lockGetUserStatistics.RUnlock()
	return calls
}
