package statistics

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
)

var _ sessionReader = &sessionReaderMock{}

type sessionReaderMock struct {
	ListCompletedSummariesFunc func(ctx context.Context, userID uuid.UUID, since *time.Time) ([]domain.SessionSummary, error)
	RecentCompletedFunc        func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RecentSession, error)

	calls struct {
		ListCompletedSummaries []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Since  *time.Time
		}
		RecentCompleted []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
	}
	lockListCompletedSummaries sync.RWMutex
	lockRecentCompleted        sync.RWMutex
}

func (mock *sessionReaderMock) ListCompletedSummaries(ctx context.Context, userID uuid.UUID, since *time.Time) ([]domain.SessionSummary, error) {
	if mock.ListCompletedSummariesFunc == nil {
		panic("sessionReaderMock.ListCompletedSummariesFunc: method is nil but sessionReader.ListCompletedSummaries was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Since  *time.Time
	}{Ctx: ctx, UserID: userID, Since: since}
	mock.lockListCompletedSummaries.Lock()
	mock.calls.ListCompletedSummaries = append(mock.calls.ListCompletedSummaries, callInfo)
	mock.lockListCompletedSummaries.Unlock()
	return mock.ListCompletedSummariesFunc(ctx, userID, since)
}

func (mock *sessionReaderMock) ListCompletedSummariesCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Since  *time.Time
} {
	mock.lockListCompletedSummaries.RLock()
	calls := mock.calls.ListCompletedSummaries
	mock.lockListCompletedSummaries.RUnlock()
	return calls
}

func (mock *sessionReaderMock) RecentCompleted(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RecentSession, error) {
	if mock.RecentCompletedFunc == nil {
		panic("sessionReaderMock.RecentCompletedFunc: method is nil but sessionReader.RecentCompleted was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockRecentCompleted.Lock()
	mock.calls.RecentCompleted = append(mock.calls.RecentCompleted, callInfo)
	mock.lockRecentCompleted.Unlock()
	return mock.RecentCompletedFunc(ctx, userID, limit)
}

func (mock *sessionReaderMock) RecentCompletedCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockRecentCompleted.RLock()
	calls := mock.calls.RecentCompleted
	mock.lockRecentCompleted.RUnlock()
	return calls
}
