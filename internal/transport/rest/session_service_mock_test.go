package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
	"github.com/heartmarshall/studydeck-backend/internal/service/session"
)

var _ sessionService = &sessionServiceMock{}

type sessionServiceMock struct {
	StartSessionFunc    func(ctx context.Context, input session.StartSessionInput) (*domain.StudySession, error)
	GetSessionFunc      func(ctx context.Context, input session.GetSessionInput) (*domain.StudySession, error)
	RecordOutcomeFunc   func(ctx context.Context, input session.RecordOutcomeInput) (*session.OutcomeResult, error)
	CompleteSessionFunc func(ctx context.Context, input session.CompleteSessionInput) (*session.CompleteResult, error)

	calls struct {
		StartSession []struct {
			Ctx   context.Context
			Input session.StartSessionInput
		}
		GetSession []struct {
			Ctx   context.Context
			Input session.GetSessionInput
		}
		RecordOutcome []struct {
			Ctx   context.Context
			Input session.RecordOutcomeInput
		}
		CompleteSession []struct {
			Ctx   context.Context
			Input session.CompleteSessionInput
		}
	}
	lockStartSession    sync.RWMutex
	lockGetSession      sync.RWMutex
	lockRecordOutcome   sync.RWMutex
	lockCompleteSession sync.RWMutex
}

func (mock *sessionServiceMock) StartSession(ctx context.Context, input session.StartSessionInput) (*domain.StudySession, error) {
	if mock.StartSessionFunc == nil {
		panic("sessionServiceMock.StartSessionFunc: method is nil but sessionService.StartSession was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input session.StartSessionInput
	}{Ctx: ctx, Input: input}
	mock.lockStartSession.Lock()
	mock.calls.StartSession = append(mock.calls.StartSession, callInfo)
	mock.lockStartSession.Unlock()
	return mock.StartSessionFunc(ctx, input)
}

func (mock *sessionServiceMock) StartSessionCalls() []struct {
	Ctx   context.Context
	Input session.StartSessionInput
} {
	mock.lockStartSession.RLock()
	calls := mock.calls.StartSession
	mock.lockStartSession.RUnlock()
	return calls
}

func (mock *sessionServiceMock) GetSession(ctx context.Context, input session.GetSessionInput) (*domain.StudySession, error) {
	if mock.GetSessionFunc == nil {
		panic("sessionServiceMock.GetSessionFunc: method is nil but sessionService.GetSession was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input session.GetSessionInput
	}{Ctx: ctx, Input: input}
	mock.lockGetSession.Lock()
	mock.calls.GetSession = append(mock.calls.GetSession, callInfo)
	mock.lockGetSession.Unlock()
	return mock.GetSessionFunc(ctx, input)
}

func (mock *sessionServiceMock) GetSessionCalls() []struct {
	Ctx   context.Context
	Input session.GetSessionInput
} {
	mock.lockGetSession.RLock()
	calls := mock.calls.GetSession
	mock.lockGetSession.RUnlock()
	return calls
}

func (mock *sessionServiceMock) RecordOutcome(ctx context.Context, input session.RecordOutcomeInput) (*session.OutcomeResult, error) {
	if mock.RecordOutcomeFunc == nil {
		panic("sessionServiceMock.RecordOutcomeFunc: method is nil but sessionService.RecordOutcome was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input session.RecordOutcomeInput
	}{Ctx: ctx, Input: input}
	mock.lockRecordOutcome.Lock()
	mock.calls.RecordOutcome = append(mock.calls.RecordOutcome, callInfo)
	mock.lockRecordOutcome.Unlock()
	return mock.RecordOutcomeFunc(ctx, input)
}

func (mock *sessionServiceMock) RecordOutcomeCalls() []struct {
	Ctx   context.Context
	Input session.RecordOutcomeInput
} {
	mock.lockRecordOutcome.RLock()
	calls := mock.calls.RecordOutcome
	mock.lockRecordOutcome.RUnlock()
	return calls
}

func (mock *sessionServiceMock) CompleteSession(ctx context.Context, input session.CompleteSessionInput) (*session.CompleteResult, error) {
	if mock.CompleteSessionFunc == nil {
		panic("sessionServiceMock.CompleteSessionFunc: method is nil but sessionService.CompleteSession was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input session.CompleteSessionInput
	}{Ctx: ctx, Input: input}
	mock.lockCompleteSession.Lock()
	mock.calls.CompleteSession = append(mock.calls.CompleteSession, callInfo)
	mock.lockCompleteSession.Unlock()
	return mock.CompleteSessionFunc(ctx, input)
}

func (mock *sessionServiceMock) CompleteSessionCalls() []struct {
	Ctx   context.Context
	Input session.CompleteSessionInput
} {
	mock.lockCompleteSession.RLock()
	calls := mock.calls.CompleteSession
	mock.lockCompleteSession.RUnlock()
	return calls
}
