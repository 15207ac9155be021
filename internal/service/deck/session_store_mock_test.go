package deck

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ sessionStore = &sessionStoreMock{}

type sessionStoreMock struct {
	DeleteByDeckFunc func(ctx context.Context, deckID uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		DeleteByDeck []struct {
			Ctx    context.Context
			DeckID uuid.UUID
		}
	}
	lockDeleteByDeck sync.RWMutex
}

func (mock *sessionStoreMock) DeleteByDeck(ctx context.Context, deckID uuid.UUID) ([]uuid.UUID, error) {
	if mock.DeleteByDeckFunc == nil {
		panic("sessionStoreMock.DeleteByDeckFunc: method is nil but sessionStore.DeleteByDeck was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DeckID uuid.UUID
	}{Ctx: ctx, DeckID: deckID}
	mock.lockDeleteByDeck.Lock()
	mock.calls.DeleteByDeck = append(mock.calls.DeleteByDeck, callInfo)
	mock.lockDeleteByDeck.Unlock()
	return mock.DeleteByDeckFunc(ctx, deckID)
}

func (mock *sessionStoreMock) DeleteByDeckCalls() []struct {
	Ctx    context.Context
	DeckID uuid.UUID
} {
	mock.lockDeleteByDeck.RLock()
	calls := mock.calls.DeleteByDeck
	mock.lockDeleteByDeck.RUnlock()
	return calls
}
