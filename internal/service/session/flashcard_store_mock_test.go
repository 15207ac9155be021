package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
)

var _ flashcardStore = &flashcardStoreMock{}

type flashcardStoreMock struct {
	ListByDeckFunc    func(ctx context.Context, deckID uuid.UUID) ([]domain.Flashcard, error)
	IncrementStatFunc func(ctx context.Context, flashcardID uuid.UUID, field domain.FlashcardStatField, delta int) error

	calls struct {
		ListByDeck []struct {
			Ctx    context.Context
			DeckID uuid.UUID
		}
		IncrementStat []struct {
			Ctx         context.Context
			FlashcardID uuid.UUID
			Field       domain.FlashcardStatField
			Delta       int
		}
	}
	lockListByDeck    sync.RWMutex
	lockIncrementStat sync.RWMutex
}

func (mock *flashcardStoreMock) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]domain.Flashcard, error) {
	if mock.ListByDeckFunc == nil {
		panic("flashcardStoreMock.ListByDeckFunc: method is nil but flashcardStore.ListByDeck was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DeckID uuid.UUID
	}{Ctx: ctx, DeckID: deckID}
	mock.lockListByDeck.Lock()
	mock.calls.ListByDeck = append(mock.calls.ListByDeck, callInfo)
	mock.lockListByDeck.Unlock()
	return mock.ListByDeckFunc(ctx, deckID)
}

func (mock *flashcardStoreMock) ListByDeckCalls() []struct {
	Ctx    context.Context
	DeckID uuid.UUID
} {
	mock.lockListByDeck.RLock()
	calls := mock.calls.ListByDeck
	mock.lockListByDeck.RUnlock()
	return calls
}

func (mock *flashcardStoreMock) IncrementStat(ctx context.Context, flashcardID uuid.UUID, field domain.FlashcardStatField, delta int) error {
	if mock.IncrementStatFunc == nil {
		panic("flashcardStoreMock.IncrementStatFunc: method is nil but flashcardStore.IncrementStat was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		FlashcardID uuid.UUID
		Field       domain.FlashcardStatField
		Delta       int
	}{Ctx: ctx, FlashcardID: flashcardID, Field: field, Delta: delta}
	mock.lockIncrementStat.Lock()
	mock.calls.IncrementStat = append(mock.calls.IncrementStat, callInfo)
	mock.lockIncrementStat.Unlock()
	return mock.IncrementStatFunc(ctx, flashcardID, field, delta)
}

func (mock *flashcardStoreMock) IncrementStatCalls() []struct {
	Ctx         context.Context
	FlashcardID uuid.UUID
	Field       domain.FlashcardStatField
	Delta       int
} {
	mock.lockIncrementStat.RLock()
	calls := mock.calls.IncrementStat
	mock.lockIncrementStat.RUnlock()
	return calls
}
