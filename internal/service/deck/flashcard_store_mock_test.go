package deck

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
)

var _ flashcardStore = &flashcardStoreMock{}

type flashcardStoreMock struct {
	CreateFunc       func(ctx context.Context, c *domain.Flashcard) (*domain.Flashcard, error)
	DeleteFunc       func(ctx context.Context, deckID uuid.UUID, flashcardID uuid.UUID) error
	DeleteByDeckFunc func(ctx context.Context, deckID uuid.UUID) (int64, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Flashcard
		}
		Delete []struct {
			Ctx         context.Context
			DeckID      uuid.UUID
			FlashcardID uuid.UUID
		}
		DeleteByDeck []struct {
			Ctx    context.Context
			DeckID uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockDeleteByDeck sync.RWMutex
}

func (mock *flashcardStoreMock) Create(ctx context.Context, c *domain.Flashcard) (*domain.Flashcard, error) {
	if mock.CreateFunc == nil {
		panic("flashcardStoreMock.CreateFunc: method is nil but flashcardStore.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Flashcard
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *flashcardStoreMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Flashcard
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *flashcardStoreMock) Delete(ctx context.Context, deckID uuid.UUID, flashcardID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("flashcardStoreMock.DeleteFunc: method is nil but flashcardStore.Delete was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		DeckID      uuid.UUID
		FlashcardID uuid.UUID
	}{Ctx: ctx, DeckID: deckID, FlashcardID: flashcardID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, deckID, flashcardID)
}

func (mock *flashcardStoreMock) DeleteCalls() []struct {
	Ctx         context.Context
	DeckID      uuid.UUID
	FlashcardID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *flashcardStoreMock) DeleteByDeck(ctx context.Context, deckID uuid.UUID) (int64, error) {
	if mock.DeleteByDeckFunc == nil {
		panic("flashcardStoreMock.DeleteByDeckFunc: method is nil but flashcardStore.DeleteByDeck was just called")
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

func (mock *flashcardStoreMock) DeleteByDeckCalls() []struct {
	Ctx    context.Context
	DeckID uuid.UUID
} {
	mock.lockDeleteByDeck.RLock()
	calls := mock.calls.DeleteByDeck
	mock.lockDeleteByDeck.RUnlock()
	return calls
}
