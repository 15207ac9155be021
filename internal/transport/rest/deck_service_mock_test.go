package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
	"github.com/heartmarshall/studydeck-backend/internal/service/deck"
)

var _ deckService = &deckServiceMock{}

type deckServiceMock struct {
	CreateDeckFunc      func(ctx context.Context, input deck.CreateDeckInput) (*domain.Deck, error)
	AddFlashcardFunc    func(ctx context.Context, input deck.AddFlashcardInput) (*domain.Flashcard, error)
	RemoveFlashcardFunc func(ctx context.Context, input deck.RemoveFlashcardInput) error
	DeleteDeckFunc      func(ctx context.Context, input deck.DeleteDeckInput) error

	calls struct {
		CreateDeck []struct {
			Ctx   context.Context
			Input deck.CreateDeckInput
		}
		AddFlashcard []struct {
			Ctx   context.Context
			Input deck.AddFlashcardInput
		}
		RemoveFlashcard []struct {
			Ctx   context.Context
			Input deck.RemoveFlashcardInput
		}
		DeleteDeck []struct {
			Ctx   context.Context
			Input deck.DeleteDeckInput
		}
	}
	lockCreateDeck      sync.RWMutex
	lockAddFlashcard    sync.RWMutex
	lockRemoveFlashcard sync.RWMutex
	lockDeleteDeck      sync.RWMutex
}

func (mock *deckServiceMock) CreateDeck(ctx context.Context, input deck.CreateDeckInput) (*domain.Deck, error) {
	if mock.CreateDeckFunc == nil {
		panic("deckServiceMock.CreateDeckFunc: method is nil but deckService.CreateDeck was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input deck.CreateDeckInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateDeck.Lock()
	mock.calls.CreateDeck = append(mock.calls.CreateDeck, callInfo)
	mock.lockCreateDeck.Unlock()
	return mock.CreateDeckFunc(ctx, input)
}

func (mock *deckServiceMock) CreateDeckCalls() []struct {
	Ctx   context.Context
	Input deck.CreateDeckInput
} {
	mock.lockCreateDeck.RLock()
	calls := mock.calls.CreateDeck
	mock.lockCreateDeck.RUnlock()
	return calls
}

func (mock *deckServiceMock) AddFlashcard(ctx context.Context, input deck.AddFlashcardInput) (*domain.Flashcard, error) {
	if mock.AddFlashcardFunc == nil {
		panic("deckServiceMock.AddFlashcardFunc: method is nil but deckService.AddFlashcard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input deck.AddFlashcardInput
	}{Ctx: ctx, Input: input}
	mock.lockAddFlashcard.Lock()
	mock.calls.AddFlashcard = append(mock.calls.AddFlashcard, callInfo)
	mock.lockAddFlashcard.Unlock()
	return mock.AddFlashcardFunc(ctx, input)
}

func (mock *deckServiceMock) AddFlashcardCalls() []struct {
	Ctx   context.Context
	Input deck.AddFlashcardInput
} {
	mock.lockAddFlashcard.RLock()
	calls := mock.calls.AddFlashcard
	mock.lockAddFlashcard.RUnlock()
	return calls
}

func (mock *deckServiceMock) RemoveFlashcard(ctx context.Context, input deck.RemoveFlashcardInput) error {
	if mock.RemoveFlashcardFunc == nil {
		panic("deckServiceMock.RemoveFlashcardFunc: method is nil but deckService.RemoveFlashcard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input deck.RemoveFlashcardInput
	}{Ctx: ctx, Input: input}
	mock.lockRemoveFlashcard.Lock()
	mock.calls.RemoveFlashcard = append(mock.calls.RemoveFlashcard, callInfo)
	mock.lockRemoveFlashcard.Unlock()
	return mock.RemoveFlashcardFunc(ctx, input)
}

func (mock *deckServiceMock) RemoveFlashcardCalls() []struct {
	Ctx   context.Context
	Input deck.RemoveFlashcardInput
} {
	mock.lockRemoveFlashcard.RLock()
	calls := mock.calls.RemoveFlashcard
	mock.lockRemoveFlashcard.RUnlock()
	return calls
}

func (mock *deckServiceMock) DeleteDeck(ctx context.Context, input deck.DeleteDeckInput) error {
	if mock.DeleteDeckFunc == nil {
		panic("deckServiceMock.DeleteDeckFunc: method is nil but deckService.DeleteDeck was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input deck.DeleteDeckInput
	}{Ctx: ctx, Input: input}
	mock.lockDeleteDeck.Lock()
	mock.calls.DeleteDeck = append(mock.calls.DeleteDeck, callInfo)
	mock.lockDeleteDeck.Unlock()
	return mock.DeleteDeckFunc(ctx, input)
}

func (mock *deckServiceMock) DeleteDeckCalls() []struct {
	Ctx   context.Context
	Input deck.DeleteDeckInput
} {
	mock.lockDeleteDeck.RLock()
	calls := mock.calls.DeleteDeck
	mock.lockDeleteDeck.RUnlock()
	return calls
}
