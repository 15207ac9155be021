package deck

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
)

var _ deckStore = &deckStoreMock{}

type deckStoreMock struct {
	CreateFunc              func(ctx context.Context, d *domain.Deck) (*domain.Deck, error)
	GetByIDForUpdateFunc    func(ctx context.Context, deckID uuid.UUID, ownerID uuid.UUID) (*domain.Deck, error)
	IncrementStatFunc       func(ctx context.Context, deckID uuid.UUID, field domain.DeckStatField, delta int) error
	MarkDeletionPendingFunc func(ctx context.Context, deckID uuid.UUID, ownerID uuid.UUID) error
	ListDeletionPendingFunc func(ctx context.Context, limit int) ([]domain.Deck, error)
	DeleteFunc              func(ctx context.Context, deckID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			D   *domain.Deck
		}
		GetByIDForUpdate []struct {
			Ctx     context.Context
			DeckID  uuid.UUID
			OwnerID uuid.UUID
		}
		IncrementStat []struct {
			Ctx    context.Context
			DeckID uuid.UUID
			Field  domain.DeckStatField
			Delta  int
		}
		MarkDeletionPending []struct {
			Ctx     context.Context
			DeckID  uuid.UUID
			OwnerID uuid.UUID
		}
		ListDeletionPending []struct {
			Ctx   context.Context
			Limit int
		}
		Delete []struct {
			Ctx    context.Context
			DeckID uuid.UUID
		}
	}
	lockCreate              sync.RWMutex
	lockGetByIDForUpdate    sync.RWMutex
	lockIncrementStat       sync.RWMutex
	lockMarkDeletionPending sync.RWMutex
	lockListDeletionPending sync.RWMutex
	lockDelete              sync.RWMutex
}

func (mock *deckStoreMock) Create(ctx context.Context, d *domain.Deck) (*domain.Deck, error) {
	if mock.CreateFunc == nil {
		panic("deckStoreMock.CreateFunc: method is nil but deckStore.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   *domain.Deck
	}{Ctx: ctx, D: d}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *deckStoreMock) CreateCalls() []struct {
	Ctx context.Context
	D   *domain.Deck
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *deckStoreMock) GetByIDForUpdate(ctx context.Context, deckID uuid.UUID, ownerID uuid.UUID) (*domain.Deck, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("deckStoreMock.GetByIDForUpdateFunc: method is nil but deckStore.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		DeckID  uuid.UUID
		OwnerID uuid.UUID
	}{Ctx: ctx, DeckID: deckID, OwnerID: ownerID}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, deckID, ownerID)
}

func (mock *deckStoreMock) GetByIDForUpdateCalls() []struct {
	Ctx     context.Context
	DeckID  uuid.UUID
	OwnerID uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *deckStoreMock) IncrementStat(ctx context.Context, deckID uuid.UUID, field domain.DeckStatField, delta int) error {
	if mock.IncrementStatFunc == nil {
		panic("deckStoreMock.IncrementStatFunc: method is nil but deckStore.IncrementStat was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DeckID uuid.UUID
		Field  domain.DeckStatField
		Delta  int
	}{Ctx: ctx, DeckID: deckID, Field: field, Delta: delta}
	mock.lockIncrementStat.Lock()
	mock.calls.IncrementStat = append(mock.calls.IncrementStat, callInfo)
	mock.lockIncrementStat.Unlock()
	return mock.IncrementStatFunc(ctx, deckID, field, delta)
}

func (mock *deckStoreMock) IncrementStatCalls() []struct {
	Ctx    context.Context
	DeckID uuid.UUID
	Field  domain.DeckStatField
	Delta  int
} {
	mock.lockIncrementStat.RLock()
	calls := mock.calls.IncrementStat
	mock.lockIncrementStat.RUnlock()
	return calls
}

func (mock *deckStoreMock) MarkDeletionPending(ctx context.Context, deckID uuid.UUID, ownerID uuid.UUID) error {
	if mock.MarkDeletionPendingFunc == nil {
		panic("deckStoreMock.MarkDeletionPendingFunc: method is nil but deckStore.MarkDeletionPending was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		DeckID  uuid.UUID
		OwnerID uuid.UUID
	}{Ctx: ctx, DeckID: deckID, OwnerID: ownerID}
	mock.lockMarkDeletionPending.Lock()
	mock.calls.MarkDeletionPending = append(mock.calls.MarkDeletionPending, callInfo)
	mock.lockMarkDeletionPending.Unlock()
	return mock.MarkDeletionPendingFunc(ctx, deckID, ownerID)
}

func (mock *deckStoreMock) MarkDeletionPendingCalls() []struct {
	Ctx     context.Context
	DeckID  uuid.UUID
	OwnerID uuid.UUID
} {
	mock.lockMarkDeletionPending.RLock()
	calls := mock.calls.MarkDeletionPending
	mock.lockMarkDeletionPending.RUnlock()
	return calls
}

func (mock *deckStoreMock) ListDeletionPending(ctx context.Context, limit int) ([]domain.Deck, error) {
	if mock.ListDeletionPendingFunc == nil {
		panic("deckStoreMock.ListDeletionPendingFunc: method is nil but deckStore.ListDeletionPending was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListDeletionPending.Lock()
	mock.calls.ListDeletionPending = append(mock.calls.ListDeletionPending, callInfo)
	mock.lockListDeletionPending.Unlock()
	return mock.ListDeletionPendingFunc(ctx, limit)
}

func (mock *deckStoreMock) ListDeletionPendingCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListDeletionPending.RLock()
	calls := mock.calls.ListDeletionPending
	mock.lockListDeletionPending.RUnlock()
	return calls
}

func (mock *deckStoreMock) Delete(ctx context.Context, deckID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("deckStoreMock.DeleteFunc: method is nil but deckStore.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DeckID uuid.UUID
	}{Ctx: ctx, DeckID: deckID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, deckID)
}

func (mock *deckStoreMock) DeleteCalls() []struct {
	Ctx    context.Context
	DeckID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
