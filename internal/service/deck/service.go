// Package deck owns the deck lifecycle: creation, flashcard membership with its
// total_cards counter, and the cascading delete of a deck with its sessions.
package deck

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type deckStore interface {
	Create(ctx context.Context, d *domain.Deck) (*domain.Deck, error)
	GetByIDForUpdate(ctx context.Context, deckID, ownerID uuid.UUID) (*domain.Deck, error)
	IncrementStat(ctx context.Context, deckID uuid.UUID, field domain.DeckStatField, delta int) error
	MarkDeletionPending(ctx context.Context, deckID, ownerID uuid.UUID) error
	ListDeletionPending(ctx context.Context, limit int) ([]domain.Deck, error)
	Delete(ctx context.Context, deckID uuid.UUID) error
}

type flashcardStore interface {
	Create(ctx context.Context, c *domain.Flashcard) (*domain.Flashcard, error)
	Delete(ctx context.Context, deckID, flashcardID uuid.UUID) error
	DeleteByDeck(ctx context.Context, deckID uuid.UUID) (int64, error)
}

type sessionStore interface {
	DeleteByDeck(ctx context.Context, deckID uuid.UUID) ([]uuid.UUID, error)
}

type statsInvalidator interface {
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements deck lifecycle operations.
type Service struct {
	decks    deckStore
	cards    flashcardStore
	sessions sessionStore
	stats    statsInvalidator
	tx       txManager
	log      *slog.Logger
}

// NewService creates a deck service. stats may be nil when no cache is configured.
func NewService(
	log *slog.Logger,
	decks deckStore,
	cards flashcardStore,
	sessions sessionStore,
	tx txManager,
	stats statsInvalidator,
) *Service {
	return &Service{
		decks:    decks,
		cards:    cards,
		sessions: sessions,
		stats:    stats,
		tx:       tx,
		log:      log.With("service", "deck"),
	}
}

func (s *Service) invalidateStats(ctx context.Context, userID uuid.UUID) {
	if s.stats == nil {
		return
	}
	if err := s.stats.Invalidate(context.WithoutCancel(ctx), userID); err != nil {
		s.log.WarnContext(ctx, "statistics cache not invalidated",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// invalidateUsers clears the statistics of the owner and of every user whose
// sessions a cascade removed, once per user.
func (s *Service) invalidateUsers(ctx context.Context, ownerID uuid.UUID, users []uuid.UUID) {
	s.invalidateStats(ctx, ownerID)
	for _, u := range users {
		if u != ownerID {
			s.invalidateStats(ctx, u)
		}
	}
}
