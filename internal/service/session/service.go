// Package session implements the study session lifecycle: starting a session
// over a deck snapshot, recording per-card outcomes and completing it.
package session

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type deckStore interface {
	FindByIDForUser(ctx context.Context, deckID, userID uuid.UUID) (*domain.Deck, error)
	IncrementStat(ctx context.Context, deckID uuid.UUID, field domain.DeckStatField, delta int) error
	RecordSessionScore(ctx context.Context, deckID uuid.UUID, percentage int) error
}

type flashcardStore interface {
	ListByDeck(ctx context.Context, deckID uuid.UUID) ([]domain.Flashcard, error)
	IncrementStat(ctx context.Context, flashcardID uuid.UUID, field domain.FlashcardStatField, delta int) error
}

type sessionStore interface {
	Create(ctx context.Context, s *domain.StudySession) (*domain.StudySession, error)
	GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.StudySession, error)
	GetByIDForUpdate(ctx context.Context, userID, sessionID uuid.UUID) (*domain.StudySession, error)
	Save(ctx context.Context, s *domain.StudySession) error
}

type statsInvalidator interface {
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the session engine.
type Service struct {
	decks    deckStore
	cards    flashcardStore
	sessions sessionStore
	stats    statsInvalidator
	tx       txManager
	log      *slog.Logger
	clock    clock

	rngMu sync.Mutex
	rng   *rand.Rand
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces the wall clock.
func WithClock(c clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithRand replaces the random source used to shuffle random-order decks.
func WithRand(r *rand.Rand) Option {
	return func(s *Service) { s.rng = r }
}

// WithStatsInvalidator drops cached statistics when a session completes.
func WithStatsInvalidator(inv statsInvalidator) Option {
	return func(s *Service) { s.stats = inv }
}

// NewService creates a new session engine.
func NewService(
	log *slog.Logger,
	decks deckStore,
	cards flashcardStore,
	sessions sessionStore,
	tx txManager,
	opts ...Option,
) *Service {
	s := &Service{
		decks:    decks,
		cards:    cards,
		sessions: sessions,
		tx:       tx,
		log:      log.With("service", "session"),
		clock:    systemClock{},
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// shuffle applies a uniform Fisher-Yates permutation in place.
func (s *Service) shuffle(cards []domain.Flashcard) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()

	s.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
