package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// DeckOption tweaks a deck before SeedDeck inserts it.
type DeckOption func(*domain.Deck)

// WithPublic makes the seeded deck public.
func WithPublic() DeckOption {
	return func(d *domain.Deck) { d.IsPublic = true }
}

// WithRandomOrder turns on shuffled study order for the seeded deck.
func WithRandomOrder() DeckOption {
	return func(d *domain.Deck) { d.Settings.RandomOrder = true }
}

// SeedDeck inserts an empty deck owned by ownerID.
func SeedDeck(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, opts ...DeckOption) domain.Deck {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	d := domain.Deck{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      "Deck " + uniqueSuffix(),
		Category:  "General",
		Color:     "#3366ff",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&d)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO decks (id, owner_id, name, description, category, color, is_public, random_order, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`,
		d.ID, d.OwnerID, d.Name, d.Description, d.Category, d.Color, d.IsPublic, d.Settings.RandomOrder, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDeck: %v", err)
	}

	return d
}

// SeedFlashcards inserts n flashcards into the deck with strictly increasing
// created_at, and bumps the deck's total_cards accordingly.
func SeedFlashcards(t *testing.T, pool *pgxpool.Pool, deck domain.Deck, n int) []domain.Flashcard {
	t.Helper()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Microsecond)
	cards := make([]domain.Flashcard, n)
	for i := range cards {
		c := domain.Flashcard{
			ID:         uuid.New(),
			DeckID:     deck.ID,
			OwnerID:    deck.OwnerID,
			Question:   "Q" + uniqueSuffix(),
			Answer:     "A" + uniqueSuffix(),
			Difficulty: domain.DifficultyMedium,
			Tags:       []string{},
			CreatedAt:  base.Add(time.Duration(i) * time.Millisecond),
		}
		c.UpdatedAt = c.CreatedAt

		_, err := pool.Exec(ctx,
			`INSERT INTO flashcards (id, deck_id, owner_id, question, answer, difficulty, tags, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`,
			c.ID, c.DeckID, c.OwnerID, c.Question, c.Answer, string(c.Difficulty), c.Tags, c.CreatedAt,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedFlashcards insert[%d]: %v", i, err)
		}
		cards[i] = c
	}

	if _, err := pool.Exec(ctx, `UPDATE decks SET total_cards = total_cards + $2 WHERE id = $1`, deck.ID, n); err != nil {
		t.Fatalf("testhelper: SeedFlashcards total_cards: %v", err)
	}

	return cards
}

// SeedCompletedSession inserts a completed session with the given score and duration.
// percentage may be nil for a session completed without answers.
func SeedCompletedSession(t *testing.T, pool *pgxpool.Pool, userID, deckID uuid.UUID, createdAt time.Time, durationSeconds int, percentage *int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	createdAt = createdAt.UTC().Truncate(time.Microsecond)
	end := createdAt.Add(time.Duration(durationSeconds) * time.Second)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO study_sessions (id, user_id, deck_id, start_time, end_time, completed, total_duration_seconds,
		                             cards, score_percentage, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, TRUE, $6, '[]', $7, $4, $5)`,
		id, userID, deckID, createdAt, end, durationSeconds, percentage,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCompletedSession: %v", err)
	}

	return id
}
