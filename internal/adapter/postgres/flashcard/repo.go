// Package flashcard implements the Flashcard Store on PostgreSQL.
package flashcard

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/studydeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studydeck-backend/internal/domain"
)

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new flashcard repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const flashcardColumns = `id, deck_id, owner_id, question, answer, category, difficulty, tags,
	total_views, correct_answers, incorrect_answers, created_at, updated_at`

const createSQL = `
INSERT INTO flashcards (id, deck_id, owner_id, question, answer, category, difficulty, tags, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
RETURNING ` + flashcardColumns

const listByDeckSQL = `
SELECT ` + flashcardColumns + `
FROM flashcards
WHERE deck_id = $1
ORDER BY created_at, id`

const deleteSQL = `
DELETE FROM flashcards WHERE id = $1 AND deck_id = $2`

const deleteByDeckSQL = `
DELETE FROM flashcards WHERE deck_id = $1`

const countByOwnerSQL = `
SELECT count(*)
FROM flashcards f
JOIN decks d ON d.id = f.deck_id
WHERE f.owner_id = $1 AND NOT d.deletion_pending`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByDeck returns every flashcard of the deck in creation order.
func (r *Repo) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]domain.Flashcard, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByDeckSQL, deckID)
	if err != nil {
		return nil, postgres.MapError(err, "flashcards of deck", deckID)
	}
	defer rows.Close()

	cards := []domain.Flashcard{}
	for rows.Next() {
		c, err := scanFlashcard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan flashcard: %w", err)
		}
		cards = append(cards, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "flashcards of deck", deckID)
	}

	return cards, nil
}

// CountByOwner returns the number of flashcards the user owns in live decks.
func (r *Repo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := querier.QueryRow(ctx, countByOwnerSQL, ownerID).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "flashcards of owner", ownerID)
	}

	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a flashcard. The caller keeps decks.total_cards in step
// within the same transaction.
func (r *Repo) Create(ctx context.Context, c *domain.Flashcard) (*domain.Flashcard, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}

	created, err := scanFlashcard(querier.QueryRow(ctx, createSQL,
		c.ID, c.DeckID, c.OwnerID, c.Question, c.Answer, c.Category,
		string(c.Difficulty), tags, now,
	))
	if err != nil {
		return nil, postgres.MapError(err, "flashcard", c.ID)
	}

	return created, nil
}

// IncrementStat adds delta to one of the whitelisted per-card counters.
func (r *Repo) IncrementStat(ctx context.Context, flashcardID uuid.UUID, field domain.FlashcardStatField, delta int) error {
	if !field.IsValid() {
		return domain.NewValidationError("field", fmt.Sprintf("unknown flashcard statistic %q", field))
	}

	query, args, err := postgres.Builder().
		Update("flashcards").
		Set(string(field), sq.Expr(string(field)+" + ?", delta)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": flashcardID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build increment query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "flashcard", flashcardID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("flashcard %s: %w", flashcardID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes one flashcard of the given deck.
func (r *Repo) Delete(ctx context.Context, deckID, flashcardID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteSQL, flashcardID, deckID)
	if err != nil {
		return postgres.MapError(err, "flashcard", flashcardID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("flashcard %s: %w", flashcardID, domain.ErrNotFound)
	}

	return nil
}

// DeleteByDeck removes all flashcards of a deck and returns how many were deleted.
func (r *Repo) DeleteByDeck(ctx context.Context, deckID uuid.UUID) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteByDeckSQL, deckID)
	if err != nil {
		return 0, postgres.MapError(err, "flashcards of deck", deckID)
	}

	return ct.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanFlashcard(row pgx.Row) (*domain.Flashcard, error) {
	var (
		c          domain.Flashcard
		difficulty string
	)

	err := row.Scan(
		&c.ID, &c.DeckID, &c.OwnerID, &c.Question, &c.Answer, &c.Category,
		&difficulty, &c.Tags,
		&c.Statistics.TotalViews, &c.Statistics.CorrectAnswers, &c.Statistics.IncorrectAnswers,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Difficulty = domain.Difficulty(difficulty)

	return &c, nil
}
