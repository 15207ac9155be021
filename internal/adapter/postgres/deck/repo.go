// Package deck implements the Deck Store on PostgreSQL.
// Aggregate counters are updated with single-statement increments so
// concurrent sessions never lose an update.
package deck

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

// Repo provides deck persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new deck repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const deckColumns = `id, owner_id, name, description, category, color, is_public, random_order,
	total_cards, total_study_time, average_score, completed_sessions, deletion_pending,
	created_at, updated_at`

const createSQL = `
INSERT INTO decks (id, owner_id, name, description, category, color, is_public, random_order, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
RETURNING ` + deckColumns

const findForUserSQL = `
SELECT ` + deckColumns + `
FROM decks
WHERE id = $1 AND NOT deletion_pending AND (owner_id = $2 OR is_public)`

const lockOwnedSQL = `
SELECT ` + deckColumns + `
FROM decks
WHERE id = $1 AND owner_id = $2 AND NOT deletion_pending
FOR UPDATE`

const recordScoreSQL = `
UPDATE decks
SET average_score      = average_score + ($2 - average_score) / (completed_sessions + 1),
    completed_sessions = completed_sessions + 1,
    updated_at         = now()
WHERE id = $1`

const markDeletionPendingSQL = `
UPDATE decks
SET deletion_pending = TRUE, updated_at = now()
WHERE id = $1 AND owner_id = $2`

const listDeletionPendingSQL = `
SELECT ` + deckColumns + `
FROM decks
WHERE deletion_pending
ORDER BY updated_at
LIMIT $1`

const deleteSQL = `DELETE FROM decks WHERE id = $1`

const countByOwnerSQL = `
SELECT count(*) FROM decks WHERE owner_id = $1 AND NOT deletion_pending`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// FindByIDForUser returns a deck the user owns or that is public.
// Missing, private-to-someone-else and pending-deletion decks all yield domain.ErrNotFound.
func (r *Repo) FindByIDForUser(ctx context.Context, deckID, userID uuid.UUID) (*domain.Deck, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDeck(querier.QueryRow(ctx, findForUserSQL, deckID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "deck", deckID)
	}

	return d, nil
}

// GetByIDForUpdate locks an owned, live deck row for the rest of the transaction.
// Must be called inside TxManager.RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, deckID, ownerID uuid.UUID) (*domain.Deck, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDeck(querier.QueryRow(ctx, lockOwnedSQL, deckID, ownerID))
	if err != nil {
		return nil, postgres.MapError(err, "deck", deckID)
	}

	return d, nil
}

// ListDeletionPending returns up to limit decks whose cascade delete has not finished.
func (r *Repo) ListDeletionPending(ctx context.Context, limit int) ([]domain.Deck, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listDeletionPendingSQL, limit)
	if err != nil {
		return nil, postgres.MapError(err, "decks", "deletion pending")
	}
	defer rows.Close()

	decks := []domain.Deck{}
	for rows.Next() {
		d, err := scanDeck(rows)
		if err != nil {
			return nil, fmt.Errorf("scan deck: %w", err)
		}
		decks = append(decks, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "decks", "deletion pending")
	}

	return decks, nil
}

// CountByOwner returns the number of live decks owned by ownerID.
func (r *Repo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := querier.QueryRow(ctx, countByOwnerSQL, ownerID).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "decks of owner", ownerID)
	}

	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a deck with zeroed statistics and returns the stored row.
func (r *Repo) Create(ctx context.Context, d *domain.Deck) (*domain.Deck, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	created, err := scanDeck(querier.QueryRow(ctx, createSQL,
		d.ID, d.OwnerID, d.Name, d.Description, d.Category, d.Color,
		d.IsPublic, d.Settings.RandomOrder, now,
	))
	if err != nil {
		return nil, postgres.MapError(err, "deck", d.ID)
	}

	return created, nil
}

// IncrementStat adds delta to one of the whitelisted counters.
func (r *Repo) IncrementStat(ctx context.Context, deckID uuid.UUID, field domain.DeckStatField, delta int) error {
	if !field.IsValid() {
		return domain.NewValidationError("field", fmt.Sprintf("unknown deck statistic %q", field))
	}

	query, args, err := postgres.Builder().
		Update("decks").
		Set(string(field), sq.Expr(string(field)+" + ?", delta)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": deckID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build increment query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "deck", deckID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("deck %s: %w", deckID, domain.ErrNotFound)
	}

	return nil
}

// RecordSessionScore folds a completed session's percentage into the deck's running mean.
func (r *Repo) RecordSessionScore(ctx context.Context, deckID uuid.UUID, percentage int) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, recordScoreSQL, deckID, float64(percentage))
	if err != nil {
		return postgres.MapError(err, "deck", deckID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("deck %s: %w", deckID, domain.ErrNotFound)
	}

	return nil
}

// MarkDeletionPending hides an owned deck from every lookup ahead of its cascade delete.
// Marking an already pending deck is a no-op success so a failed delete can be retried.
func (r *Repo) MarkDeletionPending(ctx context.Context, deckID, ownerID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, markDeletionPendingSQL, deckID, ownerID)
	if err != nil {
		return postgres.MapError(err, "deck", deckID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("deck %s: %w", deckID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes the deck row. Flashcards and sessions must already be gone.
func (r *Repo) Delete(ctx context.Context, deckID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteSQL, deckID)
	if err != nil {
		return postgres.MapError(err, "deck", deckID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("deck %s: %w", deckID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanDeck(row pgx.Row) (*domain.Deck, error) {
	var d domain.Deck

	err := row.Scan(
		&d.ID, &d.OwnerID, &d.Name, &d.Description, &d.Category, &d.Color,
		&d.IsPublic, &d.Settings.RandomOrder,
		&d.Statistics.TotalCards, &d.Statistics.TotalStudyTime,
		&d.Statistics.AverageScore, &d.Statistics.CompletedSessions,
		&d.DeletionPending, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &d, nil
}
