// Package session implements the Session Store on PostgreSQL.
// The card snapshot is stored as JSONB; score and duration live in plain
// columns so the statistics queries can aggregate without decoding JSON.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/studydeck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studydeck-backend/internal/domain"
)

// Repo provides study session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, user_id, deck_id, start_time, end_time, completed, total_duration_seconds,
	cards, score_correct, score_incorrect, score_percentage, created_at, updated_at`

const createSQL = `
INSERT INTO study_sessions (id, user_id, deck_id, start_time, cards, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING ` + sessionColumns

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM study_sessions
WHERE id = $1 AND user_id = $2`

const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const saveSQL = `
UPDATE study_sessions
SET end_time               = $3,
    completed              = $4,
    total_duration_seconds = $5,
    cards                  = $6,
    score_correct          = $7,
    score_incorrect        = $8,
    score_percentage       = $9,
    updated_at             = now()
WHERE id = $1 AND user_id = $2
RETURNING updated_at`

const deleteByDeckSQL = `
WITH removed AS (
    DELETE FROM study_sessions WHERE deck_id = $1 RETURNING user_id
)
SELECT DISTINCT user_id FROM removed`

// recentLimit bounds RecentCompleted when callers pass a non-positive limit.
const recentLimit = 5

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a session owned by userID.
// Sessions of other users are reported as domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.StudySession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSession(querier.QueryRow(ctx, getByIDSQL, sessionID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "session", sessionID)
	}

	return s, nil
}

// GetByIDForUpdate is GetByID with a row lock held until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, userID, sessionID uuid.UUID) (*domain.StudySession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSession(querier.QueryRow(ctx, getByIDForUpdateSQL, sessionID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "session", sessionID)
	}

	return s, nil
}

// ListCompletedSummaries returns duration and percentage of the user's completed
// sessions created at or after since. A nil since means no lower bound.
func (r *Repo) ListCompletedSummaries(ctx context.Context, userID uuid.UUID, since *time.Time) ([]domain.SessionSummary, error) {
	q := postgres.Builder().
		Select("id", "total_duration_seconds", "score_percentage").
		From("study_sessions").
		Where(sq.Eq{"user_id": userID, "completed": true})
	if since != nil {
		q = q.Where(sq.GtOrEq{"created_at": *since})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build summaries query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "sessions of user", userID)
	}
	defer rows.Close()

	summaries := []domain.SessionSummary{}
	for rows.Next() {
		var (
			s        domain.SessionSummary
			duration *int
		)
		if err := rows.Scan(&s.ID, &duration, &s.Percentage); err != nil {
			return nil, fmt.Errorf("scan session summary: %w", err)
		}
		if duration != nil {
			s.TotalDurationSeconds = *duration
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "sessions of user", userID)
	}

	return summaries, nil
}

// RecentCompleted returns the user's most recently created completed sessions,
// newest first, with the deck's name and category attached.
func (r *Repo) RecentCompleted(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RecentSession, error) {
	if limit <= 0 {
		limit = recentLimit
	}

	query, args, err := postgres.Builder().
		Select(
			"s.id", "s.deck_id", "d.name", "d.category",
			"s.start_time", "s.end_time", "s.total_duration_seconds",
			"s.score_correct", "s.score_incorrect", "s.score_percentage", "s.created_at",
		).
		From("study_sessions s").
		Join("decks d ON d.id = s.deck_id").
		Where(sq.Eq{"s.user_id": userID, "s.completed": true}).
		OrderBy("s.created_at DESC", "s.id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build recent sessions query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "recent sessions of user", userID)
	}
	defer rows.Close()

	recent := []domain.RecentSession{}
	for rows.Next() {
		var (
			rs       domain.RecentSession
			duration *int
		)
		err := rows.Scan(
			&rs.SessionID, &rs.DeckID, &rs.DeckName, &rs.DeckCategory,
			&rs.StartTime, &rs.EndTime, &duration,
			&rs.Score.Correct, &rs.Score.Incorrect, &rs.Score.Percentage, &rs.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan recent session: %w", err)
		}
		if duration != nil {
			rs.TotalDurationSeconds = *duration
		}
		recent = append(recent, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "recent sessions of user", userID)
	}

	return recent, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new session with its card snapshot.
func (r *Repo) Create(ctx context.Context, s *domain.StudySession) (*domain.StudySession, error) {
	cards, err := marshalCards(s.Cards)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", s.ID, err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	start := s.StartTime.UTC().Truncate(time.Microsecond)

	created, err := scanSession(querier.QueryRow(ctx, createSQL, s.ID, s.UserID, s.DeckID, start, cards, now))
	if err != nil {
		return nil, postgres.MapError(err, "session", s.ID)
	}

	return created, nil
}

// Save writes the mutable state of a session: card records, score and completion.
func (r *Repo) Save(ctx context.Context, s *domain.StudySession) error {
	cards, err := marshalCards(s.Cards)
	if err != nil {
		return fmt.Errorf("session %s: %w", s.ID, err)
	}

	var end *time.Time
	if s.EndTime != nil {
		t := s.EndTime.UTC().Truncate(time.Microsecond)
		end = &t
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	err = querier.QueryRow(ctx, saveSQL,
		s.ID, s.UserID, end, s.Completed, s.TotalDurationSeconds, cards,
		s.Score.Correct, s.Score.Incorrect, s.Score.Percentage,
	).Scan(&s.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "session", s.ID)
	}

	return nil
}

// DeleteByDeck removes every session that references the deck and returns
// the distinct users those sessions belonged to.
func (r *Repo) DeleteByDeck(ctx context.Context, deckID uuid.UUID) ([]uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, deleteByDeckSQL, deckID)
	if err != nil {
		return nil, postgres.MapError(err, "sessions of deck", deckID)
	}
	defer rows.Close()

	users := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan session user: %w", err)
		}
		users = append(users, id)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "sessions of deck", deckID)
	}

	return users, nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanSession(row pgx.Row) (*domain.StudySession, error) {
	var (
		s         domain.StudySession
		cardsJSON []byte
	)

	err := row.Scan(
		&s.ID, &s.UserID, &s.DeckID, &s.StartTime, &s.EndTime, &s.Completed, &s.TotalDurationSeconds,
		&cardsJSON, &s.Score.Correct, &s.Score.Incorrect, &s.Score.Percentage,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	cards, err := unmarshalCards(cardsJSON)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", s.ID, err)
	}
	s.Cards = cards

	return &s, nil
}

// ---------------------------------------------------------------------------
// JSONB serialization of the card snapshot
// ---------------------------------------------------------------------------

// cardRecordJSON is the stored shape of a domain.SessionCardRecord.
type cardRecordJSON struct {
	FlashcardID      uuid.UUID `json:"flashcard_id"`
	Outcome          string    `json:"outcome"`
	TimeSpentSeconds int       `json:"time_spent_seconds"`
	Attempts         int       `json:"attempts"`
}

func marshalCards(records []domain.SessionCardRecord) ([]byte, error) {
	out := make([]cardRecordJSON, len(records))
	for i, rec := range records {
		out[i] = cardRecordJSON{
			FlashcardID:      rec.FlashcardID,
			Outcome:          string(rec.Outcome),
			TimeSpentSeconds: rec.TimeSpentSeconds,
			Attempts:         rec.Attempts,
		}
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal cards: %w", err)
	}
	return data, nil
}

func unmarshalCards(data []byte) ([]domain.SessionCardRecord, error) {
	if len(data) == 0 {
		return []domain.SessionCardRecord{}, nil
	}

	var in []cardRecordJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("unmarshal cards: %w", err)
	}

	records := make([]domain.SessionCardRecord, len(in))
	for i, j := range in {
		records[i] = domain.SessionCardRecord{
			FlashcardID:      j.FlashcardID,
			Outcome:          domain.Outcome(j.Outcome),
			TimeSpentSeconds: j.TimeSpentSeconds,
			Attempts:         j.Attempts,
		}
	}
	return records, nil
}
