// Package statscache caches rolled-up statistics reports in Redis,
// one key per user and time range.
package statscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
)

const (
	keyPrefix = "stats:v2"

	// generationTTL outlives any report, so an expired counter restarting at
	// zero cannot resurrect a report written under the old zero generation.
	generationTTL = 7 * 24 * time.Hour
	maxReportTTL  = 24 * time.Hour
)

// Cache is a read-through store for statistics reports.
//
// Every user has a generation counter that Invalidate bumps. Reports are
// stored under the generation observed before they were computed, so a
// report built concurrently with an invalidation lands on a key no reader
// looks at anymore and simply expires.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a cache with the given entry lifetime, capped at 24h.
func New(client *redis.Client, ttl time.Duration) *Cache {
	if ttl > maxReportTTL {
		ttl = maxReportTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func generationKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:gen", keyPrefix, userID)
}

func reportKey(userID uuid.UUID, generation int64, r domain.TimeRange) string {
	return fmt.Sprintf("%s:%s:g%d:%s", keyPrefix, userID, generation, r)
}

func (c *Cache) generation(ctx context.Context, userID uuid.UUID) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get generation: %w", err)
	}
	return gen, nil
}

// Get returns the cached report, or nil on a miss, together with the user's
// current generation. Pass the generation to Set when storing a report
// computed after this call.
func (c *Cache) Get(ctx context.Context, userID uuid.UUID, r domain.TimeRange) (*domain.StatisticsReport, int64, error) {
	gen, err := c.generation(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	data, err := c.client.Get(ctx, reportKey(userID, gen, r)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, gen, nil
	}
	if err != nil {
		return nil, gen, fmt.Errorf("redis get: %w", err)
	}

	var j reportJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, gen, fmt.Errorf("unmarshal report: %w", err)
	}

	return j.toDomain(), gen, nil
}

// Set stores the report under the given generation and its time range.
func (c *Cache) Set(ctx context.Context, userID uuid.UUID, generation int64, report *domain.StatisticsReport) error {
	data, err := json.Marshal(fromDomain(report))
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := c.client.Set(ctx, reportKey(userID, generation, report.TimeRange), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

// Invalidate retires every cached range for the user by bumping the generation.
func (c *Cache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	key := generationKey(userID)

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, generationTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis bump generation: %w", err)
	}

	return nil
}

// ---------------------------------------------------------------------------
// JSON shape
// ---------------------------------------------------------------------------

type reportJSON struct {
	TimeRange       string              `json:"time_range"`
	TotalSessions   int                 `json:"total_sessions"`
	TotalStudyTime  int                 `json:"total_study_time"`
	AverageScore    int                 `json:"average_score"`
	TotalDecks      int                 `json:"total_decks"`
	TotalFlashcards int                 `json:"total_flashcards"`
	RecentSessions  []recentSessionJSON `json:"recent_sessions"`
}

type recentSessionJSON struct {
	SessionID            uuid.UUID  `json:"session_id"`
	DeckID               uuid.UUID  `json:"deck_id"`
	DeckName             string     `json:"deck_name"`
	DeckCategory         string     `json:"deck_category"`
	StartTime            time.Time  `json:"start_time"`
	EndTime              *time.Time `json:"end_time,omitempty"`
	TotalDurationSeconds int        `json:"total_duration_seconds"`
	Correct              int        `json:"correct"`
	Incorrect            int        `json:"incorrect"`
	Percentage           *int       `json:"percentage,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

func fromDomain(r *domain.StatisticsReport) reportJSON {
	j := reportJSON{
		TimeRange:       string(r.TimeRange),
		TotalSessions:   r.TotalSessions,
		TotalStudyTime:  r.TotalStudyTime,
		AverageScore:    r.AverageScore,
		TotalDecks:      r.TotalDecks,
		TotalFlashcards: r.TotalFlashcards,
		RecentSessions:  make([]recentSessionJSON, len(r.RecentSessions)),
	}
	for i, s := range r.RecentSessions {
		j.RecentSessions[i] = recentSessionJSON{
			SessionID:            s.SessionID,
			DeckID:               s.DeckID,
			DeckName:             s.DeckName,
			DeckCategory:         s.DeckCategory,
			StartTime:            s.StartTime,
			EndTime:              s.EndTime,
			TotalDurationSeconds: s.TotalDurationSeconds,
			Correct:              s.Score.Correct,
			Incorrect:            s.Score.Incorrect,
			Percentage:           s.Score.Percentage,
			CreatedAt:            s.CreatedAt,
		}
	}
	return j
}

func (j reportJSON) toDomain() *domain.StatisticsReport {
	r := &domain.StatisticsReport{
		TimeRange:       domain.TimeRange(j.TimeRange),
		TotalSessions:   j.TotalSessions,
		TotalStudyTime:  j.TotalStudyTime,
		AverageScore:    j.AverageScore,
		TotalDecks:      j.TotalDecks,
		TotalFlashcards: j.TotalFlashcards,
		RecentSessions:  make([]domain.RecentSession, len(j.RecentSessions)),
	}
	for i, s := range j.RecentSessions {
		r.RecentSessions[i] = domain.RecentSession{
			SessionID:            s.SessionID,
			DeckID:               s.DeckID,
			DeckName:             s.DeckName,
			DeckCategory:         s.DeckCategory,
			StartTime:            s.StartTime,
			EndTime:              s.EndTime,
			TotalDurationSeconds: s.TotalDurationSeconds,
			Score: domain.Score{
				Correct:    s.Correct,
				Incorrect:  s.Incorrect,
				Percentage: s.Percentage,
			},
			CreatedAt: s.CreatedAt,
		}
	}
	return r
}
