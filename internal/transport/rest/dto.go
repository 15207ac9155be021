package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type createDeckRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Color       string `json:"color"`
	IsPublic    bool   `json:"is_public"`
	RandomOrder bool   `json:"random_order"`
}

type addFlashcardRequest struct {
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Category   string   `json:"category"`
	Difficulty string   `json:"difficulty"`
	Tags       []string `json:"tags"`
}

type recordOutcomeRequest struct {
	FlashcardID      uuid.UUID `json:"flashcard_id"`
	IsCorrect        *bool     `json:"is_correct"`
	TimeSpentSeconds int       `json:"time_spent_seconds"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type deckResponse struct {
	ID          uuid.UUID          `json:"id"`
	OwnerID     uuid.UUID          `json:"owner_id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Color       string             `json:"color"`
	IsPublic    bool               `json:"is_public"`
	Settings    deckSettingsJSON   `json:"settings"`
	Statistics  deckStatisticsJSON `json:"statistics"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type deckSettingsJSON struct {
	RandomOrder bool `json:"random_order"`
}

type deckStatisticsJSON struct {
	TotalCards     int     `json:"total_cards"`
	TotalStudyTime int     `json:"total_study_time"`
	AverageScore   float64 `json:"average_score"`
}

func toDeckResponse(d *domain.Deck) deckResponse {
	return deckResponse{
		ID:          d.ID,
		OwnerID:     d.OwnerID,
		Name:        d.Name,
		Description: d.Description,
		Category:    d.Category,
		Color:       d.Color,
		IsPublic:    d.IsPublic,
		Settings:    deckSettingsJSON{RandomOrder: d.Settings.RandomOrder},
		Statistics: deckStatisticsJSON{
			TotalCards:     d.Statistics.TotalCards,
			TotalStudyTime: d.Statistics.TotalStudyTime,
			AverageScore:   d.Statistics.AverageScore,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type flashcardResponse struct {
	ID         uuid.UUID               `json:"id"`
	DeckID     uuid.UUID               `json:"deck_id"`
	Question   string                  `json:"question"`
	Answer     string                  `json:"answer"`
	Category   string                  `json:"category"`
	Difficulty string                  `json:"difficulty"`
	Tags       []string                `json:"tags"`
	Statistics flashcardStatisticsJSON `json:"statistics"`
	CreatedAt  time.Time               `json:"created_at"`
}

type flashcardStatisticsJSON struct {
	TotalViews       int `json:"total_views"`
	CorrectAnswers   int `json:"correct_answers"`
	IncorrectAnswers int `json:"incorrect_answers"`
}

func toFlashcardResponse(c *domain.Flashcard) flashcardResponse {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return flashcardResponse{
		ID:         c.ID,
		DeckID:     c.DeckID,
		Question:   c.Question,
		Answer:     c.Answer,
		Category:   c.Category,
		Difficulty: c.Difficulty.String(),
		Tags:       tags,
		Statistics: flashcardStatisticsJSON{
			TotalViews:       c.Statistics.TotalViews,
			CorrectAnswers:   c.Statistics.CorrectAnswers,
			IncorrectAnswers: c.Statistics.IncorrectAnswers,
		},
		CreatedAt: c.CreatedAt,
	}
}

type sessionResponse struct {
	ID                   uuid.UUID         `json:"id"`
	DeckID               uuid.UUID         `json:"deck_id"`
	StartTime            time.Time         `json:"start_time"`
	EndTime              *time.Time        `json:"end_time"`
	Completed            bool              `json:"completed"`
	TotalDurationSeconds *int              `json:"total_duration_seconds"`
	Cards                []sessionCardJSON `json:"cards"`
	Score                scoreJSON         `json:"score"`
	Warnings             []string          `json:"warnings,omitempty"`
}

type sessionCardJSON struct {
	FlashcardID      uuid.UUID `json:"flashcard_id"`
	Outcome          string    `json:"outcome"`
	TimeSpentSeconds int       `json:"time_spent_seconds"`
	Attempts         int       `json:"attempts"`
}

type scoreJSON struct {
	Correct    int  `json:"correct"`
	Incorrect  int  `json:"incorrect"`
	Percentage *int `json:"percentage"`
}

func toSessionResponse(s *domain.StudySession, warnings []string) sessionResponse {
	cards := make([]sessionCardJSON, len(s.Cards))
	for i, c := range s.Cards {
		cards[i] = sessionCardJSON{
			FlashcardID:      c.FlashcardID,
			Outcome:          c.Outcome.String(),
			TimeSpentSeconds: c.TimeSpentSeconds,
			Attempts:         c.Attempts,
		}
	}
	return sessionResponse{
		ID:                   s.ID,
		DeckID:               s.DeckID,
		StartTime:            s.StartTime,
		EndTime:              s.EndTime,
		Completed:            s.Completed,
		TotalDurationSeconds: s.TotalDurationSeconds,
		Cards:                cards,
		Score: scoreJSON{
			Correct:    s.Score.Correct,
			Incorrect:  s.Score.Incorrect,
			Percentage: s.Score.Percentage,
		},
		Warnings: warnings,
	}
}

type statisticsResponse struct {
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
	EndTime              *time.Time `json:"end_time"`
	TotalDurationSeconds int        `json:"total_duration_seconds"`
	Score                scoreJSON  `json:"score"`
}

func toStatisticsResponse(r *domain.StatisticsReport) statisticsResponse {
	recent := make([]recentSessionJSON, len(r.RecentSessions))
	for i, s := range r.RecentSessions {
		recent[i] = recentSessionJSON{
			SessionID:            s.SessionID,
			DeckID:               s.DeckID,
			DeckName:             s.DeckName,
			DeckCategory:         s.DeckCategory,
			StartTime:            s.StartTime,
			EndTime:              s.EndTime,
			TotalDurationSeconds: s.TotalDurationSeconds,
			Score: scoreJSON{
				Correct:    s.Score.Correct,
				Incorrect:  s.Score.Incorrect,
				Percentage: s.Score.Percentage,
			},
		}
	}
	return statisticsResponse{
		TimeRange:       r.TimeRange.String(),
		TotalSessions:   r.TotalSessions,
		TotalStudyTime:  r.TotalStudyTime,
		AverageScore:    r.AverageScore,
		TotalDecks:      r.TotalDecks,
		TotalFlashcards: r.TotalFlashcards,
		RecentSessions:  recent,
	}
}
