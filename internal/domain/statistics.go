package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// SessionSummary is the slice of a completed session the aggregator needs.
type SessionSummary struct {
	ID                   uuid.UUID
	TotalDurationSeconds int
	Percentage           *int
}

// RecentSession is a completed session with its deck's display fields attached.
type RecentSession struct {
	SessionID            uuid.UUID
	DeckID               uuid.UUID
	DeckName             string
	DeckCategory         string
	StartTime            time.Time
	EndTime              *time.Time
	TotalDurationSeconds int
	Score                Score
	CreatedAt            time.Time
}

// StatisticsReport is the rolled-up view of a user's study history.
// TotalStudyTime is in minutes.
type StatisticsReport struct {
	TimeRange       TimeRange
	TotalSessions   int
	TotalStudyTime  int
	AverageScore    int
	TotalDecks      int
	TotalFlashcards int
	RecentSessions  []RecentSession
}

// SummarizeSessions computes session count, study minutes and the rounded
// mean percentage. Sessions without a percentage do not contribute to the mean.
func SummarizeSessions(sessions []SessionSummary) (count, studyMinutes, averageScore int) {
	totalSeconds := 0
	scored := 0
	sum := 0

	for _, s := range sessions {
		totalSeconds += s.TotalDurationSeconds
		if s.Percentage != nil {
			sum += *s.Percentage
			scored++
		}
	}

	if scored > 0 {
		averageScore = int(math.Round(float64(sum) / float64(scored)))
	}

	return len(sessions), totalSeconds / 60, averageScore
}
