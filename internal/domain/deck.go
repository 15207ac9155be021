package domain

import (
	"time"

	"github.com/google/uuid"
)

// Deck is a named, owned collection of flashcards.
type Deck struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	Description     string
	Category        string
	Color           string
	IsPublic        bool
	Settings        DeckSettings
	Statistics      DeckStatistics
	DeletionPending bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DeckSettings holds per-deck study preferences.
type DeckSettings struct {
	RandomOrder bool
}

// DeckStatistics is the denormalized aggregate block of a deck.
// TotalStudyTime is in minutes. AverageScore is the running mean of completed
// session percentages; CompletedSessions is its sample count.
type DeckStatistics struct {
	TotalCards        int
	TotalStudyTime    int
	AverageScore      float64
	CompletedSessions int
}
