package domain

import (
	"time"

	"github.com/google/uuid"
)

// Flashcard is a question/answer pair belonging to one deck.
type Flashcard struct {
	ID         uuid.UUID
	DeckID     uuid.UUID
	OwnerID    uuid.UUID
	Question   string
	Answer     string
	Category   string
	Difficulty Difficulty
	Tags       []string
	Statistics FlashcardStatistics
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FlashcardStatistics holds per-card counters updated by study sessions.
type FlashcardStatistics struct {
	TotalViews       int
	CorrectAnswers   int
	IncorrectAnswers int
}
