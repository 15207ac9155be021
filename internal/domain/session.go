package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// StudySession is a single timed study attempt over a snapshot of a deck's cards.
type StudySession struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	DeckID               uuid.UUID
	StartTime            time.Time
	EndTime              *time.Time
	Completed            bool
	TotalDurationSeconds *int
	Cards                []SessionCardRecord
	Score                Score
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// SessionCardRecord is the per-card outcome state within a session.
type SessionCardRecord struct {
	FlashcardID      uuid.UUID
	Outcome          Outcome
	TimeSpentSeconds int
	Attempts         int
}

// Score is the running correct/incorrect tally of a session.
// Percentage is nil until at least one answer has been recorded.
type Score struct {
	Correct    int
	Incorrect  int
	Percentage *int
}

// ScorePercentage returns round(100*correct/(correct+incorrect)),
// or nil when nothing has been answered.
func ScorePercentage(correct, incorrect int) *int {
	total := correct + incorrect
	if total <= 0 {
		return nil
	}
	p := int(math.Round(100 * float64(correct) / float64(total)))
	return &p
}

// NewStudySession builds an unstarted-answers session over cards in the given order.
func NewStudySession(id, userID, deckID uuid.UUID, cards []Flashcard, startTime time.Time) *StudySession {
	records := make([]SessionCardRecord, len(cards))
	for i, c := range cards {
		records[i] = SessionCardRecord{
			FlashcardID: c.ID,
			Outcome:     OutcomeUnanswered,
		}
	}

	return &StudySession{
		ID:        id,
		UserID:    userID,
		DeckID:    deckID,
		StartTime: startTime,
		Cards:     records,
	}
}

// CardIndex returns the position of flashcardID in the snapshot, or -1.
func (s *StudySession) CardIndex(flashcardID uuid.UUID) int {
	for i := range s.Cards {
		if s.Cards[i].FlashcardID == flashcardID {
			return i
		}
	}
	return -1
}

// ApplyOutcome records one answer for a card of the snapshot.
// It returns true when this was the card's first attempt in the session.
// On error the session is left untouched.
func (s *StudySession) ApplyOutcome(flashcardID uuid.UUID, isCorrect bool, timeSpentSeconds int) (bool, error) {
	if s.Completed {
		return false, ErrAlreadyCompleted
	}

	idx := s.CardIndex(flashcardID)
	if idx < 0 {
		return false, ErrInvalidReference
	}

	rec := &s.Cards[idx]
	first := rec.Attempts == 0

	rec.Outcome = OutcomeFromAnswer(isCorrect)
	rec.TimeSpentSeconds += timeSpentSeconds
	rec.Attempts++

	if isCorrect {
		s.Score.Correct++
	} else {
		s.Score.Incorrect++
	}
	s.Score.Percentage = ScorePercentage(s.Score.Correct, s.Score.Incorrect)

	return first, nil
}

// Complete closes the session at now and fixes its duration in whole seconds.
func (s *StudySession) Complete(now time.Time) error {
	if s.Completed {
		return ErrAlreadyCompleted
	}

	elapsed := now.Sub(s.StartTime)
	if elapsed < 0 {
		elapsed = 0
	}
	seconds := int(elapsed / time.Second)

	end := now
	s.EndTime = &end
	s.TotalDurationSeconds = &seconds
	s.Completed = true

	return nil
}

// StudyMinutes is the whole-minute share of the session duration credited to its deck.
func (s *StudySession) StudyMinutes() int {
	if s.TotalDurationSeconds == nil {
		return 0
	}
	return *s.TotalDurationSeconds / 60
}
