package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
)

// MaxTimeSpentSeconds caps the time a single answer may report.
const MaxTimeSpentSeconds = 3600

// StartSessionInput holds the parameters for starting a session.
type StartSessionInput struct {
	DeckID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *StartSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RecordOutcomeInput holds one answer submitted during a session.
type RecordOutcomeInput struct {
	SessionID        uuid.UUID
	FlashcardID      uuid.UUID
	IsCorrect        bool
	TimeSpentSeconds int
}

// Validate checks all fields and collects all errors.
func (i *RecordOutcomeInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if i.FlashcardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "flashcard_id", Message: "required"})
	}
	if i.TimeSpentSeconds < 0 {
		errs = append(errs, domain.FieldError{Field: "time_spent_seconds", Message: "must be non-negative"})
	}
	if i.TimeSpentSeconds > MaxTimeSpentSeconds {
		errs = append(errs, domain.FieldError{
			Field:   "time_spent_seconds",
			Message: fmt.Sprintf("max %d seconds", MaxTimeSpentSeconds),
		})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CompleteSessionInput identifies the session to finalize.
type CompleteSessionInput struct {
	SessionID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *CompleteSessionInput) Validate() error {
	if i.SessionID == uuid.Nil {
		return domain.NewValidationError("session_id", "required")
	}
	return nil
}

// GetSessionInput identifies the session to read.
type GetSessionInput struct {
	SessionID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *GetSessionInput) Validate() error {
	if i.SessionID == uuid.Nil {
		return domain.NewValidationError("session_id", "required")
	}
	return nil
}
