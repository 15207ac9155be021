package session

import "github.com/heartmarshall/studydeck-backend/internal/domain"

// OutcomeResult is the session after an answer was applied.
// Warnings lists forwarded statistic updates that did not go through.
type OutcomeResult struct {
	Session  *domain.StudySession
	Warnings []string
}

// CompleteResult is the finalized session.
// Warnings lists deck aggregate updates that did not go through.
type CompleteResult struct {
	Session  *domain.StudySession
	Warnings []string
}
