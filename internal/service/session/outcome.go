package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
	"github.com/heartmarshall/studydeck-backend/pkg/ctxutil"
)

// RecordOutcome applies one answer to a session under a row lock.
// Per-card statistics are forwarded after commit; their failures are reported
// as warnings and never undo the session update.
func (s *Service) RecordOutcome(ctx context.Context, input RecordOutcomeInput) (*OutcomeResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		updated      *domain.StudySession
		firstAttempt bool
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		session, err := s.sessions.GetByIDForUpdate(txCtx, userID, input.SessionID)
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}

		firstAttempt, err = session.ApplyOutcome(input.FlashcardID, input.IsCorrect, input.TimeSpentSeconds)
		if err != nil {
			return err
		}

		if err := s.sessions.Save(txCtx, session); err != nil {
			return fmt.Errorf("save session: %w", err)
		}

		updated = session
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "outcome recorded",
		slog.String("user_id", userID.String()),
		slog.String("session_id", updated.ID.String()),
		slog.String("flashcard_id", input.FlashcardID.String()),
		slog.Bool("correct", input.IsCorrect),
		slog.Int("time_spent_seconds", input.TimeSpentSeconds),
	)

	warnings := s.forwardFlashcardStats(ctx, input.FlashcardID, input.IsCorrect, firstAttempt)

	return &OutcomeResult{Session: updated, Warnings: warnings}, nil
}

// forwardFlashcardStats pushes the answer into the card's lifetime counters.
// It runs on a context detached from the request so a client disconnect
// after commit does not drop the increments.
func (s *Service) forwardFlashcardStats(ctx context.Context, flashcardID uuid.UUID, isCorrect, firstAttempt bool) []string {
	fwdCtx := context.WithoutCancel(ctx)

	fields := []domain.FlashcardStatField{domain.AnswerStatField(isCorrect)}
	if firstAttempt {
		fields = append(fields, domain.FlashcardStatTotalViews)
	}

	var warnings []string
	for _, field := range fields {
		if err := s.cards.IncrementStat(fwdCtx, flashcardID, field, 1); err != nil {
			s.log.WarnContext(ctx, "flashcard statistic not updated",
				slog.String("flashcard_id", flashcardID.String()),
				slog.String("field", string(field)),
				slog.String("error", err.Error()),
			)
			warnings = append(warnings, fmt.Sprintf("flashcard statistic %s not updated", field))
		}
	}

	return warnings
}
