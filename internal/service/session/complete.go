package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
	"github.com/heartmarshall/studydeck-backend/pkg/ctxutil"
)

// CompleteSession closes the session, fixes its duration and folds the result
// into the deck's aggregates. Completing twice fails with ErrAlreadyCompleted
// and leaves the recorded duration untouched.
func (s *Service) CompleteSession(ctx context.Context, input CompleteSessionInput) (*CompleteResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var completed *domain.StudySession

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		session, err := s.sessions.GetByIDForUpdate(txCtx, userID, input.SessionID)
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}

		if err := session.Complete(s.clock.Now()); err != nil {
			return err
		}

		if err := s.sessions.Save(txCtx, session); err != nil {
			return fmt.Errorf("save session: %w", err)
		}

		completed = session
		return nil
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{
		slog.String("user_id", userID.String()),
		slog.String("session_id", completed.ID.String()),
		slog.Int("duration_seconds", *completed.TotalDurationSeconds),
		slog.Int("correct", completed.Score.Correct),
		slog.Int("incorrect", completed.Score.Incorrect),
	}
	if completed.Score.Percentage != nil {
		attrs = append(attrs, slog.Int("percentage", *completed.Score.Percentage))
	}
	s.log.InfoContext(ctx, "session completed", attrs...)

	warnings := s.forwardDeckStats(ctx, completed)
	s.invalidateStats(ctx, userID)

	return &CompleteResult{Session: completed, Warnings: warnings}, nil
}

func (s *Service) forwardDeckStats(ctx context.Context, session *domain.StudySession) []string {
	fwdCtx := context.WithoutCancel(ctx)

	var warnings []string

	if err := s.decks.IncrementStat(fwdCtx, session.DeckID, domain.DeckStatTotalStudyTime, session.StudyMinutes()); err != nil {
		s.log.WarnContext(ctx, "deck study time not updated",
			slog.String("deck_id", session.DeckID.String()),
			slog.String("error", err.Error()),
		)
		warnings = append(warnings, "deck study time not updated")
	}

	if session.Score.Percentage != nil {
		if err := s.decks.RecordSessionScore(fwdCtx, session.DeckID, *session.Score.Percentage); err != nil {
			s.log.WarnContext(ctx, "deck average score not updated",
				slog.String("deck_id", session.DeckID.String()),
				slog.String("error", err.Error()),
			)
			warnings = append(warnings, "deck average score not updated")
		}
	}

	return warnings
}

func (s *Service) invalidateStats(ctx context.Context, userID uuid.UUID) {
	if s.stats == nil {
		return
	}
	if err := s.stats.Invalidate(context.WithoutCancel(ctx), userID); err != nil {
		s.log.WarnContext(ctx, "statistics cache not invalidated",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}
}
