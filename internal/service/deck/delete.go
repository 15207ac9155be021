package deck

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
	"github.com/heartmarshall/studydeck-backend/pkg/ctxutil"
)

// DefaultResumeBatch bounds how many pending decks one ResumePendingDeletions call handles.
const DefaultResumeBatch = 100

// ResumeResult reports a ResumePendingDeletions run.
type ResumeResult struct {
	Deleted int
	Failed  int
}

// DeleteDeck removes an owned deck together with its flashcards and sessions.
//
// The deck is first marked pending, which hides it from every lookup. The
// cascade then runs in one transaction. If the cascade fails the deck stays
// pending and ResumePendingDeletions finishes it later.
func (s *Service) DeleteDeck(ctx context.Context, input DeleteDeckInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.decks.MarkDeletionPending(ctx, input.DeckID, userID); err != nil {
		return fmt.Errorf("mark deck pending: %w", err)
	}

	users, err := s.cascade(ctx, input.DeckID)
	if err != nil {
		s.log.ErrorContext(ctx, "deck left pending deletion",
			slog.String("deck_id", input.DeckID.String()),
			slog.String("error", err.Error()),
		)
		return err
	}

	s.invalidateUsers(ctx, userID, users)
	return nil
}

// ResumePendingDeletions retries the cascade for up to limit decks left
// pending by an earlier failed DeleteDeck. A failing deck does not stop the run.
func (s *Service) ResumePendingDeletions(ctx context.Context, limit int) (*ResumeResult, error) {
	if limit <= 0 {
		limit = DefaultResumeBatch
	}

	pending, err := s.decks.ListDeletionPending(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending decks: %w", err)
	}

	result := &ResumeResult{}

	for _, d := range pending {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		users, err := s.cascade(ctx, d.ID)
		if err != nil {
			result.Failed++
			s.log.WarnContext(ctx, "pending deck deletion failed",
				slog.String("deck_id", d.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}

		result.Deleted++
		s.invalidateUsers(ctx, d.OwnerID, users)
	}

	if len(pending) > 0 {
		s.log.InfoContext(ctx, "pending deck deletions resumed",
			slog.Int("deleted", result.Deleted),
			slog.Int("failed", result.Failed),
		)
	}

	return result, nil
}

// cascade removes flashcards, then sessions, then the deck row, atomically.
// It returns the users whose sessions were removed.
func (s *Service) cascade(ctx context.Context, deckID uuid.UUID) ([]uuid.UUID, error) {
	var users []uuid.UUID

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cards, err := s.cards.DeleteByDeck(txCtx, deckID)
		if err != nil {
			return fmt.Errorf("delete flashcards: %w", err)
		}

		users, err = s.sessions.DeleteByDeck(txCtx, deckID)
		if err != nil {
			return fmt.Errorf("delete sessions: %w", err)
		}

		if err := s.decks.Delete(txCtx, deckID); err != nil {
			return fmt.Errorf("delete deck: %w", err)
		}

		s.log.InfoContext(ctx, "deck deleted",
			slog.String("deck_id", deckID.String()),
			slog.Int64("flashcards", cards),
			slog.Int("session_users", len(users)),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}
