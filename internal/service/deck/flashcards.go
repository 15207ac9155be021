package deck

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
	"github.com/heartmarshall/studydeck-backend/pkg/ctxutil"
)

// AddFlashcard inserts a flashcard into an owned deck and bumps its card count
// in the same transaction. The deck row stays locked until commit, so a
// concurrent DeleteDeck cannot interleave.
func (s *Service) AddFlashcard(ctx context.Context, input AddFlashcardInput) (*domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Flashcard

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.decks.GetByIDForUpdate(txCtx, input.DeckID, userID); err != nil {
			return fmt.Errorf("lock deck: %w", err)
		}

		card, err := s.cards.Create(txCtx, &domain.Flashcard{
			ID:         uuid.New(),
			DeckID:     input.DeckID,
			OwnerID:    userID,
			Question:   input.Question,
			Answer:     input.Answer,
			Category:   input.Category,
			Difficulty: input.difficulty(),
			Tags:       input.Tags,
		})
		if err != nil {
			return fmt.Errorf("create flashcard: %w", err)
		}

		if err := s.decks.IncrementStat(txCtx, input.DeckID, domain.DeckStatTotalCards, 1); err != nil {
			return fmt.Errorf("increment total cards: %w", err)
		}

		created = card
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, userID)
	return created, nil
}

// RemoveFlashcard deletes a flashcard from an owned deck and decrements its card count.
// Sessions that already snapshotted the card keep their records.
func (s *Service) RemoveFlashcard(ctx context.Context, input RemoveFlashcardInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.decks.GetByIDForUpdate(txCtx, input.DeckID, userID); err != nil {
			return fmt.Errorf("lock deck: %w", err)
		}

		if err := s.cards.Delete(txCtx, input.DeckID, input.FlashcardID); err != nil {
			return fmt.Errorf("delete flashcard: %w", err)
		}

		if err := s.decks.IncrementStat(txCtx, input.DeckID, domain.DeckStatTotalCards, -1); err != nil {
			return fmt.Errorf("decrement total cards: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateStats(ctx, userID)
	return nil
}
