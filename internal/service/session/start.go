package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
	"github.com/heartmarshall/studydeck-backend/pkg/ctxutil"
)

// StartSession snapshots the deck's flashcards into a new session.
// Decks the caller can neither own nor see publicly are reported as not found.
func (s *Service) StartSession(ctx context.Context, input StartSessionInput) (*domain.StudySession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	deck, err := s.decks.FindByIDForUser(ctx, input.DeckID, userID)
	if err != nil {
		return nil, fmt.Errorf("find deck: %w", err)
	}

	cards, err := s.cards.ListByDeck(ctx, deck.ID)
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}
	if len(cards) == 0 {
		return nil, domain.ErrEmptyDeck
	}

	if deck.Settings.RandomOrder {
		s.shuffle(cards)
	}

	created, err := s.sessions.Create(ctx, domain.NewStudySession(uuid.New(), userID, deck.ID, cards, s.clock.Now()))
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.InfoContext(ctx, "session started",
		slog.String("user_id", userID.String()),
		slog.String("session_id", created.ID.String()),
		slog.String("deck_id", deck.ID.String()),
		slog.Int("cards", len(created.Cards)),
		slog.Bool("random_order", deck.Settings.RandomOrder),
	)

	return created, nil
}

// GetSession returns one of the caller's sessions.
func (s *Service) GetSession(ctx context.Context, input GetSessionInput) (*domain.StudySession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetByID(ctx, userID, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	return session, nil
}
