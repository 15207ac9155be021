package deck

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
	"github.com/heartmarshall/studydeck-backend/pkg/ctxutil"
)

// CreateDeck creates an empty deck owned by the caller.
func (s *Service) CreateDeck(ctx context.Context, input CreateDeckInput) (*domain.Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.decks.Create(ctx, &domain.Deck{
		ID:          uuid.New(),
		OwnerID:     userID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Category:    input.Category,
		Color:       input.Color,
		IsPublic:    input.IsPublic,
		Settings:    domain.DeckSettings{RandomOrder: input.RandomOrder},
	})
	if err != nil {
		return nil, fmt.Errorf("create deck: %w", err)
	}

	s.log.InfoContext(ctx, "deck created",
		slog.String("user_id", userID.String()),
		slog.String("deck_id", created.ID.String()),
	)

	s.invalidateStats(ctx, userID)
	return created, nil
}
