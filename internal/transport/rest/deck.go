package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
	"github.com/heartmarshall/studydeck-backend/internal/service/deck"
)

type deckService interface {
	CreateDeck(ctx context.Context, input deck.CreateDeckInput) (*domain.Deck, error)
	AddFlashcard(ctx context.Context, input deck.AddFlashcardInput) (*domain.Flashcard, error)
	RemoveFlashcard(ctx context.Context, input deck.RemoveFlashcardInput) error
	DeleteDeck(ctx context.Context, input deck.DeleteDeckInput) error
}

// DeckHandler serves deck and flashcard management endpoints.
type DeckHandler struct {
	svc deckService
	log *slog.Logger
}

// NewDeckHandler creates a DeckHandler.
func NewDeckHandler(svc deckService, log *slog.Logger) *DeckHandler {
	return &DeckHandler{svc: svc, log: log.With("handler", "deck")}
}

// CreateDeck handles POST /api/v1/decks.
func (h *DeckHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	var req createDeckRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	created, err := h.svc.CreateDeck(r.Context(), deck.CreateDeckInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Color:       req.Color,
		IsPublic:    req.IsPublic,
		RandomOrder: req.RandomOrder,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDeckResponse(created))
}

// DeleteDeck handles DELETE /api/v1/decks/{deckID}.
func (h *DeckHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	deckID, err := uuidParam(r, "deckID", "deck_id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteDeck(r.Context(), deck.DeleteDeckInput{DeckID: deckID}); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddFlashcard handles POST /api/v1/decks/{deckID}/flashcards.
func (h *DeckHandler) AddFlashcard(w http.ResponseWriter, r *http.Request) {
	deckID, err := uuidParam(r, "deckID", "deck_id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req addFlashcardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	card, err := h.svc.AddFlashcard(r.Context(), deck.AddFlashcardInput{
		DeckID:     deckID,
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: domain.Difficulty(req.Difficulty),
		Tags:       req.Tags,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFlashcardResponse(card))
}

// RemoveFlashcard handles DELETE /api/v1/decks/{deckID}/flashcards/{flashcardID}.
func (h *DeckHandler) RemoveFlashcard(w http.ResponseWriter, r *http.Request) {
	deckID, err := uuidParam(r, "deckID", "deck_id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	flashcardID, err := uuidParam(r, "flashcardID", "flashcard_id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	err = h.svc.RemoveFlashcard(r.Context(), deck.RemoveFlashcardInput{
		DeckID:      deckID,
		FlashcardID: flashcardID,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
