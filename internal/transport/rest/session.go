package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
	"github.com/heartmarshall/studydeck-backend/internal/service/session"
)

type sessionService interface {
	StartSession(ctx context.Context, input session.StartSessionInput) (*domain.StudySession, error)
	GetSession(ctx context.Context, input session.GetSessionInput) (*domain.StudySession, error)
	RecordOutcome(ctx context.Context, input session.RecordOutcomeInput) (*session.OutcomeResult, error)
	CompleteSession(ctx context.Context, input session.CompleteSessionInput) (*session.CompleteResult, error)
}

// SessionHandler serves the study session endpoints.
type SessionHandler struct {
	svc sessionService
	log *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc sessionService, log *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: log.With("handler", "session")}
}

// StartSession handles POST /api/v1/decks/{deckID}/sessions.
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	deckID, err := uuidParam(r, "deckID", "deck_id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	s, err := h.svc.StartSession(r.Context(), session.StartSessionInput{DeckID: deckID})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(s, nil))
}

// GetSession handles GET /api/v1/sessions/{sessionID}.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuidParam(r, "sessionID", "session_id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	s, err := h.svc.GetSession(r.Context(), session.GetSessionInput{SessionID: sessionID})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(s, nil))
}

// RecordOutcome handles POST /api/v1/sessions/{sessionID}/outcomes.
func (h *SessionHandler) RecordOutcome(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuidParam(r, "sessionID", "session_id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var req recordOutcomeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if req.IsCorrect == nil {
		writeError(w, r, h.log, domain.NewValidationError("is_correct", "required"))
		return
	}

	res, err := h.svc.RecordOutcome(r.Context(), session.RecordOutcomeInput{
		SessionID:        sessionID,
		FlashcardID:      req.FlashcardID,
		IsCorrect:        *req.IsCorrect,
		TimeSpentSeconds: req.TimeSpentSeconds,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(res.Session, res.Warnings))
}

// CompleteSession handles POST /api/v1/sessions/{sessionID}/complete.
func (h *SessionHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuidParam(r, "sessionID", "session_id")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res, err := h.svc.CompleteSession(r.Context(), session.CompleteSessionInput{SessionID: sessionID})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(res.Session, res.Warnings))
}
