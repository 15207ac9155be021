package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
	"github.com/heartmarshall/studydeck-backend/pkg/ctxutil"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError is one violated input constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorMapping struct {
	target error
	status int
	code   string
}

// Order matters: the first match wins.
var errorMappings = []errorMapping{
	{domain.ErrValidation, http.StatusBadRequest, "INVALID_ARGUMENT"},
	{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{domain.ErrInvalidReference, http.StatusUnprocessableEntity, "INVALID_REFERENCE"},
	{domain.ErrEmptyDeck, http.StatusUnprocessableEntity, "EMPTY_DECK"},
	{domain.ErrAlreadyCompleted, http.StatusConflict, "ALREADY_COMPLETED"},
	{domain.ErrAlreadyExists, http.StatusConflict, "ALREADY_EXISTS"},
	{domain.ErrConflict, http.StatusConflict, "CONFLICT"},
	{domain.ErrUnavailable, http.StatusServiceUnavailable, "UNAVAILABLE"},
	{context.DeadlineExceeded, http.StatusServiceUnavailable, "UNAVAILABLE"},
}

// writeError maps a service error to its status and JSON body.
// Unmapped errors are logged and hidden behind a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}

		resp := ErrorResponse{Error: m.code, Message: publicMessage(m.target, err)}

		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			resp.Fields = make([]FieldError, len(ve.Errors))
			for i, fe := range ve.Errors {
				resp.Fields[i] = FieldError{Field: fe.Field, Message: fe.Message}
			}
		}

		if m.status == http.StatusServiceUnavailable {
			attrs := append([]slog.Attr{slog.String("error", err.Error())}, ctxutil.LogAttrs(r.Context())...)
			log.LogAttrs(r.Context(), slog.LevelWarn, "request failed: store unavailable", attrs...)
		}

		writeJSON(w, m.status, resp)
		return
	}

	if errors.Is(err, context.Canceled) {
		// Client went away; nobody reads the response.
		return
	}

	attrs := []slog.Attr{
		slog.String("error", err.Error()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	}
	log.LogAttrs(r.Context(), slog.LevelError, "unexpected error", append(attrs, ctxutil.LogAttrs(r.Context())...)...)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "INTERNAL",
		Message: "internal error",
	})
}

// publicMessage keeps store details out of responses.
func publicMessage(target, err error) string {
	switch target {
	case domain.ErrUnavailable, context.DeadlineExceeded:
		return "service temporarily unavailable"
	case domain.ErrValidation:
		return "invalid request"
	default:
		return target.Error()
	}
}
