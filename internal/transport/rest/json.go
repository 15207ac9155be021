package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// decodeJSON reads a single JSON object into dst, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return domain.NewValidationError("body", "required")
		case errors.As(err, &maxErr):
			return domain.NewValidationError("body", "too large")
		default:
			return domain.NewValidationError("body", "invalid JSON: "+err.Error())
		}
	}
	if dec.More() {
		return domain.NewValidationError("body", "must contain a single JSON object")
	}
	return nil
}

// uuidParam parses a chi URL parameter. field names the parameter in errors.
func uuidParam(r *http.Request, name, field string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(field, "invalid UUID")
	}
	return id, nil
}
