package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
)

// MapError converts pgx/pgconn errors into domain errors, prefixed with the
// entity and key they concern. Context errors are left unmapped.
// Connection-level failures become domain.ErrUnavailable.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	prefix := entity
	if s := fmt.Sprint(key); s != "" {
		prefix = entity + " " + s
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", prefix, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", prefix, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s: %w", prefix, domain.ErrValidation)
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return fmt.Errorf("%s: %w: %w", prefix, domain.ErrConflict, err)
		}
		return fmt.Errorf("%s: %w", prefix, err)
	}

	var connErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connErr) || errors.As(err, &netErr) || pgconn.SafeToRetry(err) {
		return domain.Unavailable(prefix, err)
	}

	return fmt.Errorf("%s: %w", prefix, err)
}
