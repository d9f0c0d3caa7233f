package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pantrifi/pipeline/internal/store"
)

// PostgreSQL error codes this package distinguishes.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	notNullViolationCode    = "23502"
)

// mapError translates a database error into the store error taxonomy,
// wrapping the original for context.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode, foreignKeyViolationCode, notNullViolationCode:
			return fmt.Errorf("%w: %s (%s): %v",
				store.ErrInvalidEntity, pgErr.Code, pgErr.ConstraintName, err)
		}
	}

	return fmt.Errorf("%w: %v", store.ErrQueryFailed, err)
}
