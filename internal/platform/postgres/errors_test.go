package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/pantrifi/pipeline/internal/store"
)

func TestMapErrorNil(t *testing.T) {
	t.Parallel()

	assert.NoError(t, mapError(nil))
}

func TestMapErrorNoRows(t *testing.T) {
	t.Parallel()

	err := mapError(fmt.Errorf("query: %w", sql.ErrNoRows))
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMapErrorConstraintViolations(t *testing.T) {
	t.Parallel()

	for _, code := range []string{uniqueViolationCode, foreignKeyViolationCode, notNullViolationCode} {
		err := mapError(&pgconn.PgError{Code: code, ConstraintName: "alerts_pkey"})
		assert.ErrorIs(t, err, store.ErrInvalidEntity, "code %s", code)
	}
}

func TestMapErrorUnknown(t *testing.T) {
	t.Parallel()

	err := mapError(errors.New("connection refused"))
	assert.ErrorIs(t, err, store.ErrQueryFailed)
	assert.NotErrorIs(t, err, store.ErrNotFound)
}
