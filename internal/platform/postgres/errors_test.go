package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meepleshelf/meeple-api/internal/store"
)

// fakeResult implements sql.Result for CheckRowsAffected tests.
type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestMapError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, MapError(nil))
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		err := MapError(sql.ErrNoRows)
		assert.True(t, errors.Is(err, store.ErrNotFound))
	})

	t.Run("foreign key violation maps to invalid entity", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "favorites_id_boardgame_fkey"}
		err := MapError(fmt.Errorf("insert: %w", pgErr))
		assert.True(t, errors.Is(err, store.ErrInvalidEntity))
	})

	t.Run("not null violation maps to invalid entity", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23502", ColumnName: "name"}
		err := MapError(pgErr)
		assert.True(t, errors.Is(err, store.ErrInvalidEntity))
	})

	t.Run("unrelated errors pass through", func(t *testing.T) {
		original := errors.New("connection refused")
		assert.Equal(t, original, MapError(original))
	})
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, IsForeignKeyViolation(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "23503"})))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsForeignKeyViolation(errors.New("not a pg error")))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
}

func TestCheckRowsAffected(t *testing.T) {
	t.Run("rows affected passes", func(t *testing.T) {
		assert.NoError(t, CheckRowsAffected(fakeResult{rows: 1}, store.ErrBoardgameNotFound))
	})

	t.Run("zero rows returns the given not-found error", func(t *testing.T) {
		err := CheckRowsAffected(fakeResult{rows: 0}, store.ErrBoardgameNotFound)
		assert.True(t, errors.Is(err, store.ErrBoardgameNotFound))
	})

	t.Run("zero rows falls back to the generic not-found", func(t *testing.T) {
		err := CheckRowsAffected(fakeResult{rows: 0}, nil)
		assert.True(t, errors.Is(err, store.ErrNotFound))
	})

	t.Run("nil result is rejected", func(t *testing.T) {
		assert.Error(t, CheckRowsAffected(nil, nil))
	})

	t.Run("rows affected failure is wrapped", func(t *testing.T) {
		err := CheckRowsAffected(fakeResult{err: errors.New("driver does not support")}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rows affected")
	})
}
