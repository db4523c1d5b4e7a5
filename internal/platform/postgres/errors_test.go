package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefhagen/bloglist-api/internal/store"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantIs   error
		wantSame bool
	}{
		{
			name: "nil passes through",
			err:  nil,
		},
		{
			name:   "no rows becomes not found",
			err:    sql.ErrNoRows,
			wantIs: store.ErrNotFound,
		},
		{
			name:   "wrapped no rows becomes not found",
			err:    fmt.Errorf("query user: %w", sql.ErrNoRows),
			wantIs: store.ErrNotFound,
		},
		{
			name:   "unique violation becomes duplicate",
			err:    &pgconn.PgError{Code: "23505", ConstraintName: "users_username_idx"},
			wantIs: store.ErrDuplicate,
		},
		{
			name:   "foreign key violation becomes invalid entity",
			err:    &pgconn.PgError{Code: "23503"},
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:   "check violation becomes invalid entity",
			err:    &pgconn.PgError{Code: "23514", ConstraintName: "blogs_likes_check"},
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:     "unrelated errors pass through unchanged",
			err:      errors.New("connection reset"),
			wantSame: true,
		},
		{
			name:     "other pg codes pass through unchanged",
			err:      &pgconn.PgError{Code: "42P01"},
			wantSame: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mapped := MapError(tc.err)

			switch {
			case tc.err == nil:
				assert.NoError(t, mapped)
			case tc.wantSame:
				assert.Equal(t, tc.err, mapped)
			default:
				assert.ErrorIs(t, mapped, tc.wantIs)
				// The original error stays reachable for debugging.
				assert.Contains(t, mapped.Error(), tc.wantIs.Error())
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("not a pg error")))
	assert.False(t, IsUniqueViolation(nil))
}

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckRowsAffected(t *testing.T) {
	t.Run("rows affected", func(t *testing.T) {
		assert.NoError(t, CheckRowsAffected(fakeResult{rows: 1}, store.ErrBlogNotFound))
	})

	t.Run("zero rows returns the not found error", func(t *testing.T) {
		err := CheckRowsAffected(fakeResult{rows: 0}, store.ErrBlogNotFound)
		assert.ErrorIs(t, err, store.ErrBlogNotFound)
	})

	t.Run("driver error propagates", func(t *testing.T) {
		driverErr := errors.New("driver does not support RowsAffected")
		err := CheckRowsAffected(fakeResult{err: driverErr}, store.ErrBlogNotFound)
		require.Error(t, err)
		assert.ErrorIs(t, err, driverErr)
	})
}
