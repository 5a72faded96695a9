package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetrier(maxRetries uint64) *Retrier {
	r := NewRetrier(zerolog.Nop())
	r.maxRetries = maxRetries
	r.initialInterval = 1 * time.Millisecond
	r.maxInterval = 2 * time.Millisecond
	r.maxElapsedTime = time.Second
	return r
}

func TestRetrierRetriesOnRetryableError(t *testing.T) {
	r := fastRetrier(2)

	attempts := 0
	err := r.Retry(context.Background(), "test", func() error {
		attempts++
		if attempts < 2 {
			return &pgconn.PgError{Code: pgErrDeadlock}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestRetrierGivesUpAfterMaxRetries(t *testing.T) {
	r := fastRetrier(2)

	attempts := 0
	err := r.Retry(context.Background(), "test", func() error {
		attempts++
		return &pgconn.PgError{Code: pgErrSerializationFailure}
	})

	require.Error(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetrierStopsOnPermanentError(t *testing.T) {
	r := fastRetrier(3)
	attempts := 0
	permanentErr := errors.New("permanent")

	err := r.Retry(context.Background(), "test", func() error {
		attempts++
		return permanentErr
	})

	assert.ErrorIs(t, err, permanentErr)
	assert.Equal(t, 1, attempts)
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, isRetryableError(&pgconn.PgError{Code: pgErrDeadlock}))
	assert.True(t, isRetryableError(fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgErrSerializationFailure})))
	assert.False(t, isRetryableError(&pgconn.PgError{Code: pgErrUniqueViolation}))
	assert.False(t, isRetryableError(errors.New("other")))
}

func TestRetrierStopsWhenContextCancelled(t *testing.T) {
	r := fastRetrier(5)
	ctx, cancel := context.WithCancel(context.Background())

	attempts := 0
	err := r.Retry(ctx, "test", func() error {
		attempts++
		cancel()
		return &pgconn.PgError{Code: pgErrDeadlock}
	})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: pgErrUniqueViolation}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: pgErrDeadlock}))
	assert.False(t, isUniqueViolation(nil))
}
