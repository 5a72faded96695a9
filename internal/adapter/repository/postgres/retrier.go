package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// PostgreSQL error codes.
const (
	pgErrDeadlock             = "40P01"
	pgErrSerializationFailure = "40001"
	pgErrUniqueViolation      = "23505"
)

// Retrier retries register writes with exponential backoff.
type Retrier struct {
	maxRetries      uint64
	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsedTime  time.Duration
	logger          zerolog.Logger
}

// NewRetrier creates a Retrier allowing three retries within ten seconds.
func NewRetrier(logger zerolog.Logger) *Retrier {
	return &Retrier{
		maxRetries:      3,
		initialInterval: 50 * time.Millisecond,
		maxInterval:     time.Second,
		maxElapsedTime:  10 * time.Second,
		logger:          logger,
	}
}

// Retry runs fn until it succeeds, fails permanently or the retry budget is
// spent. op names the statement in log lines.
func (r *Retrier) Retry(ctx context.Context, op string, fn func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.MaxInterval = r.maxInterval
	b.MaxElapsedTime = r.maxElapsedTime

	policy := backoff.WithContext(backoff.WithMaxRetries(b, r.maxRetries), ctx)

	attempt := 0
	return backoff.RetryNotify(func() error {
		attempt++
		err := fn()
		if err == nil || isRetryableError(err) {
			return err
		}
		return backoff.Permanent(err)
	}, policy, func(err error, wait time.Duration) {
		r.logger.Warn().
			Err(err).
			Str("op", op).
			Int("attempt", attempt).
			Dur("wait", wait).
			Msg("retrying register write")
	})
}

// isRetryableError reports whether err is a transaction conflict or a
// connection failure that happened before the statement reached the server.
func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrDeadlock || pgErr.Code == pgErrSerializationFailure
	}
	return pgconn.SafeToRetry(err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation
}
