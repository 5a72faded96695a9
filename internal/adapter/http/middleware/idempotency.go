package middleware

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	// IdempotencyKeyHeader is the header name for idempotency keys.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayHeader marks a response served from the store.
	IdempotencyReplayHeader = "X-Idempotency-Replay"
)

// IdempotencyStore remembers finished documents by idempotency key.
type IdempotencyStore interface {
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, []byte, error)
	Complete(ctx context.Context, key string, document []byte, ttl time.Duration) error
	Release(ctx context.Context, key string) error
}

// IdempotencyMiddleware replays the generated invoice for a repeated
// Idempotency-Key instead of drawing a new invoice number.
type IdempotencyMiddleware struct {
	store  IdempotencyStore
	ttl    time.Duration
	logger zerolog.Logger
}

// NewIdempotencyMiddleware creates a new IdempotencyMiddleware.
func NewIdempotencyMiddleware(store IdempotencyStore, ttl time.Duration, logger zerolog.Logger) *IdempotencyMiddleware {
	return &IdempotencyMiddleware{store: store, ttl: ttl, logger: logger}
}

// Wrap wraps an http.Handler with idempotency checking.
func (m *IdempotencyMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Only apply to mutating requests
		if r.Method != http.MethodPost {
			next.ServeHTTP(w, r)
			return
		}

		key := r.Header.Get(IdempotencyKeyHeader)
		if key == "" {
			next.ServeHTTP(w, r)
			return
		}

		reserved, document, err := m.store.Reserve(r.Context(), key, m.ttl)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, "idempotency check failed")
			return
		}

		if !reserved {
			if document == nil {
				writeJSONError(w, http.StatusConflict, "request with this idempotency key is in progress")
				return
			}

			w.Header().Set("Content-Type", "application/pdf")
			w.Header().Set(IdempotencyReplayHeader, "true")
			w.WriteHeader(http.StatusOK)
			w.Write(document)
			return
		}

		// Capture response
		recorder := &responseRecorder{
			ResponseWriter: w,
			body:           &bytes.Buffer{},
			statusCode:     http.StatusOK,
		}
		next.ServeHTTP(recorder, r)

		// The request context may already be cancelled.
		ctx := context.WithoutCancel(r.Context())

		if recorder.statusCode >= 200 && recorder.statusCode < 300 {
			if err := m.store.Complete(ctx, key, recorder.body.Bytes(), m.ttl); err != nil {
				m.logger.Warn().Err(err).Str("idempotency_key", key).Msg("failed to store idempotent response")
			}
			return
		}

		if err := m.store.Release(ctx, key); err != nil {
			m.logger.Warn().Err(err).Str("idempotency_key", key).Msg("failed to release idempotency key")
		}
	})
}

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
