package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// InvoiceSequence implements usecase.NumberSequence with one INCR counter
// per calendar year.
type InvoiceSequence struct {
	client *redis.Client
	prefix string
}

// NewInvoiceSequence creates a new InvoiceSequence.
func NewInvoiceSequence(client *redis.Client) *InvoiceSequence {
	return &InvoiceSequence{
		client: client,
		prefix: "invoice:seq:",
	}
}

// Next returns the next invoice number for year, starting at 1.
func (s *InvoiceSequence) Next(ctx context.Context, year int) (int64, error) {
	n, err := s.client.Incr(ctx, s.key(year)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment invoice sequence %d: %w", year, err)
	}

	return n, nil
}

func (s *InvoiceSequence) key(year int) string {
	return fmt.Sprintf("%s%d", s.prefix, year)
}
