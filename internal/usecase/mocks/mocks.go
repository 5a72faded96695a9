package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/iho/goinvoice/internal/domain"
)

// MemoryRegister is an in-memory InvoiceRegister.
type MemoryRegister struct {
	mu      sync.RWMutex
	records []*domain.InvoiceRecord

	RecordFunc func(ctx context.Context, record *domain.InvoiceRecord) error
}

func NewMemoryRegister() *MemoryRegister {
	return &MemoryRegister{}
}

func (m *MemoryRegister) Record(ctx context.Context, record *domain.InvoiceRecord) error {
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.Number == record.Number {
			return fmt.Errorf("invoice number %s already recorded", record.Number)
		}
	}
	m.records = append(m.records, record)
	return nil
}

func (m *MemoryRegister) List(ctx context.Context, limit, offset int) ([]*domain.InvoiceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sorted := make([]*domain.InvoiceRecord, len(m.records))
	copy(sorted, m.records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if offset >= len(sorted) {
		return []*domain.InvoiceRecord{}, nil
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end], nil
}

// MemorySequence is an in-memory NumberSequence.
type MemorySequence struct {
	mu       sync.Mutex
	counters map[int]int64
}

func NewMemorySequence() *MemorySequence {
	return &MemorySequence{counters: make(map[int]int64)}
}

func (s *MemorySequence) Next(ctx context.Context, year int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[year]++
	return s.counters[year], nil
}

// SequentialIDGenerator returns doc-1, doc-2, ...
type SequentialIDGenerator struct {
	mu sync.Mutex
	n  int
}

func (g *SequentialIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("doc-%d", g.n)
}
