package usecase

import (
	"context"

	"github.com/iho/goinvoice/internal/domain"
	"github.com/iho/goinvoice/internal/layout"
)

// DocumentInfo describes a document about to be rendered.
type DocumentInfo struct {
	ID      string
	Title   string
	Author  string
	Subject string
}

// RendererFactory creates a fresh renderer for each document.
type RendererFactory interface {
	NewRenderer(info DocumentInfo) layout.Renderer
}

// InvoiceRegister records generated invoices.
type InvoiceRegister interface {
	Record(ctx context.Context, record *domain.InvoiceRecord) error
	List(ctx context.Context, limit, offset int) ([]*domain.InvoiceRecord, error)
}

// NumberSequence hands out consecutive invoice numbers per year.
type NumberSequence interface {
	Next(ctx context.Context, year int) (int64, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
