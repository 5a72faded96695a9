package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/goinvoice/internal/domain"
	"github.com/iho/goinvoice/internal/infrastructure/postgres/generated"
)

// InvoiceRepository implements usecase.InvoiceRegister.
type InvoiceRepository struct {
	queries *generated.Queries
	retrier *Retrier
}

// NewInvoiceRepository creates a new InvoiceRepository.
func NewInvoiceRepository(pool *pgxpool.Pool, retrier *Retrier) *InvoiceRepository {
	return newInvoiceRepository(pool, retrier)
}

func newInvoiceRepository(db generated.DBTX, retrier *Retrier) *InvoiceRepository {
	return &InvoiceRepository{
		queries: generated.New(db),
		retrier: retrier,
	}
}

// Record inserts a generated invoice.
func (r *InvoiceRepository) Record(ctx context.Context, record *domain.InvoiceRecord) error {
	params := generated.CreateInvoiceParams{
		ID:           record.ID,
		Number:       record.Number,
		InvoiceDate:  record.InvoiceDate,
		ServiceDate:  record.ServiceDate,
		BuyerName:    record.BuyerName,
		EntryCount:   int32(record.EntryCount),
		Pages:        int32(record.Pages),
		TotalMinutes: decimalToNumeric(record.TotalMinutes),
		NetAmount:    decimalToNumeric(record.NetAmount),
		CreatedAt:    timeToPgTimestamptz(record.CreatedAt),
	}

	err := r.retrier.Retry(ctx, "create_invoice", func() error {
		return r.queries.CreateInvoice(ctx, params)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateInvoice, record.Number)
		}

		return err
	}

	return nil
}

// List lists invoices with pagination, newest first.
func (r *InvoiceRepository) List(ctx context.Context, limit, offset int) ([]*domain.InvoiceRecord, error) {
	rows, err := r.queries.ListInvoices(ctx, generated.ListInvoicesParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	records := make([]*domain.InvoiceRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, rowToInvoiceRecord(row))
	}

	return records, nil
}

func rowToInvoiceRecord(row generated.Invoice) *domain.InvoiceRecord {
	return &domain.InvoiceRecord{
		CreatedAt:    row.CreatedAt.Time,
		ID:           row.ID,
		Number:       row.Number,
		InvoiceDate:  row.InvoiceDate,
		ServiceDate:  row.ServiceDate,
		BuyerName:    row.BuyerName,
		EntryCount:   int(row.EntryCount),
		Pages:        int(row.Pages),
		TotalMinutes: numericToDecimal(row.TotalMinutes),
		NetAmount:    numericToDecimal(row.NetAmount),
	}
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
