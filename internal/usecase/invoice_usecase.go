package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/goinvoice/internal/domain"
	"github.com/iho/goinvoice/internal/infrastructure/metrics"
	"github.com/iho/goinvoice/internal/layout"
	"github.com/iho/goinvoice/internal/timesheet"
)

var (
	// ErrNumberUnavailable is returned when the profile has no invoice
	// number and no number sequence is configured.
	ErrNumberUnavailable = errors.New("invoice number not set and no number sequence configured")

	// ErrRegisterDisabled is returned when no invoice register is configured.
	ErrRegisterDisabled = errors.New("invoice register is not configured")
)

// InvoiceUseCase turns timesheets into invoice documents.
type InvoiceUseCase struct {
	renderers    RendererFactory
	idGen        IDGenerator
	register     InvoiceRegister
	sequence     NumberSequence
	metrics      *metrics.Metrics
	logger       zerolog.Logger
	geometry     layout.Geometry
	numberPrefix string
	now          func() time.Time
}

// InvoiceOption configures optional collaborators of InvoiceUseCase.
type InvoiceOption func(*InvoiceUseCase)

// WithRegister records every generated invoice in r.
func WithRegister(r InvoiceRegister) InvoiceOption {
	return func(uc *InvoiceUseCase) { uc.register = r }
}

// WithNumberSequence assigns invoice numbers from s when the profile has
// none, formatted as <prefix>-<year>-<nnn>.
func WithNumberSequence(s NumberSequence, prefix string) InvoiceOption {
	return func(uc *InvoiceUseCase) {
		uc.sequence = s
		uc.numberPrefix = prefix
	}
}

// WithMetrics records generation metrics.
func WithMetrics(m *metrics.Metrics) InvoiceOption {
	return func(uc *InvoiceUseCase) { uc.metrics = m }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) InvoiceOption {
	return func(uc *InvoiceUseCase) { uc.logger = l }
}

// WithClock overrides the time source used for default invoice dates.
func WithClock(now func() time.Time) InvoiceOption {
	return func(uc *InvoiceUseCase) { uc.now = now }
}

// WithGeometry overrides the page geometry.
func WithGeometry(g layout.Geometry) InvoiceOption {
	return func(uc *InvoiceUseCase) { uc.geometry = g }
}

// NewInvoiceUseCase creates a new InvoiceUseCase.
func NewInvoiceUseCase(renderers RendererFactory, idGen IDGenerator, opts ...InvoiceOption) *InvoiceUseCase {
	uc := &InvoiceUseCase{
		renderers: renderers,
		idGen:     idGen,
		logger:    zerolog.Nop(),
		geometry:  layout.A4(),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// GenerateInvoiceInput is the input for GenerateInvoice.
type GenerateInvoiceInput struct {
	Timesheet io.Reader
	Profile   domain.Profile
}

// GenerateInvoiceOutput describes a generated invoice.
type GenerateInvoiceOutput struct {
	DocumentID string
	Invoice    *domain.Invoice
	Pages      int
	Bytes      int
}

// GenerateInvoice reads the timesheet, lays out the invoice and writes the
// finished document to w. Nothing is written to w unless every step
// succeeds.
func (uc *InvoiceUseCase) GenerateInvoice(ctx context.Context, input GenerateInvoiceInput, w io.Writer) (*GenerateInvoiceOutput, error) {
	start := uc.now()

	out, err := uc.generate(ctx, input, w)
	if err != nil {
		uc.observeError(err)
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.InvoicesGenerated.Inc()
		uc.metrics.GenerationDuration.Observe(uc.now().Sub(start).Seconds())
		uc.metrics.InvoicePages.Observe(float64(out.Pages))
		uc.metrics.InvoiceLineItems.Observe(float64(len(out.Invoice.Entries)))
		uc.metrics.BilledMinutes.Add(out.Invoice.TotalMinutes.InexactFloat64())
		uc.metrics.InvoiceAmount.Observe(out.Invoice.NetAmount.InexactFloat64())
	}

	uc.logger.Info().
		Str("document_id", out.DocumentID).
		Str("number", out.Invoice.Number).
		Int("entries", len(out.Invoice.Entries)).
		Int("pages", out.Pages).
		Str("total_minutes", out.Invoice.TotalMinutes.String()).
		Str("net_amount", out.Invoice.NetAmount.StringFixed(2)).
		Msg("invoice generated")

	return out, nil
}

func (uc *InvoiceUseCase) generate(ctx context.Context, input GenerateInvoiceInput, w io.Writer) (*GenerateInvoiceOutput, error) {
	entries, err := timesheet.Read(input.Timesheet)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, domain.ErrNoLineItems
	}

	// Reject bad durations before a number is drawn from the sequence.
	for i, e := range entries {
		if _, err := e.Minutes(); err != nil {
			return nil, fmt.Errorf("entry %d (line %d): %w", i+1, e.Line, err)
		}
	}

	profile := input.Profile
	if profile.Date == "" {
		profile.Date = domain.FormatDate(uc.now())
	}

	if err := domain.ValidateProfile(profile); err != nil {
		return nil, err
	}

	if profile.Number == "" {
		number, err := uc.nextNumber(ctx)
		if err != nil {
			return nil, err
		}
		profile.Number = number
	}

	if err := domain.ValidateInvoiceNumber(profile.Number); err != nil {
		return nil, err
	}

	inv, err := domain.NewInvoice(profile, entries)
	if err != nil {
		return nil, err
	}

	docID := uc.idGen.Generate()
	renderer := uc.renderers.NewRenderer(DocumentInfo{
		ID:      docID,
		Title:   "Rechnung " + inv.Number,
		Author:  inv.Seller.Name,
		Subject: "Rechnung an " + inv.Buyer.Name,
	})

	engine := layout.NewEngine(renderer, uc.geometry, uc.logger.With().Str("document_id", docID).Logger())

	var buf bytes.Buffer
	if err := engine.Render(inv, &buf); err != nil {
		return nil, err
	}

	if uc.register != nil {
		if err := uc.record(ctx, docID, inv, engine.Pages()); err != nil {
			return nil, err
		}
	}

	n, err := w.Write(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to write document: %w", err)
	}

	return &GenerateInvoiceOutput{
		DocumentID: docID,
		Invoice:    inv,
		Pages:      engine.Pages(),
		Bytes:      n,
	}, nil
}

func (uc *InvoiceUseCase) nextNumber(ctx context.Context) (string, error) {
	if uc.sequence == nil {
		return "", ErrNumberUnavailable
	}

	year := uc.now().Year()
	n, err := uc.sequence.Next(ctx, year)
	if err != nil {
		return "", fmt.Errorf("failed to allocate invoice number: %w", err)
	}

	return FormatInvoiceNumber(uc.numberPrefix, year, n), nil
}

func (uc *InvoiceUseCase) record(ctx context.Context, docID string, inv *domain.Invoice, pages int) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultRegisterTimeout)
	defer cancel()

	err := uc.register.Record(ctx, &domain.InvoiceRecord{
		CreatedAt:    uc.now().UTC(),
		ID:           docID,
		Number:       inv.Number,
		InvoiceDate:  inv.Date,
		ServiceDate:  inv.ServiceDate,
		BuyerName:    inv.Buyer.Name,
		EntryCount:   len(inv.Entries),
		Pages:        pages,
		TotalMinutes: inv.TotalMinutes,
		NetAmount:    inv.NetAmount,
	})

	if uc.metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		uc.metrics.RegisterWrites.WithLabelValues(status).Inc()
	}

	if err != nil {
		return fmt.Errorf("failed to record invoice %s: %w", inv.Number, err)
	}

	return nil
}

// ListInvoices returns recently generated invoices, newest first.
func (uc *InvoiceUseCase) ListInvoices(ctx context.Context, limit, offset int) ([]*domain.InvoiceRecord, error) {
	if uc.register == nil {
		return nil, ErrRegisterDisabled
	}

	limit, offset = domain.ValidatePagination(limit, offset)

	return uc.register.List(ctx, limit, offset)
}

// FormatInvoiceNumber renders a sequence number as <prefix>-<year>-<nnn>.
func FormatInvoiceNumber(prefix string, year int, n int64) string {
	if prefix == "" {
		return fmt.Sprintf("%d-%0*d", year, NumberDigits, n)
	}
	return fmt.Sprintf("%s-%d-%0*d", prefix, year, NumberDigits, n)
}

func (uc *InvoiceUseCase) observeError(err error) {
	if uc.metrics != nil {
		uc.metrics.InvoiceErrors.WithLabelValues(ErrorType(err)).Inc()
	}

	uc.logger.Error().Err(err).Str("error_type", ErrorType(err)).Msg("invoice generation failed")
}

// ErrorType classifies a generation error for metrics and logs.
func ErrorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoLineItems):
		return "no_line_items"
	case errors.Is(err, domain.ErrMalformedRecord):
		return "malformed_record"
	case errors.Is(err, domain.ErrParse):
		return "parse"
	case errors.Is(err, domain.ErrInvalidProfile):
		return "invalid_profile"
	case errors.Is(err, ErrNumberUnavailable):
		return "number_unavailable"
	case errors.Is(err, domain.ErrDuplicateInvoice):
		return "duplicate_invoice"
	default:
		return "internal"
	}
}
