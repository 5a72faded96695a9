package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/iho/goinvoice/internal/adapter/http/dto"
	"github.com/iho/goinvoice/internal/domain"
	"github.com/iho/goinvoice/internal/usecase"
)

// Response headers describing a generated invoice.
const (
	HeaderInvoiceNumber = "X-Invoice-Number"
	HeaderDocumentID    = "X-Document-ID"
	HeaderInvoicePages  = "X-Invoice-Pages"
)

// InvoiceService defines the interface for invoice operations.
type InvoiceService interface {
	GenerateInvoice(ctx context.Context, input usecase.GenerateInvoiceInput, w io.Writer) (*usecase.GenerateInvoiceOutput, error)
	ListInvoices(ctx context.Context, limit, offset int) ([]*domain.InvoiceRecord, error)
}

// InvoiceHandler handles invoice HTTP requests.
type InvoiceHandler struct {
	service      InvoiceService
	profile      domain.Profile
	maxBodyBytes int64
}

// NewInvoiceHandler creates a new InvoiceHandler. profile supplies the
// seller and buyer data for every request; query parameters may override
// the per-invoice fields.
func NewInvoiceHandler(service InvoiceService, profile domain.Profile, maxBodyBytes int64) *InvoiceHandler {
	return &InvoiceHandler{
		service:      service,
		profile:      profile,
		maxBodyBytes: maxBodyBytes,
	}
}

// Create handles POST /api/v1/invoices. The request body is the timesheet
// text; the response is the PDF document.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to read timesheet", err.Error())
		return
	}

	profile, err := h.profileFor(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid query parameter", err.Error())
		return
	}

	var buf bytes.Buffer
	out, err := h.service.GenerateInvoice(r.Context(), usecase.GenerateInvoiceInput{
		Timesheet: bytes.NewReader(body),
		Profile:   profile,
	}, &buf)
	if err != nil {
		writeError(w, mapDomainError(err), "invoice generation failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "rechnung-"+out.Invoice.Number+".pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set(HeaderInvoiceNumber, out.Invoice.Number)
	w.Header().Set(HeaderDocumentID, out.DocumentID)
	w.Header().Set(HeaderInvoicePages, strconv.Itoa(out.Pages))
	w.WriteHeader(http.StatusCreated)
	w.Write(buf.Bytes())
}

// List handles GET /api/v1/invoices.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	records, err := h.service.ListInvoices(r.Context(), limit, offset)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list invoices", err.Error())
		return
	}

	limit, offset = domain.ValidatePagination(limit, offset)
	writeJSON(w, http.StatusOK, dto.ListResponse{
		Data:   dto.InvoiceRecordsFromDomain(records),
		Limit:  limit,
		Offset: offset,
	})
}

func (h *InvoiceHandler) profileFor(r *http.Request) (domain.Profile, error) {
	profile := h.profile
	q := r.URL.Query()

	if v := q.Get("number"); v != "" {
		profile.Number = v
	}
	if v := q.Get("date"); v != "" {
		profile.Date = v
	}
	if v := q.Get("service_date"); v != "" {
		profile.ServiceDate = v
	}
	if v := q.Get("rate"); v != "" {
		rate, err := decimal.NewFromString(v)
		if err != nil {
			return profile, fmt.Errorf("rate %q is not a decimal number", v)
		}
		profile.HourlyRate = rate
	}

	return profile, nil
}
