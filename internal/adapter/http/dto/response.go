package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/goinvoice/internal/domain"
)

// InvoiceRecordResponse represents a registered invoice in API responses.
type InvoiceRecordResponse struct {
	ID           string          `json:"id"`
	Number       string          `json:"number"`
	InvoiceDate  string          `json:"invoice_date"`
	ServiceDate  string          `json:"service_date,omitempty"`
	BuyerName    string          `json:"buyer_name"`
	EntryCount   int             `json:"entry_count"`
	Pages        int             `json:"pages"`
	TotalMinutes decimal.Decimal `json:"total_minutes"`
	NetAmount    string          `json:"net_amount"`
	CreatedAt    time.Time       `json:"created_at"`
}

// InvoiceRecordFromDomain converts a domain invoice record to a response.
func InvoiceRecordFromDomain(r *domain.InvoiceRecord) *InvoiceRecordResponse {
	return &InvoiceRecordResponse{
		ID:           r.ID,
		Number:       r.Number,
		InvoiceDate:  r.InvoiceDate,
		ServiceDate:  r.ServiceDate,
		BuyerName:    r.BuyerName,
		EntryCount:   r.EntryCount,
		Pages:        r.Pages,
		TotalMinutes: r.TotalMinutes,
		NetAmount:    r.NetAmount.StringFixed(2),
		CreatedAt:    r.CreatedAt,
	}
}

// InvoiceRecordsFromDomain converts domain invoice records to responses.
func InvoiceRecordsFromDomain(records []*domain.InvoiceRecord) []*InvoiceRecordResponse {
	result := make([]*InvoiceRecordResponse, len(records))
	for i, r := range records {
		result[i] = InvoiceRecordFromDomain(r)
	}

	return result
}

// ListResponse wraps a page of results.
type ListResponse struct {
	Data   any `json:"data"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
