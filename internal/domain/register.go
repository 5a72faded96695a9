package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceRecord is the register entry kept for every generated invoice.
type InvoiceRecord struct {
	CreatedAt    time.Time
	ID           string
	Number       string
	InvoiceDate  string
	ServiceDate  string
	BuyerName    string
	EntryCount   int
	Pages        int
	TotalMinutes decimal.Decimal
	NetAmount    decimal.Decimal
}
