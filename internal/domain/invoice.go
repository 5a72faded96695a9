package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MinutesPerHour converts billed minutes to hours.
var MinutesPerHour = decimal.NewFromInt(60)

// Seller is the party issuing the invoice.
type Seller struct {
	Name    string
	Address string
	Email   string
	IBAN    string
	BIC     string
	TaxID   string
}

// AddressLines splits the multi-line address into printable lines.
func (s Seller) AddressLines() []string {
	return splitLines(s.Address)
}

// Buyer is the invoice recipient.
type Buyer struct {
	Name    string
	Address string
}

// AddressLines splits the multi-line address into printable lines.
func (b Buyer) AddressLines() []string {
	return splitLines(b.Address)
}

// Profile holds the invoice metadata injected by configuration.
type Profile struct {
	Seller          Seller
	Buyer           Buyer
	Number          string
	Date            string
	ServiceDate     string
	VATRate         decimal.Decimal
	HourlyRate      decimal.Decimal
	PaymentTermDays int
	TaxNotice       string
}

// Invoice is a single invoice under construction. Totals are filled in
// while the document is laid out.
type Invoice struct {
	Profile

	Entries      []TimeEntry
	TotalMinutes decimal.Decimal
	NetAmount    decimal.Decimal
}

// NewInvoice creates an invoice for the given entries.
func NewInvoice(profile Profile, entries []TimeEntry) (*Invoice, error) {
	if len(entries) == 0 {
		return nil, ErrNoLineItems
	}

	return &Invoice{
		Profile:      profile,
		Entries:      entries,
		TotalMinutes: decimal.Zero,
		NetAmount:    decimal.Zero,
	}, nil
}

// Hours returns the billed time in hours.
func (inv *Invoice) Hours() decimal.Decimal {
	return inv.TotalMinutes.Div(MinutesPerHour)
}

// NetAmount prices minutes at an hourly rate as minutes × rate / 60.
func NetAmount(minutes, hourlyRate decimal.Decimal) decimal.Decimal {
	return minutes.Mul(hourlyRate).Div(MinutesPerHour)
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
