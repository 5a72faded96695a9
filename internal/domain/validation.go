package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the dd.mm.yyyy format printed on invoices.
const DateLayout = "02.01.2006"

// Validation constants
const (
	MaxInvoiceNumberLength = 64
	MaxPaymentTermDays     = 365
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateProfile checks the injected invoice metadata. The invoice number
// is checked separately since it may be assigned by a number sequence.
func ValidateProfile(p Profile) error {
	if strings.TrimSpace(p.Seller.Name) == "" {
		return fmt.Errorf("%w: seller name cannot be empty", ErrInvalidProfile)
	}

	if strings.TrimSpace(p.Buyer.Name) == "" {
		return fmt.Errorf("%w: buyer name cannot be empty", ErrInvalidProfile)
	}

	if p.Seller.Email != "" {
		if err := ValidateEmail(p.Seller.Email); err != nil {
			return err
		}
	}

	if p.Date != "" {
		if err := ValidateDate(p.Date); err != nil {
			return err
		}
	}

	if p.ServiceDate != "" {
		if err := ValidateDate(p.ServiceDate); err != nil {
			return err
		}
	}

	if p.VATRate.IsNegative() || p.VATRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: VAT rate %s must be between 0 and 1", ErrInvalidProfile, p.VATRate)
	}

	if p.HourlyRate.IsNegative() {
		return fmt.Errorf("%w: hourly rate %s is negative", ErrInvalidProfile, p.HourlyRate)
	}

	if p.PaymentTermDays < 0 || p.PaymentTermDays > MaxPaymentTermDays {
		return fmt.Errorf("%w: payment term must be between 0 and %d days", ErrInvalidProfile, MaxPaymentTermDays)
	}

	return nil
}

// ValidateInvoiceNumber validates the invoice number.
func ValidateInvoiceNumber(number string) error {
	number = strings.TrimSpace(number)

	if number == "" {
		return fmt.Errorf("%w: invoice number cannot be empty", ErrInvalidProfile)
	}

	if len(number) > MaxInvoiceNumberLength {
		return fmt.Errorf("%w: invoice number exceeds %d characters", ErrInvalidProfile, MaxInvoiceNumberLength)
	}

	return nil
}

// ValidateEmail validates email format
func ValidateEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	if !emailRegex.MatchString(email) {
		return fmt.Errorf("%w: invalid email %q", ErrInvalidProfile, email)
	}

	return nil
}

// ValidateDate checks a dd.mm.yyyy date.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: date %q is not in dd.mm.yyyy format", ErrInvalidProfile, date)
	}

	return nil
}

// FormatDate renders t as dd.mm.yyyy.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidatePagination validates and limits pagination parameters
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
