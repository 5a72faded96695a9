package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/iho/goinvoice/internal/domain"
)

// Defaults applied to profile fields left empty.
const (
	DefaultPaymentTermDays = 14
	DefaultTaxNotice       = "Hinweis: Kein Ausweis von Umsatzsteuer, da Kleinunternehmer gemäß § 19 UStG."
)

// ProfileFile is the YAML layout of an invoice profile.
type ProfileFile struct {
	Seller struct {
		Name    string `yaml:"name"`
		Address string `yaml:"address"`
		Email   string `yaml:"email"`
		IBAN    string `yaml:"iban"`
		BIC     string `yaml:"bic"`
		TaxID   string `yaml:"tax_id"`
	} `yaml:"seller"`
	Buyer struct {
		Name    string `yaml:"name"`
		Address string `yaml:"address"`
	} `yaml:"buyer"`
	Invoice struct {
		Number          string  `yaml:"number"`
		Date            string  `yaml:"date"`
		ServiceDate     string  `yaml:"service_date"`
		VATRate         string  `yaml:"vat_rate"`
		HourlyRate      string  `yaml:"hourly_rate"`
		PaymentTermDays *int    `yaml:"payment_term_days"`
		TaxNotice       *string `yaml:"tax_notice"`
	} `yaml:"invoice"`
}

// LoadProfile reads an invoice profile from a YAML file. fallbackRate is
// used when the profile does not set an hourly rate.
func LoadProfile(path string, fallbackRate decimal.Decimal) (domain.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}

	return ParseProfile(data, fallbackRate)
}

// ParseProfile decodes and validates a YAML invoice profile.
func ParseProfile(data []byte, fallbackRate decimal.Decimal) (domain.Profile, error) {
	var file ProfileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Profile{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return file.toDomain(fallbackRate)
}

func (f ProfileFile) toDomain(fallbackRate decimal.Decimal) (domain.Profile, error) {
	vatRate, err := optionalDecimal("vat_rate", f.Invoice.VATRate, decimal.Zero)
	if err != nil {
		return domain.Profile{}, err
	}

	hourlyRate, err := optionalDecimal("hourly_rate", f.Invoice.HourlyRate, fallbackRate)
	if err != nil {
		return domain.Profile{}, err
	}

	termDays := DefaultPaymentTermDays
	if f.Invoice.PaymentTermDays != nil {
		termDays = *f.Invoice.PaymentTermDays
	}

	taxNotice := DefaultTaxNotice
	if f.Invoice.TaxNotice != nil {
		taxNotice = *f.Invoice.TaxNotice
	}

	p := domain.Profile{
		Seller: domain.Seller{
			Name:    strings.TrimSpace(f.Seller.Name),
			Address: f.Seller.Address,
			Email:   strings.TrimSpace(f.Seller.Email),
			IBAN:    strings.TrimSpace(f.Seller.IBAN),
			BIC:     strings.TrimSpace(f.Seller.BIC),
			TaxID:   strings.TrimSpace(f.Seller.TaxID),
		},
		Buyer: domain.Buyer{
			Name:    strings.TrimSpace(f.Buyer.Name),
			Address: f.Buyer.Address,
		},
		Number:          strings.TrimSpace(f.Invoice.Number),
		Date:            strings.TrimSpace(f.Invoice.Date),
		ServiceDate:     strings.TrimSpace(f.Invoice.ServiceDate),
		VATRate:         vatRate,
		HourlyRate:      hourlyRate,
		PaymentTermDays: termDays,
		TaxNotice:       taxNotice,
	}

	if err := domain.ValidateProfile(p); err != nil {
		return domain.Profile{}, err
	}

	return p, nil
}

func optionalDecimal(field, value string, fallback decimal.Decimal) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q is not a number", domain.ErrInvalidProfile, field, value)
	}

	return d, nil
}
