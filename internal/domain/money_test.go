package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "tie rounds up", amount: "12.005", want: "12,01 €"},
		{name: "zero", amount: "0", want: "0,00 €"},
		{name: "negative tie rounds away from zero", amount: "-1.005", want: "-1,01 €"},
		{name: "below tie rounds down", amount: "12.0049", want: "12,00 €"},
		{name: "even digit tie still rounds up", amount: "0.125", want: "0,13 €"},
		{name: "whole amount", amount: "24", want: "24,00 €"},
		{name: "hours value", amount: "0.75", want: "0,75 €"},
		{name: "large amount has no grouping", amount: "1234567.891", want: "1234567,89 €"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestFormatMoneyRepeatingFraction(t *testing.T) {
	// 1 minute at 32/h is 0.5333…
	amount := NetAmount(decimal.NewFromInt(1), decimal.NewFromInt(32))
	assert.Equal(t, "0,53 €", FormatMoney(amount))
}
