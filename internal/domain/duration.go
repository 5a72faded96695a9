package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const minuteSuffix = " min"

// ParseDuration converts a duration field such as "45 min" into minutes.
// An empty field counts as zero.
func ParseDuration(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, minuteSuffix))

	if s == "" {
		return decimal.Zero, nil
	}

	minutes, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: duration %q is not a number", ErrParse, s)
	}

	if minutes.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: duration %q is negative", ErrParse, s)
	}

	return minutes, nil
}
