package domain

import (
	"github.com/shopspring/decimal"
)

// TimeEntry represents a single billed time record read from a timesheet.
type TimeEntry struct {
	Date      string
	StartTime string
	Duration  string
	Location  string
	// Line is the 1-based line number of the record's first line.
	Line int
}

// Minutes returns the entry's duration in minutes.
func (e TimeEntry) Minutes() (decimal.Decimal, error) {
	return ParseDuration(e.Duration)
}
