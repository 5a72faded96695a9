package domain

import "errors"

var (
	// Timesheet errors
	ErrNoLineItems     = errors.New("no line items found in timesheet")
	ErrMalformedRecord = errors.New("malformed timesheet record")
	ErrParse           = errors.New("invalid numeric field")

	// Profile errors
	ErrInvalidProfile = errors.New("invalid invoice profile")

	// Register errors
	ErrDuplicateInvoice = errors.New("invoice number already recorded")
)
