package usecase

import "time"

const (
	// DefaultRegisterTimeout bounds a single register write.
	DefaultRegisterTimeout = 10 * time.Second

	// NumberDigits is the zero-padded width of the running invoice number.
	NumberDigits = 3
)
