package invest

import "errors"

// ErrCurrencyMismatch is returned by arithmetic between two Money values of
// different currencies. It is always a programming or data error, never
// something to retry.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// ErrRateUnavailable is returned when no conversion rate exists for a
// currency pair. It is non-fatal: the affected value is excluded from
// cross-currency totals and reported as a warning.
var ErrRateUnavailable = errors.New("conversion rate unavailable")

// ErrEmptyHistory is returned by BuildNonEmptyLedger when the operation
// stream turned out to be empty.
var ErrEmptyHistory = errors.New("empty operation history")
