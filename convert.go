package invest

import (
	"errors"
	"fmt"
)

// Converter expresses Money values in a single reporting currency. A missing
// rate never aborts an aggregation: the value is reported unconvertible and a
// warning recorded, so one bad quote cannot hide the rest of the portfolio.
type Converter struct {
	reporting string
	rates     RateSource
	warnings  []string
}

func NewConverter(reporting string, rates RateSource) *Converter {
	return &Converter{reporting: reporting, rates: rates}
}

// Reporting returns the reporting currency.
func (c *Converter) Reporting() string { return c.reporting }

// Convert returns m expressed in the reporting currency. When no rate is
// available it returns false and records a warning; the caller must then
// leave m out of the cross-currency total.
func (c *Converter) Convert(m Money) (Money, bool) {
	if m.Currency() == c.reporting || m.Currency() == "" {
		return M(m.Amount(), c.reporting), true
	}
	rate, err := c.rates.Rate(m.Currency(), c.reporting)
	if err != nil {
		if errors.Is(err, ErrRateUnavailable) {
			c.warn("no %s/%s rate: %s not counted in totals", m.Currency(), c.reporting, m)
			return Money{}, false
		}
		c.warn("rate %s/%s: %v", m.Currency(), c.reporting, err)
		return Money{}, false
	}
	return M(m.Amount().Mul(rate), c.reporting), true
}

func (c *Converter) warn(format string, args ...any) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

// Warnings lists every conversion that could not be performed so far.
func (c *Converter) Warnings() []string { return c.warnings }
