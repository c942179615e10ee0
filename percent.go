package invest

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Percent keeps its full decimal precision and is only rounded to two
// places when formatted, so aggregation never compounds rounding error.
type Percent struct {
	value decimal.Decimal
}

func (p Percent) Equal(q Percent) bool    { return p.value.Equal(q.value) }
func (p Percent) IsZero() bool            { return p.value.IsZero() }
func (p Percent) IsNegative() bool        { return p.value.IsNegative() }
func (p Percent) Decimal() decimal.Decimal { return p.value }

func (p Percent) String() string {
	return p.value.StringFixed(2) + "%"
}

func (p Percent) SignedString() string {
	if p.value.IsZero() {
		return "-"
	}
	if p.value.IsPositive() {
		return "+" + p.String()
	}
	return p.String()
}
