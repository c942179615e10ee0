package invest

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value: an exact decimal amount tagged with an
// ISO 4217 currency code. Money is immutable; all operations return a new
// value. Arithmetic between two Money values is defined only when their
// currencies match.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// Zero returns the zero amount in the given currency.
func Zero(currency string) Money { return Money{cur: currency} }

// currency returns the money's full currency description.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String renders the value with the currency's canonical symbol and grouping,
// rounded to the currency's minor unit. Internal precision is not affected.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string          { return m.cur }
func (m Money) Amount() decimal.Decimal   { return m.value }
func (m Money) Equal(n Money) bool        { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool              { return m.value.IsZero() }
func (m Money) IsPositive() bool          { return m.value.IsPositive() }
func (m Money) IsNegative() bool          { return m.value.IsNegative() }
func (m Money) Neg() Money                { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(q Quantity) Money      { return Money{value: m.value.Mul(q.value), cur: m.cur} }

// binary operators, defined only for matching currencies.

func (m Money) Add(n Money) (Money, error) {
	c, err := cur(m, n)
	if err != nil {
		return Money{}, err
	}
	return Money{value: m.value.Add(n.value), cur: c}, nil
}

func (m Money) Sub(n Money) (Money, error) {
	c, err := cur(m, n)
	if err != nil {
		return Money{}, err
	}
	return Money{value: m.value.Sub(n.value), cur: c}, nil
}

// Cmp compares two amounts of the same currency, returning -1, 0 or 1.
func (m Money) Cmp(n Money) (int, error) {
	if _, err := cur(m, n); err != nil {
		return 0, err
	}
	return m.value.Cmp(n.value), nil
}

// cur resolves the common currency of two values. The "" currency is weak:
// it only appears on zero values used as fold accumulators, and adopts the
// other side's currency.
func cur(a, b Money) (string, error) {
	if a.cur == "" {
		return b.cur, nil
	}
	if b.cur == "" {
		return a.cur, nil
	}
	if a.cur != b.cur {
		return "", fmt.Errorf("%w: %s != %s", ErrCurrencyMismatch, a.cur, b.cur)
	}
	return a.cur, nil
}
