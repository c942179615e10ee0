package invest

import (
	"errors"
	"testing"
)

func TestMoney_AddSubRoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		a, b Money
	}{
		{name: "integers", a: M(100, "RUB"), b: M(50, "RUB")},
		{name: "cents", a: M(0.01, "USD"), b: M(10.99, "USD")},
		{name: "negative", a: M(-250.75, "EUR"), b: M(1000, "EUR")},
		{name: "tenth plus two tenths", a: M(0.1, "USD"), b: M(0.2, "USD")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sum, err := tc.a.Add(tc.b)
			if err != nil {
				t.Fatalf("Add() returned unexpected error: %v", err)
			}
			back, err := sum.Sub(tc.b)
			if err != nil {
				t.Fatalf("Sub() returned unexpected error: %v", err)
			}
			if !back.Equal(tc.a) {
				t.Errorf("Add then Sub = %v, want %v", back, tc.a)
			}
		})
	}
}

func TestMoney_CurrencyMismatch(t *testing.T) {
	a := M(10, "USD")
	b := M(10, "RUB")

	if _, err := a.Add(b); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("Add() error = %v, want ErrCurrencyMismatch", err)
	}
	if _, err := a.Sub(b); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("Sub() error = %v, want ErrCurrencyMismatch", err)
	}
	if _, err := a.Cmp(b); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("Cmp() error = %v, want ErrCurrencyMismatch", err)
	}
}

func TestMoney_ZeroAccumulatorAdoptsCurrency(t *testing.T) {
	var acc Money // fold accumulator, no currency yet
	acc, err := acc.Add(M(5000, "RUB"))
	if err != nil {
		t.Fatalf("Add() returned unexpected error: %v", err)
	}
	if acc.Currency() != "RUB" {
		t.Errorf("accumulator currency = %q, want RUB", acc.Currency())
	}
}

func TestMoney_Cmp(t *testing.T) {
	testCases := []struct {
		name string
		a, b Money
		want int
	}{
		{name: "less", a: M(1, "USD"), b: M(2, "USD"), want: -1},
		{name: "equal", a: M(2.50, "USD"), b: M(2.5, "USD"), want: 0},
		{name: "greater", a: M(3, "USD"), b: M(2, "USD"), want: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.a.Cmp(tc.b)
			if err != nil {
				t.Fatalf("Cmp() returned unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Cmp() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestMoney_String(t *testing.T) {
	if got := M(1234.56, "USD").String(); got != "$1,234.56" {
		t.Errorf("String() = %q, want $1,234.56", got)
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := Zero("USD").SignedString(); got != "-" {
		t.Errorf("SignedString() of zero = %q, want -", got)
	}
	if got := M(1, "USD").SignedString(); got != "+$1.00" {
		t.Errorf("SignedString() = %q, want +$1.00", got)
	}
}

func TestMoney_Mul(t *testing.T) {
	got := M(270, "RUB").Mul(Q(100))
	if !got.Amount().Equal(newDecimal(27000)) {
		t.Errorf("Mul() = %v, want 27000", got.Amount())
	}
	if got.Currency() != "RUB" {
		t.Errorf("Mul() currency = %q, want RUB", got.Currency())
	}
}
