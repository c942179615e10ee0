package invest

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Instrument identifies one tradable instrument.
type Instrument struct {
	FIGI   string
	Ticker string
	Name   string
}

// RawPosition is one position exactly as the remote API reports it. Prices
// are taken as-is from the source record, never recomputed.
type RawPosition struct {
	Instrument
	Quantity     Quantity
	AveragePrice Money
	CurrentPrice Money

	// Accrued totals reduced from the instrument's executed operations.
	DividendsAndCoupons Money
	TaxesAndFees        Money
}

// PositionSource supplies the open positions of one instrument category.
type PositionSource interface {
	Positions(ctx context.Context, cat Category) ([]RawPosition, error)
}

// CashSource supplies the account's free cash balances.
type CashSource interface {
	CashBalances(ctx context.Context) ([]Money, error)
}

// OperationSource supplies the executed operation history of one instrument.
type OperationSource interface {
	Operations(ctx context.Context, figi string) ([]OperationRecord, error)
}

// InstrumentResolver resolves a human ticker to an instrument.
type InstrumentResolver interface {
	FindInstrument(ctx context.Context, ticker string) (Instrument, error)
}

// RateSource supplies conversion rates between currencies. The engine only
// consumes prefetched rates; implementations must not block.
type RateSource interface {
	// Rate returns the multiplier converting one unit of from into to.
	// It returns an error wrapping ErrRateUnavailable when the pair is unknown.
	Rate(from, to string) (decimal.Decimal, error)
}

// RateTable is a RateSource over a fixed set of prefetched pairs, keyed
// "FROM/TO".
type RateTable map[string]decimal.Decimal

func (t RateTable) Rate(from, to string) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	rate, ok := t[from+"/"+to]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %s/%s", ErrRateUnavailable, from, to)
	}
	return rate, nil
}
