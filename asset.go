package invest

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Asset is the portfolio slice of one instrument category: the papers in API
// return order plus totals expressed in the reporting currency.
type Asset struct {
	Category Category
	// Papers preserves the source order for stable report output.
	Papers []Paper

	BalanceValue Money // cost basis of the whole category
	CurrentValue Money // market value of the whole category
	Dividends    Money // accrued dividends and coupons
	Fees         Money // accrued taxes and fees

	Income      Income // market profit or loss
	TotalIncome Income // market profit or loss plus accrued income
}

// BuildAsset maps raw positions of one category into an Asset. Positions
// whose currency cannot be converted stay in the paper detail but are left
// out of the category totals, with a warning recorded on the converter.
func BuildAsset(cat Category, positions []RawPosition, conv *Converter) (*Asset, error) {
	a := &Asset{Category: cat, Papers: make([]Paper, 0, len(positions))}

	var balance, current, dividends, fees decimal.Decimal
	for _, pos := range positions {
		p, err := NewPaper(pos)
		if err != nil {
			return nil, fmt.Errorf("position %s: %w", pos.Ticker, err)
		}
		a.Papers = append(a.Papers, p)

		cv, ok := conv.Convert(p.CurrentValue())
		if !ok {
			continue
		}
		// balance value shares the current value's currency, so this
		// conversion cannot fail anymore.
		bv, _ := conv.Convert(p.BalanceValue())
		current = current.Add(cv.Amount())
		balance = balance.Add(bv.Amount())

		if d, ok := conv.Convert(p.DividendsAndCoupons); ok {
			dividends = dividends.Add(d.Amount())
		}
		if f, ok := conv.Convert(p.TaxesAndFees); ok {
			fees = fees.Add(f.Amount())
		}
	}

	reporting := conv.Reporting()
	a.BalanceValue = M(balance, reporting)
	a.CurrentValue = M(current, reporting)
	a.Dividends = M(dividends, reporting)
	a.Fees = M(fees, reporting)

	var err error
	if a.Income, err = NewIncome(a.CurrentValue, a.BalanceValue); err != nil {
		return nil, err
	}
	if a.TotalIncome, err = NewIncome(M(current.Add(dividends), reporting), a.BalanceValue); err != nil {
		return nil, err
	}
	return a, nil
}

// Count returns the number of instruments held in the category.
func (a *Asset) Count() int { return len(a.Papers) }

// Aggregated collapses the papers into a single synthetic position carrying
// the category totals. Totals are not affected, only the exposed detail.
func (a *Asset) Aggregated() []Paper {
	return []Paper{{
		Instrument:          Instrument{Name: a.Category.String() + " total"},
		Quantity:            Q(1),
		AveragePrice:        a.BalanceValue,
		CurrentPrice:        a.CurrentValue,
		DividendsAndCoupons: a.Dividends,
		TaxesAndFees:        a.Fees,
	}}
}
