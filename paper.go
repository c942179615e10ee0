package invest

// Paper is a single instrument's position in the portfolio snapshot: its
// identity, quantity, prices and accrued income. It is built once per
// snapshot and immutable thereafter.
type Paper struct {
	Instrument
	Quantity     Quantity
	AveragePrice Money
	CurrentPrice Money

	// DividendsAndCoupons is the net accrued income paid out for this
	// instrument; TaxesAndFees the commissions and taxes charged for it.
	DividendsAndCoupons Money
	TaxesAndFees        Money
}

// NewPaper maps one raw position record to a Paper. The only validation is
// the currency invariant: average and current price must agree.
func NewPaper(pos RawPosition) (Paper, error) {
	if _, err := cur(pos.AveragePrice, pos.CurrentPrice); err != nil {
		return Paper{}, err
	}
	return Paper{
		Instrument:          pos.Instrument,
		Quantity:            pos.Quantity,
		AveragePrice:        pos.AveragePrice,
		CurrentPrice:        pos.CurrentPrice,
		DividendsAndCoupons: pos.DividendsAndCoupons,
		TaxesAndFees:        pos.TaxesAndFees,
	}, nil
}

// BalanceValue is the amount really spent: average buy price times quantity.
func (p Paper) BalanceValue() Money { return p.AveragePrice.Mul(p.Quantity) }

// CurrentValue is the position's market value: current price times quantity.
func (p Paper) CurrentValue() Money { return p.CurrentPrice.Mul(p.Quantity) }

// Income is the market profit or loss of the position.
func (p Paper) Income() Income {
	// prices share one currency per the construction invariant
	income, _ := NewIncome(p.CurrentValue(), p.BalanceValue())
	return income
}

// TotalIncome is the market income plus accrued dividends and coupons.
func (p Paper) TotalIncome() (Income, error) {
	value, err := p.CurrentValue().Add(p.DividendsAndCoupons)
	if err != nil {
		return Income{}, err
	}
	return NewIncome(value, p.BalanceValue())
}
