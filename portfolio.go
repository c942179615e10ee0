package invest

import "github.com/shopspring/decimal"

// Portfolio is the consolidated snapshot of an account: one Asset per
// non-empty category, the cash balances, and cross-category totals in the
// reporting currency. It is rebuilt fresh on every invocation.
type Portfolio struct {
	// Assets holds only categories with at least one position; absence of a
	// key means "no holdings in this category".
	Assets map[Category]*Asset
	// Cash keeps the account balances verbatim, in their own currencies.
	Cash []Money

	BalanceValue Money // cost basis of all positions
	CurrentValue Money // market value of all positions plus convertible cash
	Dividends    Money
	Fees         Money

	Income      Income // market profit or loss of all positions
	TotalIncome Income // including accrued dividends and coupons

	// Warnings lists the values excluded from totals because no conversion
	// rate was available.
	Warnings []string
}

// Assemble builds the portfolio snapshot from the raw positions of each
// category, the cash balances and the prefetched conversion rates. Cash
// counts toward the current value but carries no cost basis, so it does not
// influence the income figures.
func Assemble(positions map[Category][]RawPosition, cash []Money, reporting string, rates RateSource) (*Portfolio, error) {
	conv := NewConverter(reporting, rates)
	p := &Portfolio{Assets: make(map[Category]*Asset), Cash: cash}

	var balance, current, dividends, fees decimal.Decimal
	for _, cat := range Categories {
		pos := positions[cat]
		if len(pos) == 0 {
			continue
		}
		asset, err := BuildAsset(cat, pos, conv)
		if err != nil {
			return nil, err
		}
		p.Assets[cat] = asset
		balance = balance.Add(asset.BalanceValue.Amount())
		current = current.Add(asset.CurrentValue.Amount())
		dividends = dividends.Add(asset.Dividends.Amount())
		fees = fees.Add(asset.Fees.Amount())
	}

	p.BalanceValue = M(balance, reporting)
	p.Dividends = M(dividends, reporting)
	p.Fees = M(fees, reporting)

	var err error
	if p.Income, err = NewIncome(M(current, reporting), p.BalanceValue); err != nil {
		return nil, err
	}
	if p.TotalIncome, err = NewIncome(M(current.Add(dividends), reporting), p.BalanceValue); err != nil {
		return nil, err
	}

	for _, c := range cash {
		converted, ok := conv.Convert(c)
		if !ok {
			continue
		}
		current = current.Add(converted.Amount())
	}
	p.CurrentValue = M(current, reporting)

	p.Warnings = conv.Warnings()
	return p, nil
}
