package invest

import (
	"errors"
	"testing"
)

// pos is a shorthand constructor for a single-currency raw position.
func pos(t *testing.T, ticker string, qty float64, avg, current float64, currency string) RawPosition {
	t.Helper()
	return RawPosition{
		Instrument:          Instrument{FIGI: "FIGI-" + ticker, Ticker: ticker, Name: ticker},
		Quantity:            Q(qty),
		AveragePrice:        M(avg, currency),
		CurrentPrice:        M(current, currency),
		DividendsAndCoupons: Zero(currency),
		TaxesAndFees:        Zero(currency),
	}
}

func TestBuildAsset_TotalValue(t *testing.T) {
	positions := []RawPosition{
		pos(t, "AAA", 10, 90, 100, "RUB"),
		pos(t, "BBB", 5, 180, 200, "RUB"),
		pos(t, "CCC", 1, 40, 50, "RUB"),
	}

	asset, err := BuildAsset(Share, positions, NewConverter("RUB", RateTable{}))
	if err != nil {
		t.Fatalf("BuildAsset() returned unexpected error: %v", err)
	}

	// 10*100 + 5*200 + 1*50
	if !asset.CurrentValue.Equal(M(2050, "RUB")) {
		t.Errorf("CurrentValue = %v, want 2050 RUB", asset.CurrentValue)
	}
	// 10*90 + 5*180 + 1*40
	if !asset.BalanceValue.Equal(M(1840, "RUB")) {
		t.Errorf("BalanceValue = %v, want 1840 RUB", asset.BalanceValue)
	}
	if asset.Count() != 3 {
		t.Errorf("Count() = %d, want 3", asset.Count())
	}
}

func TestBuildAsset_PreservesInputOrder(t *testing.T) {
	positions := []RawPosition{
		pos(t, "ZZZ", 1, 1, 1, "RUB"),
		pos(t, "AAA", 1, 1, 1, "RUB"),
		pos(t, "MMM", 1, 1, 1, "RUB"),
	}
	asset, err := BuildAsset(Share, positions, NewConverter("RUB", RateTable{}))
	if err != nil {
		t.Fatalf("BuildAsset() returned unexpected error: %v", err)
	}
	want := []string{"ZZZ", "AAA", "MMM"}
	for i, p := range asset.Papers {
		if p.Ticker != want[i] {
			t.Errorf("Papers[%d] = %s, want %s", i, p.Ticker, want[i])
		}
	}
}

func TestBuildAsset_AggregatedKeepsTotals(t *testing.T) {
	positions := []RawPosition{
		pos(t, "AAA", 10, 90, 100, "RUB"),
		pos(t, "BBB", 5, 180, 200, "RUB"),
	}
	asset, err := BuildAsset(Share, positions, NewConverter("RUB", RateTable{}))
	if err != nil {
		t.Fatalf("BuildAsset() returned unexpected error: %v", err)
	}

	aggregated := asset.Aggregated()
	if len(aggregated) != 1 {
		t.Fatalf("Aggregated() returned %d papers, want 1", len(aggregated))
	}
	if !aggregated[0].CurrentValue().Equal(asset.CurrentValue) {
		t.Errorf("synthetic current value = %v, want %v", aggregated[0].CurrentValue(), asset.CurrentValue)
	}
	if !aggregated[0].BalanceValue().Equal(asset.BalanceValue) {
		t.Errorf("synthetic balance value = %v, want %v", aggregated[0].BalanceValue(), asset.BalanceValue)
	}
	// full detail must remain available
	if len(asset.Papers) != 2 {
		t.Errorf("Papers shrank to %d entries after Aggregated()", len(asset.Papers))
	}
}

func TestBuildAsset_MixedCurrenciesConverted(t *testing.T) {
	positions := []RawPosition{
		pos(t, "USDRUB", 100, 70, 80, "RUB"),
		pos(t, "EURUSD", 10, 1.0, 1.1, "USD"),
	}
	rates := RateTable{"USD/RUB": newDecimal(90)}

	asset, err := BuildAsset(Currency, positions, NewConverter("RUB", rates))
	if err != nil {
		t.Fatalf("BuildAsset() returned unexpected error: %v", err)
	}
	// 100*80 + 10*1.1*90
	if !asset.CurrentValue.Equal(M(8990, "RUB")) {
		t.Errorf("CurrentValue = %v, want 8990 RUB", asset.CurrentValue)
	}
}

func TestBuildAsset_MissingRateDegrades(t *testing.T) {
	positions := []RawPosition{
		pos(t, "SBER", 100, 250, 270, "RUB"),
		pos(t, "AAPL", 1, 100, 150, "USD"),
	}
	conv := NewConverter("RUB", RateTable{})

	asset, err := BuildAsset(Share, positions, conv)
	if err != nil {
		t.Fatalf("BuildAsset() returned unexpected error: %v", err)
	}
	// the USD paper stays in the detail but not in the totals
	if len(asset.Papers) != 2 {
		t.Errorf("Papers = %d entries, want 2", len(asset.Papers))
	}
	if !asset.CurrentValue.Equal(M(27000, "RUB")) {
		t.Errorf("CurrentValue = %v, want 27000 RUB", asset.CurrentValue)
	}
	if len(conv.Warnings()) == 0 {
		t.Error("expected a conversion warning, got none")
	}
}

func TestBuildAsset_CurrencyMismatchInPosition(t *testing.T) {
	bad := RawPosition{
		Instrument:   Instrument{Ticker: "BAD"},
		Quantity:     Q(1),
		AveragePrice: M(10, "USD"),
		CurrentPrice: M(12, "RUB"),
	}
	_, err := BuildAsset(Share, []RawPosition{bad}, NewConverter("RUB", RateTable{}))
	if !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("BuildAsset() error = %v, want ErrCurrencyMismatch", err)
	}
}

func TestPaper_Income(t *testing.T) {
	paper, err := NewPaper(pos(t, "SBER", 100, 250, 270, "RUB"))
	if err != nil {
		t.Fatalf("NewPaper() returned unexpected error: %v", err)
	}
	income := paper.Income()
	if !income.Absolute().Equal(M(2000, "RUB")) {
		t.Errorf("income absolute = %v, want 2000 RUB", income.Absolute())
	}
	if got := income.Percent().String(); got != "8.00%" {
		t.Errorf("income percent = %q, want 8.00%%", got)
	}
}
