package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/invest"
)

func portfolioFixture(t *testing.T) *invest.Portfolio {
	t.Helper()
	positions := map[invest.Category][]invest.RawPosition{
		invest.Share: {{
			Instrument:          invest.Instrument{FIGI: "BBG004730N88", Ticker: "SBER", Name: "Sberbank"},
			Quantity:            invest.Q(100),
			AveragePrice:        invest.M(250, "RUB"),
			CurrentPrice:        invest.M(270, "RUB"),
			DividendsAndCoupons: invest.Zero("RUB"),
			TaxesAndFees:        invest.Zero("RUB"),
		}},
	}
	p, err := invest.Assemble(positions, []invest.Money{invest.M(5000, "RUB")}, "RUB", invest.RateTable{})
	if err != nil {
		t.Fatalf("Assemble() failed: %v", err)
	}
	return p
}

func TestPortfolioMarkdown(t *testing.T) {
	got := PortfolioMarkdown(portfolioFixture(t), false)

	for _, want := range []string{"# Portfolio", "## Shares", "SBER", "Sberbank", "## Cash", "## Portfolio totals", "+8.00%"} {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "## Warnings") {
		t.Error("output contains a warnings section without warnings")
	}
}

func TestPortfolioMarkdown_Aggregate(t *testing.T) {
	got := PortfolioMarkdown(portfolioFixture(t), true)
	if strings.Contains(got, "Sberbank") {
		t.Error("aggregate output still lists individual papers")
	}
	if !strings.Contains(got, "Shares total") {
		t.Error("aggregate output misses the synthetic totals row")
	}
}

func TestLedgerMarkdown(t *testing.T) {
	at := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	ledger, err := invest.BuildLedger([]invest.OperationRecord{
		{ID: "1", Time: at, Kind: invest.Buy, Description: "Buying securities", State: "executed",
			Payment: invest.M(-27000, "RUB"), Price: invest.M(270, "RUB"), Quantity: invest.Q(100)},
	})
	if err != nil {
		t.Fatalf("BuildLedger() failed: %v", err)
	}

	instrument := invest.Instrument{FIGI: "BBG004730N88", Ticker: "SBER", Name: "Sberbank"}
	got := LedgerMarkdown(instrument, ledger)

	for _, want := range []string{"History for Sberbank", "SBER", "Buying securities", "executed", "Total payments"} {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q:\n%s", want, got)
		}
	}
}
