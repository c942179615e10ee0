// Package renderer turns engine output into markdown. It emits plain
// markdown only; terminal styling is the caller's concern.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/etnz/invest"
)

// PortfolioMarkdown renders the portfolio snapshot. With aggregate set, each
// category shows a single synthetic totals row instead of per-paper detail.
func PortfolioMarkdown(p *invest.Portfolio, aggregate bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio")

	for _, cat := range invest.Categories {
		asset, ok := p.Assets[cat]
		if !ok {
			continue
		}
		doc.H2(cat.String())

		papers := asset.Papers
		if aggregate {
			papers = asset.Aggregated()
		}
		table := md.TableSet{
			Header: []string{"Instrument", "Ticker", "Quantity", "Avg price", "Last price", "Balance value", "Current value", "Income"},
			Rows:   [][]string{},
		}
		for _, paper := range papers {
			table.Rows = append(table.Rows, []string{
				paper.Name,
				paper.Ticker,
				paper.Quantity.String(),
				paper.AveragePrice.String(),
				paper.CurrentPrice.String(),
				paper.BalanceValue().String(),
				paper.CurrentValue().String(),
				paper.Income().String(),
			})
		}
		doc.Table(table)

		doc.Table(totalsTable(fmt.Sprintf("%s totals", cat), [][]string{
			{"Balance value", asset.BalanceValue.String()},
			{"Current value", asset.CurrentValue.String()},
			{"Balance income", asset.Income.String()},
			{"Total income", asset.TotalIncome.String()},
			{"Dividends and coupons", asset.Dividends.SignedString()},
			{"Taxes and fees", asset.Fees.SignedString()},
			{"Instruments count", strconv.Itoa(asset.Count())},
		}))
	}

	if len(p.Cash) > 0 {
		doc.H2("Cash")
		table := md.TableSet{
			Header: []string{"Currency", "Balance"},
			Rows:   [][]string{},
		}
		for _, c := range p.Cash {
			table.Rows = append(table.Rows, []string{c.Currency(), c.String()})
		}
		doc.Table(table)
	}

	doc.H2("Portfolio totals")
	doc.Table(totalsTable("Totals", [][]string{
		{"Balance income", p.Income.String()},
		{"Total income", p.TotalIncome.String()},
		{"Dividends and coupons", p.Dividends.SignedString()},
		{"Taxes and fees", p.Fees.SignedString()},
		{"Balance value", p.BalanceValue.String()},
		{"Current value", p.CurrentValue.String()},
	}))

	if len(p.Warnings) > 0 {
		doc.H2("Warnings")
		doc.BulletList(p.Warnings...)
	}

	return doc.String()
}

func totalsTable(title string, rows [][]string) md.TableSet {
	return md.TableSet{
		Header: []string{title, ""},
		Rows:   rows,
	}
}
