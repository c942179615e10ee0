package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/invest"
)

// LedgerMarkdown renders the operation history of one instrument.
func LedgerMarkdown(instrument invest.Instrument, ledger invest.HistoryLedger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History for %s (%s | %s)", instrument.Name, instrument.Ticker, instrument.FIGI))

	table := md.TableSet{
		Header: []string{"Date", "Operation", "State", "Quantity", "Price", "Payment", "Running total"},
		Rows:   [][]string{},
	}
	for _, entry := range ledger.Entries {
		table.Rows = append(table.Rows, []string{
			entry.Time.Format("2006-01-02 15:04"),
			entry.Description,
			entry.State,
			entry.Quantity.String(),
			entry.Price.String(),
			entry.Payment.SignedString(),
			entry.RunningTotal.SignedString(),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Total payments: %s", ledger.Total.SignedString()))

	return doc.String()
}
