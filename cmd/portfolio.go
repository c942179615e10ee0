package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/google/subcommands"

	"github.com/etnz/invest"
	"github.com/etnz/invest/renderer"
	"github.com/etnz/invest/tinvest"
)

// portfolioCmd holds the flags for one category-filter subcommand.
type portfolioCmd struct {
	name       string
	synopsis   string
	categories []invest.Category

	currency  string
	aggregate bool
}

func newPortfolioCmd(name, synopsis string, categories ...invest.Category) *portfolioCmd {
	return &portfolioCmd{name: name, synopsis: synopsis, categories: categories}
}

func (c *portfolioCmd) Name() string     { return c.name }
func (c *portfolioCmd) Synopsis() string { return c.synopsis }
func (c *portfolioCmd) Usage() string {
	return fmt.Sprintf(`tin %s [-c <currency>] [-aggregate]

  %s, with profit and loss per position and per category.
`, c.name, c.synopsis)
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "RUB", "Reporting currency for cross-category totals")
	f.BoolVar(&c.aggregate, "aggregate", false, "collapse each category into a single totals row")
}

func (c *portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	positions, err := fetchPositions(ctx, client, c.categories)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching positions: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := fillAccruals(ctx, client, positions); err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching operations: %v\n", err)
		return subcommands.ExitFailure
	}

	// cash belongs to the account, not to a category: only the full view shows it
	var cash []invest.Money
	if len(c.categories) > 1 {
		if cash, err = client.CashBalances(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching cash balances: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	rates, err := client.Rates(ctx, currenciesOf(positions, cash), c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching conversion rates: %v\n", err)
		return subcommands.ExitFailure
	}

	portfolio, err := invest.Assemble(positions, cash, c.currency, rates)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error assembling portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PortfolioMarkdown(portfolio, c.aggregate))
	return subcommands.ExitSuccess
}

// fetchPositions requests every category concurrently and joins the results
// before the engine runs. Categories without holdings are left out.
func fetchPositions(ctx context.Context, client *tinvest.Client, categories []invest.Category) (map[invest.Category][]invest.RawPosition, error) {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	positions := make(map[invest.Category][]invest.RawPosition, len(categories))
	for _, cat := range categories {
		wg.Add(1)
		go func(cat invest.Category) {
			defer wg.Done()
			pos, err := client.Positions(ctx, cat)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			if len(pos) > 0 {
				positions[cat] = pos
			}
		}(cat)
	}
	wg.Wait()
	return positions, firstErr
}

// fillAccruals folds each position's executed operations into its accrued
// dividend and fee totals, one concurrent fetch per instrument.
func fillAccruals(ctx context.Context, client *tinvest.Client, positions map[invest.Category][]invest.RawPosition) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, list := range positions {
		for i := range list {
			wg.Add(1)
			go func(pos *invest.RawPosition) {
				defer wg.Done()
				ops, err := client.Operations(ctx, pos.FIGI)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}
				pos.DividendsAndCoupons, pos.TaxesAndFees = invest.Accruals(ops, pos.CurrentPrice.Currency())
			}(&list[i])
		}
	}
	wg.Wait()
	return firstErr
}

// currenciesOf collects every currency appearing in the inputs, so the rates
// for all of them can be prefetched in one go.
func currenciesOf(positions map[invest.Category][]invest.RawPosition, cash []invest.Money) []string {
	seen := make(map[string]bool)
	var currencies []string
	add := func(cur string) {
		if cur != "" && !seen[cur] {
			seen[cur] = true
			currencies = append(currencies, cur)
		}
	}
	for _, list := range positions {
		for _, pos := range list {
			add(pos.CurrentPrice.Currency())
		}
	}
	for _, c := range cash {
		add(c.Currency())
	}
	return currencies
}
