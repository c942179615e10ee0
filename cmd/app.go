// Package cmd implements the CLI application to report a brokerage account.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/etnz/invest"
	"github.com/etnz/invest/tinvest"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var tokenFlag = flag.String("token", "", "Invest API token.\n If missing it will read the environment variable TINVEST_TOKEN.")

// Commands lists the subcommands.
// A main package will register all of them and Execute() the user-selected one.
var Commands = []subcommands.Command{
	newPortfolioCmd("a", "display the whole portfolio", invest.Categories...),
	newPortfolioCmd("s", "display share positions", invest.Share),
	newPortfolioCmd("b", "display bond positions", invest.Bond),
	newPortfolioCmd("e", "display etf positions", invest.Etf),
	newPortfolioCmd("c", "display currency positions", invest.Currency),
	newPortfolioCmd("f", "display futures positions", invest.Future),
	&historyCmd{},
}

// newClient is the central function to open an API client.
func newClient() (*tinvest.Client, error) {
	cfg, err := tinvest.ConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("reading client settings: %w", err)
	}
	if *tokenFlag != "" {
		cfg.Token = *tokenFlag
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("missing API token: pass -token or set TINVEST_TOKEN")
	}
	return tinvest.New(cfg), nil
}

// printMarkdown renders markdown for the terminal, falling back to the plain
// text when the terminal cannot be styled.
func printMarkdown(content string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err == nil {
		if out, rerr := r.Render(content); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(content)
}
