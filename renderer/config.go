package renderer

import (
	"bytes"
	"fmt"
	"sort"

	md "github.com/nao1215/markdown"

	t212 "github.com/splitbook/t212gnucash"
)

// ConfigMarkdown renders the effective configuration as a markdown report.
func ConfigMarkdown(cfg *t212.Config) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Configuration Summary")
	doc.Table(md.TableSet{
		Header: []string{"Setting", "Value"},
		Rows: [][]string{
			{"Ticker Mappings", fmt.Sprintf("%d", len(cfg.TickerMap))},
			{"Deposit Account", cfg.DepositAccount},
			{"Interest Account", cfg.InterestAccount},
			{"Conversion Fee Account", cfg.ExpenseAccounts.ConversionFee},
			{"French Tax Account", cfg.ExpenseAccounts.FrenchTax},
			{"Stamp Duty Account", cfg.ExpenseAccounts.StampDutyTax},
		},
	})

	if len(cfg.TickerMap) > 0 {
		tickers := make([]string, 0, len(cfg.TickerMap))
		for ticker := range cfg.TickerMap {
			tickers = append(tickers, ticker)
		}
		sort.Strings(tickers)

		rows := make([][]string, 0, len(tickers))
		for _, ticker := range tickers {
			rows = append(rows, []string{ticker, cfg.TickerMap[ticker]})
		}

		doc.H2("Ticker Mappings")
		doc.Table(md.TableSet{
			Header: []string{"Trading 212", "GnuCash Symbol"},
			Rows:   rows,
		})
	}

	return doc.String()
}
