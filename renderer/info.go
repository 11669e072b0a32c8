package renderer

import (
	"bytes"
	"fmt"
	"sort"

	md "github.com/nao1215/markdown"

	t212 "github.com/splitbook/t212gnucash"
)

// topTickers caps the ticker table to the most traded symbols.
const topTickers = 10

// FileInfoMarkdown renders a file scan as a markdown report.
func FileInfoMarkdown(info *t212.FileInfo) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("File Summary")
	rows := [][]string{
		{"Total Transactions", fmt.Sprintf("%d", info.Transactions)},
		{"Unique Tickers", fmt.Sprintf("%d", len(info.Tickers))},
	}
	if info.Malformed > 0 {
		rows = append(rows, []string{"Malformed Rows", fmt.Sprintf("%d", info.Malformed)})
	}
	if info.FirstTime != "" {
		rows = append(rows, []string{"Date Range", fmt.Sprintf("%s to %s", info.FirstTime, info.LastTime)})
	}
	doc.Table(md.TableSet{Header: []string{"Metric", "Value"}, Rows: rows})

	if len(info.Actions) > 0 {
		actions := make([]string, 0, len(info.Actions))
		for action := range info.Actions {
			actions = append(actions, string(action))
		}
		sort.Strings(actions)

		rows := make([][]string, 0, len(actions))
		for _, action := range actions {
			rows = append(rows, []string{action, fmt.Sprintf("%d", info.Actions[t212.Action(action)])})
		}
		doc.H2("Transaction Types")
		doc.Table(md.TableSet{Header: []string{"Action", "Count"}, Rows: rows})
	}

	if len(info.Tickers) > 0 {
		type tickerCount struct {
			ticker string
			count  int
		}
		counts := make([]tickerCount, 0, len(info.Tickers))
		for ticker, count := range info.Tickers {
			counts = append(counts, tickerCount{ticker, count})
		}
		sort.Slice(counts, func(i, j int) bool {
			if counts[i].count != counts[j].count {
				return counts[i].count > counts[j].count
			}
			return counts[i].ticker < counts[j].ticker
		})
		if len(counts) > topTickers {
			counts = counts[:topTickers]
		}

		rows := make([][]string, 0, len(counts))
		for _, tc := range counts {
			rows = append(rows, []string{tc.ticker, fmt.Sprintf("%d", tc.count)})
		}
		doc.H2("Top Tickers")
		doc.Table(md.TableSet{Header: []string{"Ticker", "Transactions"}, Rows: rows})
	}

	if len(info.Totals) > 0 {
		currencies := make([]string, 0, len(info.Totals))
		for cur := range info.Totals {
			currencies = append(currencies, cur)
		}
		sort.Strings(currencies)

		rows := make([][]string, 0, len(currencies))
		for _, cur := range currencies {
			rows = append(rows, []string{cur, t212.FormatCurrency(info.Totals[cur], cur)})
		}
		doc.H2("Net Totals by Currency")
		doc.Table(md.TableSet{Header: []string{"Currency", "Net Total"}, Rows: rows})
	}

	return doc.String()
}
