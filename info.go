package t212

import (
	"fmt"
	"os"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FileInfo summarizes the contents of a Trading 212 export without
// converting it.
type FileInfo struct {
	Transactions int
	Malformed    int
	Actions      map[Action]int
	Tickers      map[string]int
	Totals       map[string]decimal.Decimal // net Total per currency
	FirstTime    string                     // earliest timestamp seen
	LastTime     string                     // latest timestamp seen
}

// Scan reads the whole file and gathers summary statistics. Malformed rows
// are counted and logged, as in conversion.
func (c *Converter) Scan(path string) (*FileInfo, error) {
	if err := c.ValidateFile(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open input file: %w", err)
	}
	defer f.Close()

	info := &FileInfo{
		Actions: make(map[Action]int),
		Tickers: make(map[string]int),
		Totals:  make(map[string]decimal.Decimal),
	}

	for tx, err := range ReadTransactions(f) {
		if err != nil {
			info.Malformed++
			c.log.Error().Err(err).Msg("skipping malformed row")
			continue
		}

		info.Transactions++
		info.Actions[tx.Action]++
		if tx.Ticker != "" {
			info.Tickers[tx.Ticker]++
		}
		info.Totals[tx.TotalCurrency] = info.Totals[tx.TotalCurrency].Add(tx.Total)

		// Timestamps in the export sort lexicographically.
		if info.FirstTime == "" || tx.Time < info.FirstTime {
			info.FirstTime = tx.Time
		}
		if tx.Time > info.LastTime {
			info.LastTime = tx.Time
		}
	}

	return info, nil
}

// FormatCurrency renders an amount using the currency's display metadata
// (symbol, decimal places). Unknown codes fall back to a plain 2-decimal
// rendering with the code appended.
func FormatCurrency(amount decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return amount.StringFixed(2) + " " + code
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, code).Display()
}
