package t212

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// coreHeaders must all be present in the input file; conversion refuses to
// start without them.
var coreHeaders = []string{colAction, colTime, colISIN, colTicker, colName, colNotes, colID, colTotal, colTotalCurrency}

// tradingHeaders are only needed for buy/sell rows. Their absence is worth a
// warning, not a failure.
var tradingHeaders = []string{colNumShares, colPrice, colPriceCurrency, colExchangeRate, colResultCcy}

// Stats aggregates the per-transaction outcomes of one file conversion.
type Stats struct {
	Processed int // transactions successfully converted and written
	Malformed int // rows skipped before conversion (CSV or field errors)
	Errors    int // conversion errors across skipped transactions
	Warnings  int // warnings across converted transactions
}

// Converter runs the file pipeline: read rows, parse, convert, write splits.
// Rows are handled strictly in file order, one at a time.
type Converter struct {
	cfg *Config
	log zerolog.Logger
}

// NewConverter returns a Converter using cfg. Pass zerolog.Nop() to silence
// the pipeline log.
func NewConverter(cfg *Config, log zerolog.Logger) *Converter {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Converter{cfg: cfg, log: log}
}

// ValidateFile checks that the input file exists and carries the expected
// Trading 212 header. Missing trading-only columns are logged as a warning.
func (c *Converter) ValidateFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open input file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("cannot read header of %q: %w", path, err)
	}

	if missing := missingColumns(header, coreHeaders); len(missing) > 0 {
		return fmt.Errorf("missing required headers: %s", strings.Join(missing, ", "))
	}

	c.log.Debug().Int("columns", len(header)).Str("file", path).Msg("header validated")

	if missing := missingColumns(header, tradingHeaders); len(missing) > 0 {
		c.log.Warn().
			Strs("headers", missing).
			Msg("missing trading headers, buy/sell rows may fail to convert")
	}
	return nil
}

func missingColumns(header, wanted []string) (missing []string) {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	for _, w := range wanted {
		if !present[w] {
			missing = append(missing, w)
		}
	}
	return missing
}

// ReadTransactions streams parsed transactions from a Trading 212 export.
// The first row is taken as the header. Each malformed row is yielded as an
// error naming its row number; iteration continues past it. The sequence is
// bounded by the input and restartable only by reopening the source.
func ReadTransactions(r io.Reader) iter.Seq2[*Transaction, error] {
	return func(yield func(*Transaction, error) bool) {
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1

		header, err := cr.Read()
		if err != nil {
			yield(nil, fmt.Errorf("cannot read header: %w", err))
			return
		}

		for row := 2; ; row++ {
			rec, err := cr.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				if !yield(nil, fmt.Errorf("row %d: %w", row, err)) {
					return
				}
				continue
			}

			record := make(map[string]string, len(header))
			for i, col := range header {
				if i < len(rec) {
					record[col] = rec[i]
				}
			}

			tx, err := ParseTransaction(record)
			if err != nil {
				if !yield(nil, fmt.Errorf("row %d: %w", row, err)) {
					return
				}
				continue
			}
			if !yield(tx, nil) {
				return
			}
		}
	}
}

// ConvertFile converts a whole Trading 212 export into the GnuCash
// multi-split format. Rows that fail to parse and transactions that fail to
// convert are logged and skipped; only structural problems (bad header,
// unreadable input, unwritable output) abort the run. Splits are written in
// input order, each transaction's splits kept together.
func (c *Converter) ConvertFile(inPath, outPath string) (*Stats, error) {
	if err := c.ValidateFile(inPath); err != nil {
		return nil, err
	}

	in, err := os.Open(inPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open input file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("cannot create output file: %w", err)
	}
	defer out.Close()

	stats, err := c.convert(in, out)
	if err != nil {
		return nil, err
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("cannot write output file: %w", err)
	}

	c.log.Info().Int("transactions", stats.Processed).Str("file", outPath).Msg("conversion complete")
	if stats.Malformed > 0 {
		c.log.Warn().Int("rows", stats.Malformed).Msg("skipped malformed rows")
	}
	if stats.Errors > 0 {
		c.log.Warn().Int("errors", stats.Errors).Msg("skipped transactions with conversion errors")
	}
	if stats.Warnings > 0 {
		c.log.Info().Int("warnings", stats.Warnings).Msg("conversion produced warnings")
	}
	return stats, nil
}

// convert is the streaming loop behind ConvertFile, split out so tests can
// drive it with in-memory readers and writers.
func (c *Converter) convert(in io.Reader, out io.Writer) (*Stats, error) {
	w := csv.NewWriter(out)
	if err := w.Write(OutputHeader); err != nil {
		return nil, fmt.Errorf("cannot write output header: %w", err)
	}

	stats := &Stats{}
	for tx, err := range ReadTransactions(in) {
		if err != nil {
			stats.Malformed++
			c.log.Error().Err(err).Msg("skipping malformed row")
			continue
		}

		result := Convert(tx, c.cfg)
		if !result.Success() {
			stats.Errors += len(result.Errors)
			for _, msg := range result.Errors {
				c.log.Error().Str("transaction", tx.ID).Msg(msg)
			}
			continue
		}

		stats.Warnings += len(result.Warnings)
		for _, msg := range result.Warnings {
			c.log.Warn().Str("transaction", tx.ID).Msg(msg)
		}

		for _, split := range result.Splits {
			if err := w.Write(split.record()); err != nil {
				return nil, fmt.Errorf("cannot write split: %w", err)
			}
		}
		stats.Processed++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("cannot write output: %w", err)
	}
	return stats, nil
}
