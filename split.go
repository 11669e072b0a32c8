package t212

// Split is one row of the GnuCash multi-split import format, directed at a
// single account. Splits are created by the conversion rules and written once
// to the output file, never mutated.
type Split struct {
	Date        string // transaction timestamp, passed through from the export
	Number      string // transaction ID, possibly empty
	Description string
	Memo        string
	Account     string
	Commodity   string // stock symbol, empty for cash-only splits
	Amount      string // signed share count, fixed 6 decimals, empty for cash-only splits
	Value       string // non-negative magnitude, fixed 2 decimals
}

// OutputHeader is the column header of the GnuCash multi-split CSV format.
var OutputHeader = []string{"Date", "Number", "Description", "Memo", "Account", "Transaction Commodity", "Amount", "Value"}

// record returns the split as a CSV record under OutputHeader.
func (s Split) record() []string {
	return []string{s.Date, s.Number, s.Description, s.Memo, s.Account, s.Commodity, s.Amount, s.Value}
}

// Result is the outcome of converting a single transaction. Errors and
// splits are mutually exclusive: a failed conversion carries its reasons in
// Errors and no splits, a successful one may still carry warnings.
type Result struct {
	Splits   []Split
	Warnings []string
	Errors   []string
}

// Success reports whether the conversion produced usable splits. Warnings do
// not affect success.
func (r Result) Success() bool { return len(r.Errors) == 0 }

func failure(msg string) Result { return Result{Errors: []string{msg}} }
