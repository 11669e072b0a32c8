package t212

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Action is a typed string identifying the kind of a Trading 212 transaction.
type Action string

// Actions found in Trading 212 CSV exports.
const (
	MarketBuy      Action = "Market buy"
	MarketSell     Action = "Market sell"
	LimitBuy       Action = "Limit buy"
	LimitSell      Action = "Limit sell"
	Deposit        Action = "Deposit"
	InterestOnCash Action = "Interest on cash"
)

// SupportedActions lists every action this package knows how to convert.
var SupportedActions = []Action{MarketBuy, MarketSell, LimitBuy, LimitSell, Deposit, InterestOnCash}

// ParseAction validates an action label from the export. Matching is
// case-sensitive, like the export itself.
func ParseAction(s string) (Action, error) {
	for _, a := range SupportedActions {
		if s == string(a) {
			return a, nil
		}
	}
	return "", fmt.Errorf("unsupported action type: %q (supported: %s)", s, joinActions())
}

func joinActions() string {
	labels := make([]string, len(SupportedActions))
	for i, a := range SupportedActions {
		labels[i] = string(a)
	}
	return strings.Join(labels, ", ")
}

// TaxKind identifies which transaction tax was levied on a trade.
type TaxKind string

// Tax kinds that Trading 212 reports, in dedicated export columns.
const (
	TaxFrench    TaxKind = "french"
	TaxStampDuty TaxKind = "stamp_duty"
)

// Column names of the Trading 212 CSV export.
const (
	colAction        = "Action"
	colTime          = "Time"
	colISIN          = "ISIN"
	colTicker        = "Ticker"
	colName          = "Name"
	colNotes         = "Notes"
	colID            = "ID"
	colNumShares     = "No. of shares"
	colPrice         = "Price / share"
	colPriceCurrency = "Currency (Price / share)"
	colExchangeRate  = "Exchange rate"
	colResultCcy     = "Currency (Result)"
	colTotal         = "Total"
	colTotalCurrency = "Currency (Total)"
	colFee           = "Currency conversion fee"
	colFeeCurrency   = "Currency (Currency conversion fee)"
	colFrenchTax     = "French transaction tax"
	colFrenchTaxCcy  = "Currency (French transaction tax)"
	colStampDuty     = "Stamp duty reserve tax"
	colStampDutyCcy  = "Currency (Stamp duty reserve tax)"
)

// FieldError reports a source field whose value could not be parsed.
type FieldError struct {
	Field string // column name in the export
	Value string // offending raw value
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: invalid value %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Transaction is one validated row of a Trading 212 CSV export.
//
// Optional decimal fields are nil when the export left the cell empty; an
// empty cell is not zero. String fields are trimmed, with the empty string
// standing for "absent". The Time field is opaque and passed through to the
// output unmodified. A Transaction is built once per input row and never
// mutated afterwards.
type Transaction struct {
	Action Action
	Time   string
	ISIN   string
	Ticker string
	Name   string
	Notes  string
	ID     string

	NumShares     *decimal.Decimal
	PricePerShare *decimal.Decimal
	PriceCurrency string
	ExchangeRate  *decimal.Decimal
	ResultCcy     string

	Total         decimal.Decimal
	TotalCurrency string

	ConversionFee    *decimal.Decimal
	ConversionFeeCcy string

	FrenchTax    *decimal.Decimal
	FrenchTaxCcy string

	StampDuty    *decimal.Decimal
	StampDutyCcy string
}

// ParseTransaction builds a Transaction from a record keyed by the export's
// column names. Missing keys and empty values are both treated as absent.
// The returned error is a *FieldError naming the offending column.
func ParseTransaction(record map[string]string) (*Transaction, error) {
	action, err := ParseAction(strings.TrimSpace(record[colAction]))
	if err != nil {
		return nil, &FieldError{Field: colAction, Value: record[colAction], Err: err}
	}

	tx := &Transaction{
		Action: action,
		Time:   strings.TrimSpace(record[colTime]),
		ISIN:   strings.TrimSpace(record[colISIN]),
		Ticker: strings.TrimSpace(record[colTicker]),
		Name:   strings.TrimSpace(record[colName]),
		Notes:  strings.TrimSpace(record[colNotes]),
		ID:     strings.TrimSpace(record[colID]),

		PriceCurrency:    strings.TrimSpace(record[colPriceCurrency]),
		ResultCcy:        strings.TrimSpace(record[colResultCcy]),
		TotalCurrency:    strings.TrimSpace(record[colTotalCurrency]),
		ConversionFeeCcy: strings.TrimSpace(record[colFeeCurrency]),
		FrenchTaxCcy:     strings.TrimSpace(record[colFrenchTaxCcy]),
		StampDutyCcy:     strings.TrimSpace(record[colStampDutyCcy]),
	}

	if tx.NumShares, err = optDecimal(record, colNumShares); err != nil {
		return nil, err
	}
	if tx.PricePerShare, err = optDecimal(record, colPrice); err != nil {
		return nil, err
	}
	if tx.ExchangeRate, err = optDecimal(record, colExchangeRate); err != nil {
		return nil, err
	}
	if tx.ConversionFee, err = optDecimal(record, colFee); err != nil {
		return nil, err
	}
	if tx.FrenchTax, err = optDecimal(record, colFrenchTax); err != nil {
		return nil, err
	}
	if tx.StampDuty, err = optDecimal(record, colStampDuty); err != nil {
		return nil, err
	}

	total, err := optDecimal(record, colTotal)
	if err != nil {
		return nil, err
	}
	if total == nil {
		return nil, &FieldError{Field: colTotal, Value: "", Err: fmt.Errorf("value is required")}
	}
	tx.Total = *total

	if tx.TotalCurrency == "" {
		return nil, &FieldError{Field: colTotalCurrency, Value: "", Err: fmt.Errorf("value is required")}
	}

	return tx, nil
}

// optDecimal parses an optional decimal column. An absent key or empty cell
// yields nil, any other non-numeric value is a *FieldError.
func optDecimal(record map[string]string, col string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(record[col])
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, &FieldError{Field: col, Value: raw, Err: fmt.Errorf("invalid decimal value")}
	}
	return &d, nil
}

// IsTrading reports whether the transaction is a buy or sell order.
func (t *Transaction) IsTrading() bool {
	return t.IsBuy() || t.IsSell()
}

// IsBuy reports whether the transaction is a buy order.
func (t *Transaction) IsBuy() bool {
	return t.Action == MarketBuy || t.Action == LimitBuy
}

// IsSell reports whether the transaction is a sell order.
func (t *Transaction) IsSell() bool {
	return t.Action == MarketSell || t.Action == LimitSell
}

// TransactionTax returns the non-zero tax levied on the transaction and its
// kind, or nil when no tax applies. Well-formed exports set at most one of
// the two tax columns; should both be set the French tax wins.
func (t *Transaction) TransactionTax() (*decimal.Decimal, TaxKind) {
	if t.FrenchTax != nil && !t.FrenchTax.IsZero() {
		return t.FrenchTax, TaxFrench
	}
	if t.StampDuty != nil && !t.StampDuty.IsZero() {
		return t.StampDuty, TaxStampDuty
	}
	return nil, ""
}
