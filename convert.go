package t212

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Convert maps one validated transaction to the ledger splits it produces.
//
// It is a pure function: deterministic, no I/O, no mutation of its inputs.
// All failure is reported through the Result's error list; Convert never
// panics past its own boundary.
func Convert(tx *Transaction, cfg *Config) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = failure(fmt.Sprintf("Error converting transaction: %v", r))
		}
	}()

	switch {
	case tx.Action == Deposit:
		return convertDeposit(tx, cfg)
	case tx.Action == InterestOnCash:
		return convertInterest(tx, cfg)
	case tx.IsTrading():
		return convertTrading(tx, cfg)
	default:
		// Unreachable through ParseTransaction, which rejects unknown
		// actions. Kept for transactions built by hand.
		return failure(fmt.Sprintf("Unsupported action type: %s", tx.Action))
	}
}

func convertDeposit(tx *Transaction, cfg *Config) Result {
	description := "Deposit from Trading 212"
	if tx.Notes != "" {
		description += " - " + tx.Notes
	}

	memo := "Trading 212 deposit"
	if tx.ID != "" {
		memo = "Trading 212 deposit - ID: " + tx.ID
	}

	return Result{Splits: []Split{{
		Date:        tx.Time,
		Number:      tx.ID,
		Description: description,
		Memo:        memo,
		Account:     cfg.DepositAccount,
		Value:       tx.Total.Abs().StringFixed(2),
	}}}
}

func convertInterest(tx *Transaction, cfg *Config) Result {
	description := "Interest on cash from Trading 212"
	if tx.Notes != "" {
		description += " - " + tx.Notes
	}

	memo := "Trading 212 interest payment"
	if tx.ID != "" {
		memo = "Trading 212 interest - ID: " + tx.ID
	}

	return Result{Splits: []Split{{
		Date:        tx.Time,
		Number:      tx.ID,
		Description: description,
		Memo:        memo,
		Account:     cfg.InterestAccount,
		Value:       tx.Total.Abs().StringFixed(2),
	}}}
}

func convertTrading(tx *Transaction, cfg *Config) Result {
	if tx.NumShares == nil || tx.PricePerShare == nil || tx.Ticker == "" {
		return failure("Missing required trading data (shares, price, or ticker)")
	}

	var warnings []string

	if price := gbpPrice(tx); price == nil {
		// gbpPrice currently always resolves through its pass-through tier;
		// the warning survives for a future strict mode.
		warnings = append(warnings, "Could not calculate GBP price, using original price")
	}

	commodity := cfg.GnuCashTicker(tx.Ticker)
	if !cfg.HasTicker(tx.Ticker) {
		warnings = append(warnings, fmt.Sprintf("No ticker mapping found for %s", tx.Ticker))
	}

	fee := decimal.Zero
	if tx.ConversionFee != nil {
		fee = *tx.ConversionFee
	}
	taxAmount, taxKind := tx.TransactionTax()
	tax := decimal.Zero
	if taxAmount != nil {
		tax = *taxAmount
	}

	// The principal split carries the total net of fee and tax, so that the
	// three splits together account for the whole cash movement.
	net := tx.Total.Sub(fee).Sub(tax)

	display := tx.Name
	if display == "" {
		display = tx.Ticker
	}
	description := fmt.Sprintf("%s %s shares of %s (%s)", tx.Action, tx.NumShares.StringFixed(6), display, tx.Ticker)

	splits := []Split{shareSplit(tx, cfg, description, commodity, net)}

	if !fee.IsZero() {
		splits = append(splits, Split{
			Date:        tx.Time,
			Number:      tx.ID,
			Description: description,
			Memo:        fmt.Sprintf("Currency conversion fee for %s", tx.Ticker),
			Account:     cfg.ExpenseAccounts.ConversionFee,
			Value:       fee.Abs().StringFixed(2),
		})
	}

	if !tax.IsZero() {
		var memo string
		switch taxKind {
		case TaxFrench:
			memo = fmt.Sprintf("French transaction tax for %s", tx.Ticker)
		case TaxStampDuty:
			memo = fmt.Sprintf("Stamp duty reserve tax for %s", tx.Ticker)
		default:
			memo = fmt.Sprintf("Transaction tax for %s", tx.Ticker)
		}
		splits = append(splits, Split{
			Date:        tx.Time,
			Number:      tx.ID,
			Description: description,
			Memo:        memo,
			Account:     cfg.TaxAccount(taxKind),
			Value:       tax.Abs().StringFixed(2),
		})
	}

	return Result{Splits: splits, Warnings: warnings}
}

// shareSplit builds the principal split carrying the share movement.
func shareSplit(tx *Transaction, cfg *Config, description, commodity string, net decimal.Decimal) Split {
	var memo, amount string
	if tx.IsBuy() {
		memo = fmt.Sprintf("Purchase of %s shares @ %s", tx.NumShares.StringFixed(6), commodity)
		amount = tx.NumShares.StringFixed(6)
	} else {
		memo = fmt.Sprintf("Sale of %s shares @ %s", tx.NumShares.StringFixed(6), commodity)
		amount = tx.NumShares.Neg().StringFixed(6)
	}

	account := tx.Name
	if account == "" {
		account = tx.Ticker
	}
	if account == "" {
		account = "Unknown"
	}

	return Split{
		Date:        tx.Time,
		Number:      tx.ID,
		Description: description,
		Memo:        memo,
		Account:     account,
		Commodity:   commodity,
		Amount:      amount,
		Value:       net.Abs().StringFixed(2),
	}
}

// gbpPrice derives a GBP price per share, trying in order:
//  1. the exchange rate quoted on the row, when the price currency is not
//     already GBP,
//  2. the ratio of the GBP total to the share count,
//  3. the quoted price unchanged.
//
// The last tier makes the function total, so callers only see nil if a
// stricter tier set is introduced.
func gbpPrice(tx *Transaction) *decimal.Decimal {
	if tx.PriceCurrency != "" && tx.PriceCurrency != "GBP" &&
		tx.ExchangeRate != nil && !tx.ExchangeRate.IsZero() {
		p := tx.PricePerShare.Div(*tx.ExchangeRate)
		return &p
	}

	if tx.TotalCurrency == "GBP" && tx.NumShares != nil && !tx.NumShares.IsZero() {
		p := tx.Total.Abs().Div(*tx.NumShares)
		return &p
	}

	return tx.PricePerShare
}
