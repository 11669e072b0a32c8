package t212

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ExpenseAccounts names the GnuCash accounts receiving fee and tax splits.
type ExpenseAccounts struct {
	ConversionFee string `yaml:"conversion_fee"`
	FrenchTax     string `yaml:"french_tax"`
	StampDutyTax  string `yaml:"stamp_duty_tax"`
}

// Config holds the ticker remapping table and the destination account names.
// It is read once at startup and treated as immutable for the rest of the
// run; mutate only through the Load/FromEnv constructors.
type Config struct {
	// TickerMap maps Trading 212 ticker symbols to GnuCash stock symbols,
	// which may carry exchange suffixes (e.g. VOD -> VOD.L).
	TickerMap map[string]string `yaml:"ticker_map"`

	ExpenseAccounts ExpenseAccounts `yaml:"expense_accounts"`

	// DepositAccount receives deposit splits.
	DepositAccount string `yaml:"deposit_account"`

	// InterestAccount receives interest-on-cash splits.
	InterestAccount string `yaml:"interest_account"`
}

// DefaultConfig returns the built-in configuration used when no config file
// is found.
func DefaultConfig() *Config {
	return &Config{
		TickerMap: map[string]string{
			"ACME":  "ACME.L",
			"VOD":   "VOD.L",
			"MSFT":  "MSFT",
			"AAPL":  "AAPL",
			"GOOGL": "GOOGL",
		},
		ExpenseAccounts: ExpenseAccounts{
			ConversionFee: "Expenses:Currency Conversion Fees",
			FrenchTax:     "Expenses:French Transaction Tax",
			StampDutyTax:  "Expenses:Stamp Duty Reserve Tax",
		},
		DepositAccount:  "Assets:Trading 212 Deposits",
		InterestAccount: "Income:Trading 212 Interest",
	}
}

// searchPaths returns the conventional config file locations, most specific
// first.
func searchPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return []string{
		filepath.Join(home, ".config", "trading212-gnucash", "config.yaml"),
		filepath.Join(home, ".config", "trading212-gnucash", "config.yml"),
		"trading212_config.yaml",
		"trading212_config.yml",
		filepath.Join(home, ".trading212_config.yaml"), // legacy location
	}
}

// LoadConfig loads the configuration from path. When path is empty the
// conventional locations are searched in order; if none exists the defaults
// are returned. A file that exists but cannot be parsed is a hard error,
// never silently ignored.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		for _, p := range searchPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("cannot read config file %q: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config file %q: %w", path, err)
	}
	return cfg, nil
}

// FromEnv overlays the configuration with TRADING212_* environment
// variables: TRADING212_TICKER_<SYMBOL> entries extend the ticker map, and
// TRADING212_DEPOSIT_ACCOUNT, TRADING212_INTEREST_ACCOUNT,
// TRADING212_CONVERSION_FEE_ACCOUNT, TRADING212_FRENCH_TAX_ACCOUNT and
// TRADING212_STAMP_DUTY_ACCOUNT override the account names.
func (c *Config) FromEnv() *Config {
	const tickerPrefix = "TRADING212_TICKER_"
	for _, entry := range os.Environ() {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(key, tickerPrefix) {
			continue
		}
		if c.TickerMap == nil {
			c.TickerMap = make(map[string]string)
		}
		c.TickerMap[strings.TrimPrefix(key, tickerPrefix)] = value
	}

	if v := os.Getenv("TRADING212_DEPOSIT_ACCOUNT"); v != "" {
		c.DepositAccount = v
	}
	if v := os.Getenv("TRADING212_INTEREST_ACCOUNT"); v != "" {
		c.InterestAccount = v
	}
	if v := os.Getenv("TRADING212_CONVERSION_FEE_ACCOUNT"); v != "" {
		c.ExpenseAccounts.ConversionFee = v
	}
	if v := os.Getenv("TRADING212_FRENCH_TAX_ACCOUNT"); v != "" {
		c.ExpenseAccounts.FrenchTax = v
	}
	if v := os.Getenv("TRADING212_STAMP_DUTY_ACCOUNT"); v != "" {
		c.ExpenseAccounts.StampDutyTax = v
	}
	return c
}

// Save writes the configuration to path in YAML, creating parent directories
// as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("cannot write config file %q: %w", path, err)
	}
	return nil
}

const sampleHeader = `# Trading 212 to GnuCash Multi-Split Converter Configuration
# Edit this file to customize your ticker symbols and account mappings

`

const sampleFooter = `#
# Configuration Notes:
# - ticker_map: Maps Trading 212 symbols to GnuCash stock symbols (may include exchange suffixes)
# - expense_accounts: GnuCash accounts for fees and taxes
# - deposit_account: Account for Trading 212 deposits
# - interest_account: Account for interest payments
#
# The source account (bank/cash account) is configured during GnuCash import.
`

// WriteSample writes a commented sample configuration to path, seeded with
// the defaults plus a few extra example ticker mappings.
func WriteSample(path string) error {
	cfg := DefaultConfig()
	maps.Copy(cfg.TickerMap, map[string]string{
		"TSLA": "TSLA",
		"AMZN": "AMZN",
		"NFLX": "NFLX",
		"META": "META",
		"NVDA": "NVDA",
		"FAKE": "FAKE.L", // example made-up company
	})

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal sample config: %w", err)
	}
	content := sampleHeader + string(data) + sampleFooter
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("cannot write sample config %q: %w", path, err)
	}
	return nil
}

// GnuCashTicker returns the GnuCash stock symbol for a Trading 212 ticker,
// falling back to the ticker itself when no mapping exists.
func (c *Config) GnuCashTicker(ticker string) string {
	if mapped, ok := c.TickerMap[ticker]; ok {
		return mapped
	}
	return ticker
}

// HasTicker reports whether the ticker map has an entry for ticker.
func (c *Config) HasTicker(ticker string) bool {
	_, ok := c.TickerMap[ticker]
	return ok
}

// TaxAccount returns the expense account for a tax kind. Unknown kinds fall
// back to the French tax account.
func (c *Config) TaxAccount(kind TaxKind) string {
	switch kind {
	case TaxStampDuty:
		return c.ExpenseAccounts.StampDutyTax
	default:
		return c.ExpenseAccounts.FrenchTax
	}
}
