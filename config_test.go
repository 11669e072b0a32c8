package t212

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DepositAccount != "Assets:Trading 212 Deposits" {
		t.Errorf("DepositAccount = %q", cfg.DepositAccount)
	}
	if cfg.InterestAccount != "Income:Trading 212 Interest" {
		t.Errorf("InterestAccount = %q", cfg.InterestAccount)
	}
	if cfg.ExpenseAccounts.ConversionFee != "Expenses:Currency Conversion Fees" {
		t.Errorf("ConversionFee = %q", cfg.ExpenseAccounts.ConversionFee)
	}
	if got := cfg.GnuCashTicker("VOD"); got != "VOD.L" {
		t.Errorf("GnuCashTicker(VOD) = %q, want \"VOD.L\"", got)
	}
}

func TestGnuCashTickerFallback(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.GnuCashTicker("UNKNOWN"); got != "UNKNOWN" {
		t.Errorf("unmapped ticker should pass through, got %q", got)
	}
	if cfg.HasTicker("UNKNOWN") {
		t.Error("HasTicker(UNKNOWN) = true")
	}
	if !cfg.HasTicker("MSFT") {
		t.Error("HasTicker(MSFT) = false")
	}
}

func TestTaxAccount(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		kind TaxKind
		want string
	}{
		{TaxFrench, cfg.ExpenseAccounts.FrenchTax},
		{TaxStampDuty, cfg.ExpenseAccounts.StampDutyTax},
		// Unknown kinds fall back to the French tax account.
		{TaxKind("other"), cfg.ExpenseAccounts.FrenchTax},
		{TaxKind(""), cfg.ExpenseAccounts.FrenchTax},
	}
	for _, c := range cases {
		if got := cfg.TaxAccount(c.kind); got != c.want {
			t.Errorf("TaxAccount(%q) = %q, want %q", c.kind, got, c.want)
		}
	}
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickerMap["TSLA"] = "TSLA"
	cfg.DepositAccount = "Assets:Broker:Cash"

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() returned an unexpected error: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() returned an unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg, loaded) {
		t.Errorf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", cfg, loaded)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ticker_map: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() should fail hard on malformed YAML")
	}
}

func TestLoadConfigAbsentUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() on an absent file should fall back to defaults, got: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "deposit_account: Assets:Elsewhere\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() returned an unexpected error: %v", err)
	}
	if cfg.DepositAccount != "Assets:Elsewhere" {
		t.Errorf("DepositAccount = %q", cfg.DepositAccount)
	}
	// Unset sections keep their defaults.
	if cfg.InterestAccount != "Income:Trading 212 Interest" {
		t.Errorf("InterestAccount = %q, want the default", cfg.InterestAccount)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("TRADING212_TICKER_NVDA", "NVDA")
	t.Setenv("TRADING212_DEPOSIT_ACCOUNT", "Assets:Env:Cash")
	t.Setenv("TRADING212_STAMP_DUTY_ACCOUNT", "Expenses:Env:Stamp")

	cfg := DefaultConfig().FromEnv()

	if got := cfg.TickerMap["NVDA"]; got != "NVDA" {
		t.Errorf("TickerMap[NVDA] = %q", got)
	}
	if cfg.DepositAccount != "Assets:Env:Cash" {
		t.Errorf("DepositAccount = %q", cfg.DepositAccount)
	}
	if cfg.ExpenseAccounts.StampDutyTax != "Expenses:Env:Stamp" {
		t.Errorf("StampDutyTax = %q", cfg.ExpenseAccounts.StampDutyTax)
	}
	// Untouched values keep their defaults.
	if cfg.InterestAccount != "Income:Trading 212 Interest" {
		t.Errorf("InterestAccount = %q", cfg.InterestAccount)
	}
}

func TestWriteSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.yaml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("WriteSample() returned an unexpected error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(content), "# Trading 212 to GnuCash") {
		t.Error("sample file should start with the commented header")
	}

	// The sample must load back as valid configuration.
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if _, ok := cfg.TickerMap["TSLA"]; !ok {
		t.Error("sample config should include the extra example tickers")
	}
}
