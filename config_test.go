package folio

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LedgerFile != "transactions.jsonl" {
		t.Errorf("ledger file = %q, want the default", cfg.LedgerFile)
	}
	if cfg.Risk != DefaultRiskWeights {
		t.Errorf("risk weights = %+v, want the defaults", cfg.Risk)
	}
	if cfg.FetchTimeout() != 10*time.Second {
		t.Errorf("fetch timeout = %s, want 10s", cfg.FetchTimeout())
	}
}

func TestLoadConfigFile(t *testing.T) {
	content := `
ledger_file = "family.jsonl"

[risk]
breadth = 40
concentration = 40
sector = 20

[feed]
base_url = "https://feed.example.com"
rate_limit = 2

[fetch]
timeout = "3s"

[sectors]
AAPL = "Technology"
XOM = "Energy"
`
	path := filepath.Join(t.TempDir(), "folio.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LedgerFile != "family.jsonl" {
		t.Errorf("ledger file = %q", cfg.LedgerFile)
	}
	if cfg.Risk != (RiskWeights{Breadth: 40, Concentration: 40, Sector: 20}) {
		t.Errorf("risk weights = %+v", cfg.Risk)
	}
	if cfg.Feed.BaseURL != "https://feed.example.com" || cfg.Feed.RateLimit != 2 {
		t.Errorf("feed = %+v", cfg.Feed)
	}
	if cfg.FetchTimeout() != 3*time.Second {
		t.Errorf("fetch timeout = %s, want 3s", cfg.FetchTimeout())
	}
	if cfg.Sectors["XOM"] != "Energy" {
		t.Errorf("sectors = %v", cfg.Sectors)
	}
}

func TestLoadConfigZeroRiskWeightsFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.toml")
	if err := os.WriteFile(path, []byte(`ledger_file = "x.jsonl"`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Risk != DefaultRiskWeights {
		t.Errorf("risk weights = %+v, want the defaults when unset", cfg.Risk)
	}
}

func TestLoadConfigRejectsBadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.toml")
	if err := os.WriteFile(path, []byte(`ledger_file = `), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("invalid toml must fail to load")
	}
}
