package folio

import (
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the settings of the folio CLI and the bundled providers.
// The computation engine itself takes everything as explicit arguments;
// configuration only shapes how callers wire it.
type Config struct {
	LedgerFile string            `toml:"ledger_file"`
	Risk       RiskWeights       `toml:"risk"`
	Feed       FeedConfig        `toml:"feed"`
	Fetch      FetchConfig       `toml:"fetch"`
	Sectors    map[string]string `toml:"sectors"` // optional symbol -> sector overrides
}

// FeedConfig configures the bundled HTTP chart feed.
type FeedConfig struct {
	BaseURL   string `toml:"base_url"`
	APIKey    string `toml:"api_key"`
	RateLimit int    `toml:"rate_limit"` // requests per second
}

// FetchConfig bounds the concurrent quote/series fan-out.
type FetchConfig struct {
	Timeout string `toml:"timeout"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		LedgerFile: "transactions.jsonl",
		Risk:       DefaultRiskWeights,
		Feed: FeedConfig{
			BaseURL:   "https://query1.finance.yahoo.com",
			RateLimit: 4,
		},
		Fetch: FetchConfig{Timeout: "10s"},
	}
}

// FetchTimeout returns the configured batch deadline, or 10s when unset or
// invalid.
func (c *Config) FetchTimeout() time.Duration {
	d, err := time.ParseDuration(c.Fetch.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// LoadConfig reads a TOML configuration file, filling the blanks with
// defaults. A missing file is not an error: defaults are returned.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config %s: %w", path, err)
	}
	if cfg.Risk == (RiskWeights{}) {
		cfg.Risk = DefaultRiskWeights
	}
	return cfg, nil
}
