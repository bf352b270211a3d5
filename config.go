package folio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/phuslu/log"
)

// Config holds the engine settings: the reporting currency everything is
// normalized into, the database location, provider credentials and the fiat
// fallback constants used when a rate fetch fails.
type Config struct {
	ReportingCurrency string             `toml:"reporting_currency" env:"FOLIO_REPORTING_CURRENCY"`
	DBPath            string             `toml:"db_path" env:"FOLIO_DB_PATH"`
	NewsAPIKey        string             `toml:"newsapi_key" env:"FOLIO_NEWSAPI_KEY"`
	LogLevel          string             `toml:"log_level" env:"FOLIO_LOG_LEVEL"`
	FxFallback        map[string]float64 `toml:"fx_fallback"`
}

// DefaultConfig returns the zero-setup configuration: JPY reporting currency,
// a folio.db in the working directory, and a USD fallback rate.
func DefaultConfig() Config {
	return Config{
		ReportingCurrency: "JPY",
		DBPath:            "folio.db",
		LogLevel:          "info",
		FxFallback:        map[string]float64{"USD": 150.0},
	}
}

// LoadConfig builds the configuration in three layers: defaults, then the
// optional TOML file at path, then FOLIO_* environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		content, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// missing config file is fine, defaults apply
		case err != nil:
			return Config{}, fmt.Errorf("read config %q: %w", path, err)
		default:
			if err := toml.Unmarshal(content, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %q: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.FxFallback == nil {
		cfg.FxFallback = map[string]float64{}
	}
	return cfg, nil
}

// ConfigureLogging applies the configured log level to the global logger.
func (c Config) ConfigureLogging() {
	log.DefaultLogger.Level = log.ParseLevel(c.LogLevel)
}
