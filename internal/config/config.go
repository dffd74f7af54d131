// Package config handles configuration for the marketplace CLI, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

// Config holds runtime settings for the Mercadito CLI.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local SQLite database holding the
//     key-value store (accounts directory and session record).
//   - LogLevel: minimum slog level (debug, info, warn, error).
//   - SeedCatalog: whether the catalog starts with the demo listings.
type Config struct {
	DatabaseDSN string `env:"MERCADITO_DATABASE_DSN"`
	LogLevel    string `env:"MERCADITO_LOG_LEVEL"`
	SeedCatalog bool   `env:"MERCADITO_SEED_CATALOG"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "mercadito.db"
	c.LogLevel = "info"
	c.SeedCatalog = true
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
