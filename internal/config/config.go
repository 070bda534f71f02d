// Package config loads runtime settings for the Memoria CLI.
package config

// Config holds runtime settings.
//
// Fields:
//   - DatabasePath: path of the local SQLite database file.
//   - MediaDir: directory imported images are copied into.
//   - LogLevel: minimum log level (debug, info, warn, error).
type Config struct {
	DatabasePath string
	MediaDir     string
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "memoria.db"
	c.MediaDir = "memoria-media"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if a config file is given) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
