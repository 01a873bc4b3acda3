// Package config loads runtime settings for the Colegio CLI.
//
// Sources are layered, later ones winning: built-in defaults, then environment
// variables (optionally seeded from a .env file), then a JSON config file
// given via -c/-config, then command-line flags.
package config

import "time"

// Config holds runtime settings for the Colegio CLI.
//
// Fields:
//   - BaseURL: root URL of the backend REST API (no trailing slash).
//   - SessionFile: path of the JSON file holding the persisted session.
//   - RequestTimeout: per-request HTTP timeout.
//   - VentanaRenovacionDias: how many days before expiry the renew action
//     becomes available.
//   - RecordatorioRPS: max reminder dispatches per second (admin side).
type Config struct {
	BaseURL               string
	SessionFile           string
	RequestTimeout        time.Duration
	VentanaRenovacionDias int
	RecordatorioRPS       float64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:5080/api"
	c.SessionFile = "session.json"
	c.RequestTimeout = 15 * time.Second
	c.VentanaRenovacionDias = 32
	c.RecordatorioRPS = 1
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
