package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first when present; real environment variables
// still win over it, which is godotenv's default behavior.
//
// Recognized variables:
//
//	COLEGIO_API_URL          base URL of the backend API
//	COLEGIO_SESSION_FILE     path of the persisted session file
//	COLEGIO_REQUEST_TIMEOUT  per-request timeout in seconds
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("COLEGIO_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("COLEGIO_SESSION_FILE"); v != "" {
		cfg.SessionFile = v
	}
	if v := os.Getenv("COLEGIO_REQUEST_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
}
