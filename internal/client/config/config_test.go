package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	os.Args = append([]string{"cli"}, args...)
	t.Cleanup(func() { os.Args = oldArgs })
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://localhost:5080/api", cfg.BaseURL)
	require.Equal(t, "session.json", cfg.SessionFile)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, 32, cfg.VentanaRenovacionDias)
	require.Equal(t, float64(1), cfg.RecordatorioRPS)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("COLEGIO_API_URL", "https://api.colegio.example/api")
	t.Setenv("COLEGIO_REQUEST_TIMEOUT", "30")

	cfg := LoadConfig()

	require.Equal(t, "https://api.colegio.example/api", cfg.BaseURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsWin(t *testing.T) {
	resetArgs(t, "-a", "http://flag-host/api", "-w", "45")
	t.Setenv("COLEGIO_API_URL", "http://env-host/api")

	cfg := LoadConfig()

	require.Equal(t, "http://flag-host/api", cfg.BaseURL)
	require.Equal(t, 45, cfg.VentanaRenovacionDias)
}

func TestParseJson(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")
	err := os.WriteFile(file, []byte(`{
		"base_url": "http://json-host/api",
		"request_timeout_seconds": 7,
		"recordatorio_rps": 2.5
	}`), 0o600)
	require.NoError(t, err)

	resetArgs(t, "-c", file)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://json-host/api", cfg.BaseURL)
	require.Equal(t, 7*time.Second, cfg.RequestTimeout)
	require.Equal(t, 2.5, cfg.RecordatorioRPS)
	// untouched fields keep defaults
	require.Equal(t, 32, cfg.VentanaRenovacionDias)
}
