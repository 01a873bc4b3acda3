package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/colegioprofesionales/colegio-cli/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// given in seconds so config files stay plain.
type JsonConfig struct {
	BaseURL               string  `json:"base_url"`
	SessionFile           string  `json:"session_file"`
	RequestTimeoutSeconds int     `json:"request_timeout_seconds"`
	VentanaRenovacionDias int     `json:"ventana_renovacion_dias"`
	RecordatorioRPS       float64 `json:"recordatorio_rps"`
}

// parseJson overlays Config with values loaded from the JSON file given via
// the -c/-config flags. Missing file path means no JSON layer. Zero-valued
// fields in the file leave the current Config values untouched.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
	if jc.VentanaRenovacionDias > 0 {
		cfg.VentanaRenovacionDias = jc.VentanaRenovacionDias
	}
	if jc.RecordatorioRPS > 0 {
		cfg.RecordatorioRPS = jc.RecordatorioRPS
	}
}
