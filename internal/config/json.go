package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/gophfx/internal/flagx"
	"github.com/dmitrijs2005/gophfx/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding Config field untouched.
type JsonConfig struct {
	RatesURL       *string         `json:"rates_url"`
	DatabasePath   *string         `json:"database_path"`
	Timezone       *string         `json:"timezone"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	Currencies     []string        `json:"currencies"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config in args.
// Without either flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if jc.RatesURL != nil {
		cfg.RatesURL = *jc.RatesURL
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.Timezone != nil {
		cfg.Timezone = *jc.Timezone
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.Currencies != nil {
		cfg.Currencies = splitList(strings.Join(jc.Currencies, ","))
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
