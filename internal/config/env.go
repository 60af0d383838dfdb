package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "GOPHFX_"

var lookupEnv = os.LookupEnv

// loadDotEnv exports the variables of the .env file at path into the process
// environment. Variables that are already set keep their values. A missing
// file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// parseEnv overlays cfg with GOPHFX_* variables found by lookup.
func parseEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(envPrefix + "RATES_URL"); ok {
		cfg.RatesURL = v
	}
	if v, ok := lookup(envPrefix + "DATABASE_PATH"); ok {
		cfg.DatabasePath = v
	}
	if v, ok := lookup(envPrefix + "TIMEZONE"); ok {
		cfg.Timezone = v
	}
	if v, ok := lookup(envPrefix + "REQUEST_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %sREQUEST_TIMEOUT: %w", envPrefix, err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := lookup(envPrefix + "CURRENCIES"); ok {
		cfg.Currencies = splitList(v)
	}
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	return nil
}
