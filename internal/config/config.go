package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophfx/internal/rates"
)

const (
	DefaultDatabasePath   = "conversion_history.db"
	DefaultTimezone       = "Asia/Kolkata"
	DefaultRequestTimeout = 10 * time.Second
	DefaultLogLevel       = "info"
)

// Config holds runtime settings for the GophFX shell.
//
// An empty Currencies list means every currency the rate source returns.
type Config struct {
	RatesURL       string
	DatabasePath   string
	Timezone       string
	RequestTimeout time.Duration
	Currencies     []string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.RatesURL = rates.DefaultURL
	c.DatabasePath = DefaultDatabasePath
	c.Timezone = DefaultTimezone
	c.RequestTimeout = DefaultRequestTimeout
	c.Currencies = nil
	c.LogLevel = DefaultLogLevel
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Validate reports settings the shell cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.RatesURL) == "" {
		return fmt.Errorf("rates url is empty")
	}
	if strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("database path is empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// LoadConfig builds a Config from defaults, the JSON file named by -c/-config,
// the environment (with .env) and finally the flags in args. args excludes
// the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, lookupEnv); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// splitList parses "usd, EUR,,inr" into ["USD" "EUR" "INR"].
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
