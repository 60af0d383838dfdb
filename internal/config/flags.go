package config

import (
	"flag"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophfx/internal/flagx"
)

var knownFlags = []string{"-u", "-d", "-z", "-t", "-k", "-l"}

// parseFlags overlays cfg with the command-line flags it knows about.
// Other arguments (such as -c) are filtered out with flagx.FilterArgs.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, knownFlags)

	fs := flag.NewFlagSet("gophfx", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.RatesURL, "u", cfg.RatesURL, "rates endpoint URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the history database")
	fs.StringVar(&cfg.Timezone, "z", cfg.Timezone, "timezone for conversion timestamps")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "rates request timeout (in seconds)")
	currencies := fs.String("k", strings.Join(cfg.Currencies, ","), "comma-separated currency allow-list")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	seen := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })

	if seen["t"] {
		cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	}
	if seen["k"] {
		cfg.Currencies = splitList(*currencies)
	}
	return nil
}
