// Package config loads runtime configuration for the GophFX shell.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. A .env file in the working directory and the process environment
//     (GOPHFX_* variables). Variables already set in the environment win
//     over the .env file.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-u string   rates endpoint URL
//	-d string   path of the SQLite history database
//	-z string   IANA timezone used for conversion timestamps
//	-t int      rates request timeout (seconds)
//	-k string   comma-separated currency allow-list, e.g. USD,EUR,INR
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
//	{
//	  "rates_url": "https://api.exchangerate-api.com/v4/latest/USD",
//	  "database_path": "conversion_history.db",
//	  "timezone": "Asia/Kolkata",
//	  "request_timeout": "10s",
//	  "currencies": ["USD", "EUR", "INR"],
//	  "log_level": "info"
//	}
//
// # Environment
//
//	GOPHFX_RATES_URL, GOPHFX_DATABASE_PATH, GOPHFX_TIMEZONE,
//	GOPHFX_REQUEST_TIMEOUT (Go duration), GOPHFX_CURRENCIES (comma-separated),
//	GOPHFX_LOG_LEVEL
package config
