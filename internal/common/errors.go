// Package common defines sentinel errors and small helpers shared by the
// rate source, conversion engine, store and shell. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Rate source errors.
	ErrSourceUnavailable = errors.New("rate source unavailable")

	// Input validation errors.
	ErrMissingField    = errors.New("missing field")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrUnknownCurrency = errors.New("unknown currency")

	// Account errors.
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Persistence errors.
	ErrStore = errors.New("store error")

	// Repository-level lookup miss. Services translate it into one of the
	// errors above and never leak it to the shell.
	ErrNotFound = errors.New("not found")
)
