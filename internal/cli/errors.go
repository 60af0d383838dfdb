package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophfx/internal/common"
)

// formatError renders err as a "<title>: <message>" line for the user.
func formatError(err error) string {
	title, msg := describeError(err)
	return fmt.Sprintf("%s: %s", title, msg)
}

func describeError(err error) (title, msg string) {
	switch {
	case errors.Is(err, common.ErrMissingField):
		return "Input Error", "Please fill in all fields"
	case errors.Is(err, common.ErrInvalidAmount):
		return "Input Error", "Invalid amount"
	case errors.Is(err, common.ErrUnknownCurrency):
		return "Conversion Error", "Invalid currency code or rate not found"
	case errors.Is(err, common.ErrSourceUnavailable):
		return "Error", fmt.Sprintf("Failed to fetch currencies: %v", err)
	case errors.Is(err, common.ErrUsernameTaken):
		return "Error", "Username already exists"
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Error", "Invalid username or password"
	case errors.Is(err, common.ErrStore):
		return "Error", "History store is unavailable, please try again"
	default:
		return "Error", err.Error()
	}
}
