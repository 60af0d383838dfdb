package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophfx/internal/common"
)

// getSimpleText and getPassword are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.accounts.CreateAccount(ctx, username, password); err != nil {
		return err
	}

	a.logger.Info(ctx, "account created", "username", username)
	fmt.Fprintln(a.out, "Account created, you can now log in.")
	return nil
}

// Login authenticates and switches the active ledger to the user's own.
// A failed attempt keeps whatever session was active before.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	handle, err := a.accounts.Authenticate(ctx, username, password)
	if err != nil {
		a.logger.Warn(ctx, "login failed", "username", username)
		return err
	}

	a.mu.Lock()
	a.user = handle
	a.mu.Unlock()

	a.logger.Info(ctx, "logged in", "username", handle.Username, "session", handle.SessionID.String())
	fmt.Fprintf(a.out, "Welcome, %s!\n", handle.Username)
	return nil
}

// Logout returns to the guest ledger.
func (a *App) Logout(ctx context.Context) error {
	a.mu.Lock()
	prev := a.user
	a.user = nil
	a.mu.Unlock()

	if prev == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	a.logger.Info(ctx, "logged out", "username", prev.Username, "session", prev.SessionID.String())
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
