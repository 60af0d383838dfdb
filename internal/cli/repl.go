package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. *App satisfies it.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Convert(ctx context.Context, args []string) error
	History(ctx context.Context) error
	Currencies(ctx context.Context, args []string) error
	Chart(ctx context.Context) error
	Refresh(ctx context.Context) error
}

// runREPL reads commands from reader and dispatches them to a until EOF,
// "exit"/"quit", or cancellation of ctx. Command errors are printed and the
// loop carries on.
//
// Commands that prompt for more input read from the same reader, so the
// loop consumes exactly one line per command.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("fx %s > ", statusFn()))
		line, readErr := reader.ReadString('\n')
		if readErr != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: convert, history, currencies, chart, refresh, logout, exit")
			} else {
				printlnFn("Available commands: convert, history, currencies, chart, refresh, register, login, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "c", "convert":
			err = a.Convert(ctx, args)

		case "h", "history":
			err = a.History(ctx)

		case "currencies":
			err = a.Currencies(ctx, args)

		case "chart":
			err = a.Chart(ctx)

		case "refresh":
			err = a.Refresh(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn(formatError(err))
		}
	}
}
