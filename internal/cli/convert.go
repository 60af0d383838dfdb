package cli

import (
	"context"
	"fmt"
)

// Convert converts args (amount, from, to) with the current rate snapshot and
// records the result to the active ledger. With no args it prompts for each
// value.
func (a *App) Convert(ctx context.Context, args []string) error {
	var amount, from, to string

	switch len(args) {
	case 3:
		amount, from, to = args[0], args[1], args[2]
	case 0:
		var err error
		if amount, err = getSimpleText(a.reader, "Amount", a.out); err != nil {
			return err
		}
		if from, err = getSimpleText(a.reader, "From currency", a.out); err != nil {
			return err
		}
		if to, err = getSimpleText(a.reader, "To currency", a.out); err != nil {
			return err
		}
	default:
		fmt.Fprintln(a.out, "Usage: convert <amount> <from> <to>")
		return nil
	}

	rec, err := a.engine.Convert(amount, from, to, a.rates())
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Converted Amount: %s\n", rec.Summary())

	if _, err := a.history.Record(ctx, a.owner(), rec); err != nil {
		a.logger.Error(ctx, "failed to record conversion", "error", err)
		return err
	}
	return nil
}

// History prints the active ledger, oldest first.
func (a *App) History(ctx context.Context) error {
	recs, err := a.history.List(ctx, a.owner())
	if err != nil {
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(a.out, "No conversions yet.")
		return nil
	}
	for _, r := range recs {
		fmt.Fprintln(a.out, r)
	}
	return nil
}
