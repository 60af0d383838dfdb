package cli

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/dmitrijs2005/gophfx/internal/models"
)

const (
	chartSize  = 10
	chartWidth = 40
)

// Refresh replaces the rate snapshot. On failure the previous snapshot stays
// in use.
func (a *App) Refresh(ctx context.Context) error {
	table, err := a.source.FetchRates(ctx)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.table = table
	a.mu.Unlock()

	fmt.Fprintf(a.out, "Loaded %d currencies.\n", table.Len())
	return nil
}

// Currencies lists known codes, narrowed to those containing args[0] if given.
func (a *App) Currencies(_ context.Context, args []string) error {
	table := a.rates()

	codes := table.Codes()
	if len(args) > 0 {
		codes = table.Search(args[0])
	}

	if len(codes) == 0 {
		if table.Len() == 0 {
			fmt.Fprintln(a.out, "No currencies loaded, try 'refresh'.")
		} else {
			fmt.Fprintln(a.out, "No matching currencies.")
		}
		return nil
	}

	for i := 0; i < len(codes); i += 10 {
		end := min(i+10, len(codes))
		fmt.Fprintln(a.out, strings.Join(codes[i:end], " "))
	}
	return nil
}

// Chart prints a bar chart of the first ten rates as listed by the source.
func (a *App) Chart(_ context.Context) error {
	table := a.rates()
	if table.Len() == 0 {
		fmt.Fprintln(a.out, "No currencies loaded, try 'refresh'.")
		return nil
	}

	fmt.Fprint(a.out, renderChart(table, chartSize, chartWidth))
	return nil
}

// renderChart draws one bar per code for the first n codes in source order,
// scaled to the largest of the shown rates. Non-zero rates always get at
// least one mark.
func renderChart(table models.RateTable, n, width int) string {
	codes := table.Listed()
	if len(codes) > n {
		codes = codes[:n]
	}

	var maxRate float64
	for _, c := range codes {
		r, _ := table.Rate(c)
		maxRate = math.Max(maxRate, r)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Exchange Rates (base %s)\n", orDash(table.Base()))
	for _, c := range codes {
		r, _ := table.Rate(c)
		bar := int(math.Round(r / maxRate * float64(width)))
		if bar < 1 {
			bar = 1
		}
		fmt.Fprintf(&b, "%-4s | %-*s %s\n", c, width, strings.Repeat("#", bar), models.FormatAmount(r))
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
