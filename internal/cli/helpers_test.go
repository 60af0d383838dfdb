package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophfx/internal/converter"
	"github.com/dmitrijs2005/gophfx/internal/logging"
	"github.com/dmitrijs2005/gophfx/internal/models"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeSource struct {
	table models.RateTable
	err   error
	calls int
}

func (f *fakeSource) FetchRates(context.Context) (models.RateTable, error) {
	f.calls++
	return f.table, f.err
}

type fakeAccounts struct {
	createUser string
	createPass []byte
	createErr  error

	authUser string
	authPass []byte
	authErr  error
}

func (f *fakeAccounts) CreateAccount(_ context.Context, user string, pass []byte) error {
	f.createUser, f.createPass = user, append([]byte(nil), pass...)
	return f.createErr
}

func (f *fakeAccounts) Authenticate(_ context.Context, user string, pass []byte) (*models.AccountHandle, error) {
	f.authUser, f.authPass = user, append([]byte(nil), pass...)
	if f.authErr != nil {
		return nil, f.authErr
	}
	return models.NewAccountHandle(user), nil
}

type fakeHistory struct {
	records   []models.ConversionRecord
	recordErr error
	listErr   error
}

func (f *fakeHistory) Record(_ context.Context, owner string, rec models.ConversionRecord) (models.ConversionRecord, error) {
	if f.recordErr != nil {
		return models.ConversionRecord{}, f.recordErr
	}
	rec.Owner = owner
	rec.ID = int64(len(f.records) + 1)
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeHistory) List(_ context.Context, owner string) ([]models.ConversionRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []models.ConversionRecord{}
	for _, r := range f.records {
		if r.Owner == owner {
			out = append(out, r)
		}
	}
	return out, nil
}

// ---- helpers ----

func scenarioTable(t *testing.T) models.RateTable {
	t.Helper()
	table, err := models.NewRateTable("USD", map[string]float64{
		"USD": 1.0,
		"EUR": 0.9,
		"INR": 83.0,
	}, time.Now())
	require.NoError(t, err)
	return table
}

// newTestApp returns an App over fakes, its output buffer, and the fakes.
func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer, *fakeAccounts, *fakeHistory) {
	t.Helper()
	out := &bytes.Buffer{}
	acc := &fakeAccounts{}
	hist := &fakeHistory{}
	a := &App{
		source:   &fakeSource{table: scenarioTable(t)},
		engine:   converter.NewEngine(time.UTC),
		accounts: acc,
		history:  hist,
		logger:   logging.Nop(),
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      out,
		table:    scenarioTable(t),
	}
	return a, out, acc, hist
}

func stubInputs(t *testing.T, username string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return username, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			parts = append(parts, strings.TrimSpace(toString(v)))
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
