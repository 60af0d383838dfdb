package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/gophfx/internal/config"
	"github.com/dmitrijs2005/gophfx/internal/converter"
	"github.com/dmitrijs2005/gophfx/internal/filex"
	"github.com/dmitrijs2005/gophfx/internal/logging"
	"github.com/dmitrijs2005/gophfx/internal/models"
	"github.com/dmitrijs2005/gophfx/internal/rates"
	"github.com/dmitrijs2005/gophfx/internal/services"
	"github.com/dmitrijs2005/gophfx/internal/store"
)

type App struct {
	source   rates.Source
	engine   *converter.Engine
	accounts services.AccountService
	history  services.HistoryService
	logger   logging.Logger
	db       *sql.DB

	reader *bufio.Reader
	out    io.Writer

	mu    sync.RWMutex
	table models.RateTable
	user  *models.AccountHandle
}

// NewApp opens the history database and builds the services described by c.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}

	if err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		return nil, err
	}

	db, err := store.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	source := rates.NewLoggingSource(logger,
		rates.NewHTTPSource(c.RatesURL, c.RequestTimeout, c.Currencies, logger))

	return &App{
		source:   source,
		engine:   converter.NewEngine(loc),
		accounts: services.NewAccountService(db),
		history:  services.NewHistoryService(db, loc),
		logger:   logger,
		db:       db,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run loads the first rate snapshot and serves the REPL on stdin until the
// user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to GophFX currency converter (type 'help' for commands)")
	if err := a.Refresh(ctx); err != nil {
		a.report(err)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user != nil
}

// owner is the ledger conversions are recorded to; "" for guests.
func (a *App) owner() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.user == nil {
		return ""
	}
	return a.user.Username
}

func (a *App) rates() models.RateTable {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.table
}

func (a *App) getStatus() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	who := "guest"
	if a.user != nil {
		who = a.user.Username
	}
	return fmt.Sprintf("(%s, %d currencies)", who, a.table.Len())
}

func (a *App) report(err error) {
	fmt.Fprintln(a.out, formatError(err))
}
