package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alexanderramin/folio/internal/catalog"
	"github.com/alexanderramin/folio/internal/cli"
	"github.com/alexanderramin/folio/internal/config"
	"github.com/alexanderramin/folio/internal/db"
	"github.com/alexanderramin/folio/internal/locale"
	"github.com/alexanderramin/folio/internal/repository"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logOut, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	prefs := repository.NewSQLitePreferencesRepo(database)

	queryLocale, err := locale.Parse(cfg.QueryLocale)
	if err != nil {
		return fmt.Errorf("FOLIO_QUERY_LOCALE: %w", err)
	}

	app := &cli.App{
		Catalog:     catalog.NewHTTPClient(cfg.APIURL, cfg.Timeout(), catalog.NewLogObserver(logOut)),
		Prefs:       prefs,
		Recent:      repository.NewSQLiteRecentRepo(database),
		Locale:      cli.ResolveLocale(ctx, prefs, cfg.Locale),
		QueryLocale: queryLocale,
	}

	// Detect interactive terminal for the browser entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

// openLog resolves FOLIO_LOG_FILE. A nil writer disables request logging.
func openLog(path string) (io.Writer, func(), error) {
	switch path {
	case "":
		return nil, func() {}, nil
	case "-":
		return os.Stderr, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
