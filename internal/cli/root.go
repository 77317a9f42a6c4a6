package cli

import (
	"time"

	"github.com/alexanderramin/folio/internal/catalog"
	"github.com/alexanderramin/folio/internal/locale"
	"github.com/alexanderramin/folio/internal/repository"
	"github.com/spf13/cobra"
)

// App holds everything CLI commands and TUI views need.
type App struct {
	Catalog catalog.Client
	Prefs   repository.PreferencesRepo
	Recent  repository.RecentRepo

	// Locale is the display language for this run.
	Locale locale.Locale
	// QueryLocale is the language category filters are sent in.
	QueryLocale locale.Locale

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
	// Now is the clock used for history timestamps.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "folio" command. Without a subcommand it
// opens the browser on a terminal and prints help otherwise.
func NewRootCmd(app *App) *cobra.Command {
	var localeFlag string

	root := &cobra.Command{
		Use:           "folio",
		Short:         "Browse the portfolio catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !app.Locale.Valid() {
				app.Locale = locale.Default
			}
			if !app.QueryLocale.Valid() {
				app.QueryLocale = locale.Default
			}
			if localeFlag == "" {
				return nil
			}
			l, err := locale.Parse(localeFlag)
			if err != nil {
				return err
			}
			app.Locale = l
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runBrowse(cmd.Context(), app, "")
			}
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&localeFlag, "locale", "", "display language (ru, en)")

	root.AddCommand(
		newProjectsCmd(app),
		newCategoriesCmd(app),
		newHealthCmd(app),
		newLocaleCmd(app),
		newBrowseCmd(app),
	)
	return root
}
