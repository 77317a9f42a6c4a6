package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/folio/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive gallery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd.Context(), app, category)
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "initial category (defaults to the remembered one)")
	return cmd
}

// runBrowse runs the TUI until the user quits, then remembers the language
// and category that were active.
func runBrowse(ctx context.Context, app *App, category string) error {
	initial := storedCategory(ctx, app.Prefs)
	if category != "" {
		c, ok := domain.ParseCategory(category)
		if !ok {
			return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
		}
		initial = c
	}

	p := tea.NewProgram(newAppModel(app, initial), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	if m, ok := final.(appModel); ok {
		return finishBrowse(ctx, app, m)
	}
	return nil
}

// finishBrowse tears the model down and stores its language and category.
func finishBrowse(ctx context.Context, app *App, m appModel) error {
	m.close()
	app.Locale = m.state.Locale
	c := m.state.Category
	if err := savePreferences(ctx, app, m.state.Locale, &c); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	return nil
}
