package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/locale"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newLocaleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locale",
		Short: "Show or change the display language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n",
				formatter.T(app.Locale, formatter.TextLanguage), app.Locale.Name(), app.Locale)
			return nil
		},
	}
	cmd.AddCommand(newLocaleSetCmd(app))
	return cmd
}

func newLocaleSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "set [ru|en]",
		Short:     "Remember a display language",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(locale.Russian), string(locale.English)},
		RunE: func(cmd *cobra.Command, args []string) error {
			var choice locale.Locale
			switch {
			case len(args) == 1:
				l, err := locale.Parse(args[0])
				if err != nil {
					return err
				}
				choice = l
			case app.interactive():
				choice = app.Locale
				if err := localeForm(app.Locale, &choice).Run(); err != nil {
					return err
				}
			default:
				return errors.New("locale required: folio locale set ru|en")
			}

			if app.Prefs == nil {
				return errors.New("preferences are not available")
			}
			if err := savePreferences(cmd.Context(), app, choice, nil); err != nil {
				return err
			}
			app.Locale = choice
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", formatter.T(choice, formatter.TextLanguage), choice.Name())
			return nil
		},
	}
}

func localeForm(current locale.Locale, value *locale.Locale) *huh.Form {
	options := make([]huh.Option[locale.Locale], 0, len(locale.Supported))
	for _, l := range locale.Supported {
		options = append(options, huh.NewOption(l.Name(), l).Selected(l == current))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[locale.Locale]().
				Title(formatter.T(current, formatter.TextLanguage)).
				Options(options...).
				Value(value),
		),
	).WithTheme(folioHuhTheme()).WithShowHelp(false)
}
