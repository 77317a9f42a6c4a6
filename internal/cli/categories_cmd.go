package cli

import (
	"fmt"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/subscription"
	"github.com/spf13/cobra"
)

func newCategoriesCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cats"},
		Short:   "Show categories with project counts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := subscription.NewCategories(app.Catalog)
			defer dir.Close()
			req := dir.SetLocale(app.Locale)

			stop := app.spin(cmd)
			res := req.Do(cmd.Context())
			stop()
			dir.Apply(res)
			if res.Err != nil {
				return wrapFetch(res.Err)
			}

			counts := dir.State().Value
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), counts)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCategories(counts, app.Locale))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
