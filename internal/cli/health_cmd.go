package cli

import (
	"fmt"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHealthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the catalog service is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := app.Catalog.Health(cmd.Context())
			if err != nil {
				return wrapFetch(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("● ")+h.Message)
			return nil
		},
	}
}
