package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/subscription"
	"github.com/spf13/cobra"
)

const recentKeep = 50

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"p"},
		Short:   "List and inspect catalog projects",
	}
	cmd.AddCommand(
		newProjectsListCmd(app),
		newProjectsShowCmd(app),
		newProjectsRecentCmd(app),
	)
	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	flags := newFilterFlags()
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List projects matching a filter",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := flags.Filter()
			if err != nil {
				return err
			}

			list := subscription.NewProjectList(app.Catalog, app.QueryLocale)
			defer list.Close()
			req := list.SetQuery(subscription.ListQuery{Filter: f, Locale: app.Locale})

			stop := app.spin(cmd)
			res := req.Do(cmd.Context())
			stop()
			list.Apply(res)
			if res.Err != nil {
				return wrapFetch(res.Err)
			}

			page := list.State().Value
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), struct {
					Projects []domain.Project `json:"projects"`
					Total    int              `json:"total"`
				}{page.Projects, page.Total})
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectList(page.Projects, page.Total, app.Locale))
			return nil
		},
	}
	cmd.Flags().AddFlagSet(flags.FlagSet())
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the service response as JSON")
	return cmd
}

func newProjectsShowCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project id %q", args[0])
			}

			detail := subscription.NewProjectDetail(app.Catalog)
			defer detail.Close()
			if req := detail.SetID(id); req != nil {
				stop := app.spin(cmd)
				res := req.Do(cmd.Context())
				stop()
				detail.Apply(res)
				if res.Err != nil {
					return wrapFetch(res.Err)
				}
			}

			p := detail.State().Value
			if p == nil {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(formatter.T(app.Locale, formatter.TextNoProject)))
				return nil
			}
			if err := recordRecent(cmd, app, *p); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), p)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("", formatter.FormatProjectDetail(*p, app.Locale, 72)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the service response as JSON")
	return cmd
}

func recordRecent(cmd *cobra.Command, app *App, p domain.Project) error {
	if app.Recent == nil {
		return nil
	}
	ctx := cmd.Context()
	err := app.Recent.Record(ctx, domain.RecentProject{
		ProjectID: p.ID,
		Title:     p.LocalizedTitle(app.Locale),
		ViewedAt:  app.now(),
	})
	if err != nil {
		return err
	}
	return app.Recent.Prune(ctx, recentKeep)
}

func newProjectsRecentCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently opened projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Recent == nil {
				return errors.New("history is not available")
			}
			items, err := app.Recent.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRecent(items, app.Locale, app.now()))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of entries (0 for all)")
	return cmd
}
