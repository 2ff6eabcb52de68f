package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bizlens/bizlens/internal/cli/formatter"
)

func newDashboardCmd(app *App) *cobra.Command {
	var tables bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the business metrics overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Assistant == nil {
				return fmt.Errorf("assistant service not configured")
			}

			text, source, summary, err := app.Assistant.Summarize(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatDashboard(summary))
			fmt.Fprintf(out, "%s %s\n", text, formatter.SourceBadge(source))

			if tables {
				for _, src := range app.Assistant.Catalog().Sources() {
					fmt.Fprint(out, "\n", formatter.FormatSourceTable(src, summary.Currency))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&tables, "tables", false, "Also print every sample-data table")

	return cmd
}
