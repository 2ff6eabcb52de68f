package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bizlens/bizlens/internal/cli/formatter"
	"github.com/bizlens/bizlens/internal/export"
	"github.com/bizlens/bizlens/internal/render"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a chart request to a file",
	}

	cmd.AddCommand(
		newExportFormatCmd(app, "png", "chart.png", export.SavePNG),
		newExportFormatCmd(app, "xlsx", "chart.xlsx", export.SaveXLSX),
	)

	return cmd
}

func newExportFormatCmd(app *App, format, defaultOut string, save func(string, *render.Chart) error) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   fmt.Sprintf(`%s "<question>"`, format),
		Short: fmt.Sprintf("Write the chart for a question as %s", format),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Assistant == nil {
				return fmt.Errorf("assistant service not configured")
			}

			spec, chart, desc, err := app.Assistant.BuildChart(args[0], nil)
			if err != nil {
				return err
			}
			if err := save(out, chart); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Wrote %s (%s chart, %s source)\n", out, spec.ChartType, spec.DataSource)
			fmt.Fprintln(w, formatter.FormatChartDescription(desc))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", defaultOut, "Output file path")

	return cmd
}
