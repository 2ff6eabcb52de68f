package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bizlens/bizlens/internal/mcp"
)

func newMCPCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the assistant as MCP tools over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Assistant == nil {
				return fmt.Errorf("assistant service not configured")
			}
			return mcp.Serve(mcp.NewServer(app.Assistant))
		},
	}
}
