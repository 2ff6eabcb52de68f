package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Assistant == nil {
				return fmt.Errorf("assistant service not configured")
			}
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("chat needs an interactive terminal; use: bizlens ask \"<question>\"")
			}

			p := tea.NewProgram(newChatModel(app))
			_, err := p.Run()
			return err
		},
	}
}
