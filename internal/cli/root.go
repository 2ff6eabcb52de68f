package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bizlens/bizlens/internal/assistant"
	"github.com/bizlens/bizlens/internal/config"
	"github.com/bizlens/bizlens/internal/repository"
)

// App holds the assistant service and repositories used by CLI commands.
type App struct {
	Assistant *assistant.Service
	Sessions  repository.SessionRepo
	Messages  repository.MessageRepo
	Settings  repository.SettingsRepo
	Config    config.Config

	// IsInteractive reports whether stdin is a terminal; the chat TUI and
	// the settings form require one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "bizlens" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "bizlens",
		Short: "Business assistant that answers questions with charts",
	}

	// Accept snake_case flag spellings alongside the dashed ones.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newAskCmd(app),
		newChatCmd(app),
		newDashboardCmd(app),
		newExportCmd(app),
		newHistoryCmd(app),
		newSettingsCmd(app),
		newMCPCmd(app),
	)

	return root
}
