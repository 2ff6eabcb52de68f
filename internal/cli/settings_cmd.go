package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/bizlens/bizlens/internal/cli/formatter"
	"github.com/bizlens/bizlens/internal/config"
	"github.com/bizlens/bizlens/internal/llm"
)

// settingsKeys are the stored keys the settings command accepts.
var settingsKeys = []string{
	config.KeyCurrency,
	config.KeyHistory,
	config.KeyLLMEnabled,
	config.KeyLLMProvider,
	config.KeyLLMEndpoint,
	config.KeyLLMModel,
	config.KeyLLMAPIKey,
}

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show stored settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Settings == nil {
				return fmt.Errorf("settings are unavailable without a database")
			}

			stored, err := app.Settings.All(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(settingsKeys))
			for _, key := range settingsKeys {
				value, ok := stored[key]
				if !ok {
					value = formatter.Dim("(default)")
				} else if key == config.KeyLLMAPIKey {
					value = "********"
				}
				rows = append(rows, []string{key, value})
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"Key", "Value"}, rows))
			return nil
		},
	}

	cmd.AddCommand(newSettingsSetCmd(app), newSettingsEditCmd(app))

	return cmd
}

func newSettingsSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store one setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Settings == nil {
				return fmt.Errorf("settings are unavailable without a database")
			}

			key := strings.ToLower(args[0])
			if !validSettingsKey(key) {
				return fmt.Errorf("unknown key %q, valid: %s", key, strings.Join(settingsKeys, ", "))
			}
			if err := app.Settings.Set(cmd.Context(), key, args[1]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s.\n", key)
			return nil
		},
	}
}

func newSettingsEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit settings in a form",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Settings == nil {
				return fmt.Errorf("settings are unavailable without a database")
			}
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("edit needs an interactive terminal; use: bizlens settings set <key> <value>")
			}

			currency := app.Config.Currency
			enabled := app.Config.LLM.Enabled
			provider := app.Config.LLM.Provider
			model := app.Config.LLM.Model

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Currency prefix").
						Placeholder("RM").
						Value(&currency),
					huh.NewConfirm().
						Title("Use an LLM for narration?").
						Value(&enabled),
					huh.NewSelect[string]().
						Title("LLM provider").
						Options(
							huh.NewOption("Ollama (local)", llm.ProviderOllama),
							huh.NewOption("Gemini", llm.ProviderGemini),
						).
						Value(&provider),
					huh.NewInput().
						Title("Model (blank for provider default)").
						Value(&model),
				),
			).WithTheme(bizlensHuhTheme()).WithShowHelp(false)

			if err := form.Run(); err != nil {
				return err
			}

			ctx := cmd.Context()
			values := map[string]string{
				config.KeyCurrency:    strings.TrimSpace(currency),
				config.KeyLLMEnabled:  fmt.Sprintf("%t", enabled),
				config.KeyLLMProvider: provider,
				config.KeyLLMModel:    strings.TrimSpace(model),
			}
			keys := make([]string, 0, len(values))
			for k := range values {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				if err := app.Settings.Set(ctx, k, values[k]); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Settings saved. They apply from the next run.")
			return nil
		},
	}
}

func validSettingsKey(key string) bool {
	for _, k := range settingsKeys {
		if k == key {
			return true
		}
	}
	return false
}
