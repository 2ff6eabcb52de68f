package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bizlens/bizlens/internal/assistant"
	"github.com/bizlens/bizlens/internal/cli/formatter"
	"github.com/bizlens/bizlens/internal/domain"
)

func newAskCmd(app *App) *cobra.Command {
	var quick string

	cmd := &cobra.Command{
		Use:   `ask "<question>"`,
		Short: "Ask one question and print the answer",
		Long: "Answer a single business question. Questions that ask for a chart\n" +
			"(\"show\", \"chart\", \"plot\", ...) also print the chart block.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Assistant == nil {
				return fmt.Errorf("assistant service not configured")
			}

			question := ""
			if len(args) == 1 {
				question = args[0]
			}
			if quick != "" {
				preset, ok := quickQuestion(quick)
				if !ok {
					return fmt.Errorf("unknown quick action %q, valid: %s", quick, quickNames())
				}
				question = preset
			}
			if strings.TrimSpace(question) == "" {
				return fmt.Errorf("nothing to ask: pass a question or --quick <%s>", quickNames())
			}

			var stop func()
			if app.Config.LLM.Enabled {
				stop = formatter.StartSpinner("Thinking...")
			}
			state := domain.NewSessionState(uuid.New().String())
			turn, err := app.Assistant.HandleTurn(cmd.Context(), state, question)
			if stop != nil {
				stop()
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAnswer(turn))
			return nil
		},
	}

	cmd.Flags().StringVar(&quick, "quick", "", "Run a preset question: "+quickNames())

	return cmd
}

// quickQuestion maps a preset slug ("revenue-trends") to its question.
func quickQuestion(name string) (string, bool) {
	for _, a := range assistant.QuickActions() {
		if quickSlug(a.Label) == strings.ToLower(name) {
			return a.Question, true
		}
	}
	return "", false
}

func quickNames() string {
	actions := assistant.QuickActions()
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = quickSlug(a.Label)
	}
	return strings.Join(names, "|")
}

func quickSlug(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), " ", "-")
}
