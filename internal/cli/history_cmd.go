package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bizlens/bizlens/internal/cli/formatter"
	"github.com/bizlens/bizlens/internal/domain"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [session-id]",
		Short: "List saved conversations or show one transcript",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Sessions == nil {
				return fmt.Errorf("history is unavailable without a database")
			}

			ctx := cmd.Context()
			if len(args) == 1 {
				return showTranscript(ctx, cmd, app, args[0])
			}

			if limit <= 0 {
				limit = app.Config.History
			}
			sessions, err := app.Sessions.List(ctx, limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessionList(sessions))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Cap the number of sessions listed (0 uses the configured default)")

	return cmd
}

func showTranscript(ctx context.Context, cmd *cobra.Command, app *App, id string) error {
	session, err := resolveSession(ctx, app, id)
	if err != nil {
		return err
	}

	messages, err := app.Messages.ListBySession(ctx, session.ID)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTranscript(session, messages))
	return nil
}

// resolveSession accepts a full session UUID or the 8-character prefix shown
// by the list view.
func resolveSession(ctx context.Context, app *App, id string) (*domain.ChatSession, error) {
	session, err := app.Sessions.GetByID(ctx, id)
	if err == nil {
		return session, nil
	}

	sessions, listErr := app.Sessions.List(ctx, 0)
	if listErr != nil {
		return nil, err
	}
	for _, s := range sessions {
		if strings.HasPrefix(s.ID, id) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("no session matches %q", id)
}
