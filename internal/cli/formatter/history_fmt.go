package formatter

import (
	"fmt"
	"strings"

	"github.com/bizlens/bizlens/internal/domain"
)

// FormatSessionList renders persisted chat sessions newest first.
func FormatSessionList(sessions []*domain.ChatSession) string {
	if len(sessions) == 0 {
		return Dim("No saved conversations yet. Start one with: bizlens chat") + "\n"
	}

	rows := make([][]string, len(sessions))
	for i, s := range sessions {
		rows[i] = []string{
			s.ID[:8],
			s.Title,
			s.UpdatedAt.Local().Format("2006-01-02 15:04"),
		}
	}
	return Header("Conversations") + "\n" + RenderTable([]string{"ID", "Title", "Updated"}, rows)
}

// FormatTranscript renders one session's messages in order.
func FormatTranscript(session *domain.ChatSession, messages []*domain.ChatMessage) string {
	var b strings.Builder

	b.WriteString(Header(session.Title))
	b.WriteString("\n")

	for _, m := range messages {
		if m.Role == domain.RoleUser {
			fmt.Fprintf(&b, "%s %s\n", StyleGreen.Render("you ›"), m.Content)
			continue
		}
		fmt.Fprintf(&b, "%s %s\n", StylePurple.Render("lens ›"), m.Content)
		if m.ChartDescription != "" {
			fmt.Fprintf(&b, "       %s\n", FormatChartDescription(m.ChartDescription))
		}
	}

	return b.String()
}
