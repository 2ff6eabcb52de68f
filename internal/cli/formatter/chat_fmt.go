package formatter

import (
	"fmt"
	"strings"

	"github.com/bizlens/bizlens/internal/assistant"
)

// FormatChatWelcome renders the greeting shown when a chat session starts.
func FormatChatWelcome(actions []assistant.QuickAction) string {
	var b strings.Builder

	b.WriteString(Header("BizLens Assistant"))
	b.WriteString("\n")
	b.WriteString(assistant.WelcomeMessage + "\n")
	b.WriteString(Dim("Follow up with \"also add profit margin\" to patch the active chart.") + "\n")

	for i, a := range actions {
		fmt.Fprintf(&b, "  %s %s  %s\n",
			StyleHeader.Render(fmt.Sprintf("%d.", i+1)),
			a.Label,
			Dim(a.Question),
		)
	}
	b.WriteString(Dim("/clear drops the active chart · /quit exits") + "\n")

	return b.String()
}

// FormatQuestion renders the user's side of a turn.
func FormatQuestion(question string) string {
	return StyleGreen.Render("you › ") + question
}

// FormatAnswer renders the assistant's side of a turn: narration with its
// source badge, then the chart block and description when one was produced.
func FormatAnswer(turn *assistant.Turn) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s %s\n", StylePurple.Render("lens ›"), turn.Reply, SourceBadge(turn.Source))

	if turn.HasChart() {
		b.WriteString("\n")
		b.WriteString(FormatChart(turn.Chart))
		b.WriteString(FormatChartDescription(turn.Description))
		b.WriteString("\n")
	}

	return b.String()
}
