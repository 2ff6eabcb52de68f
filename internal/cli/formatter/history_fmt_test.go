package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bizlens/bizlens/internal/domain"
	"github.com/bizlens/bizlens/internal/testutil"
)

func TestFormatSessionList_Empty(t *testing.T) {
	out := FormatSessionList(nil)
	assert.Contains(t, out, "No saved conversations")
}

func TestFormatSessionList(t *testing.T) {
	s := testutil.NewTestSession(testutil.WithSessionTitle("show revenue trends"))

	out := FormatSessionList([]*domain.ChatSession{s})
	assert.Contains(t, out, s.ID[:8])
	assert.Contains(t, out, "show revenue trends")
}

func TestFormatTranscript(t *testing.T) {
	s := testutil.NewTestSession()
	messages := []*domain.ChatMessage{
		testutil.NewTestMessage(s.ID, "customer pie chart"),
		testutil.NewTestMessage(s.ID, "Here's your customer analysis!",
			testutil.WithRole(domain.RoleAssistant),
			testutil.WithChartDescription("Pie chart showing revenue by names"),
		),
	}

	out := FormatTranscript(s, messages)
	assert.Contains(t, out, "you ›")
	assert.Contains(t, out, "customer pie chart")
	assert.Contains(t, out, "lens ›")
	assert.Contains(t, out, "Pie chart showing revenue by names")
}
