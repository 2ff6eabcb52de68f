package assistant

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizlens/bizlens/internal/catalog"
	"github.com/bizlens/bizlens/internal/domain"
	"github.com/bizlens/bizlens/internal/llm"
)

type mockLLMClient struct {
	response string
	err      error
	lastReq  llm.GenerateRequest
}

func (m *mockLLMClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "llama3.2"}, nil
}

func (m *mockLLMClient) Available(_ context.Context) bool { return m.err == nil }

func TestWantsChart(t *testing.T) {
	tests := []struct {
		question string
		want     bool
	}{
		{"show me revenue trends", true},
		{"create a profit chart", true},
		{"plot expenses", true},
		{"can you visualize customers", true},
		{"graph the regions", true},
		{"how is my cash flow?", false},
		{"should I hire more staff?", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assert.Equal(t, tt.want, WantsChart(tt.question))
		})
	}
}

func TestCannedReply_ChartQuestions(t *testing.T) {
	tests := []struct {
		name     string
		question string
		contains string
	}{
		{"customer", "show customer revenue chart", "ABC Trading leads"},
		{"client alias", "graph my top clients", "ABC Trading leads"},
		{"expenses", "show expense breakdown", "Staff costs dominate"},
		{"profit", "plot profit margins", "margin improved from 17.9%"},
		{"region", "visualize regional sales", "KL leading"},
		{"default trend", "show me everything", "Revenue grew 37%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CannedReply(tt.question)
			assert.Contains(t, got, tt.contains)
		})
	}
}

func TestCannedReply_AnalysisQuestions(t *testing.T) {
	tests := []struct {
		name     string
		question string
		contains string
	}{
		{"cash flow", "how is my cash flow?", "cash flow is excellent"},
		{"performance", "how am i doing this quarter?", "Outstanding performance"},
		{"hiring", "should I hire another employee?", "Adding 1 sales person"},
		{"forecast", "predict next month", "Next month prediction"},
		{"fallback", "tell me something", "fundamentals look solid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CannedReply(tt.question)
			assert.Contains(t, got, tt.contains)
		})
	}
}

// Chart rules run before analysis rules, so a chart question about profit
// gets the profit chart narration, not the generic analysis.
func TestCannedReply_ChartRulesTakePriority(t *testing.T) {
	got := CannedReply("show profit performance chart")
	assert.Contains(t, got, "Here's your profit trend chart")
}

func TestNarratorReply_LLMSuccess(t *testing.T) {
	client := &mockLLMClient{response: "Revenue looks strong this month."}
	n := NewNarrator(client, true, "You are a business analyst.")

	text, source := n.Reply(context.Background(), "how is revenue?")

	assert.Equal(t, domain.NarrationLLM, source)
	assert.Equal(t, "Revenue looks strong this month.", text)
	assert.Equal(t, llm.TaskNarration, client.lastReq.Task)
	assert.Equal(t, "You are a business analyst.", client.lastReq.SystemPrompt)
	assert.Equal(t, "how is revenue?", client.lastReq.UserPrompt)
}

func TestNarratorReply_LLMFailureFallsBack(t *testing.T) {
	client := &mockLLMClient{err: llm.ErrUnavailable}
	n := NewNarrator(client, true, "prompt")

	text, source := n.Reply(context.Background(), "how is my cash flow?")

	assert.Equal(t, domain.NarrationCanned, source)
	assert.Contains(t, text, "cash flow is excellent")
}

func TestNarratorReply_EmptyLLMOutputFallsBack(t *testing.T) {
	client := &mockLLMClient{response: "   \n"}
	n := NewNarrator(client, true, "prompt")

	_, source := n.Reply(context.Background(), "show revenue")
	assert.Equal(t, domain.NarrationCanned, source)
}

func TestNarratorReply_DisabledSkipsLLM(t *testing.T) {
	client := &mockLLMClient{response: "should never be used"}
	n := NewNarrator(client, false, "prompt")

	text, source := n.Reply(context.Background(), "show customer chart")

	assert.Equal(t, domain.NarrationCanned, source)
	assert.NotContains(t, text, "should never be used")
	assert.Empty(t, client.lastReq.Task, "disabled narrator must not call the client")
}

func TestNarratorReply_NilClient(t *testing.T) {
	n := NewNarrator(nil, true, "prompt")

	text, source := n.Reply(context.Background(), "predict next month")

	assert.Equal(t, domain.NarrationCanned, source)
	assert.Contains(t, text, "Next month prediction")
}

func TestNarratorSummarize_LLMSuccess(t *testing.T) {
	client := &mockLLMClient{response: "A solid half year overall."}
	n := NewNarrator(client, true, "prompt")

	summary := Summary{TotalRevenue: 671000, TotalExpenses: 513000}
	text, source := n.Summarize(context.Background(), summary)

	assert.Equal(t, domain.NarrationLLM, source)
	assert.Equal(t, "A solid half year overall.", text)
	assert.Equal(t, llm.TaskSummary, client.lastReq.Task)
	assert.True(t, strings.Contains(client.lastReq.UserPrompt, "671000") ||
		strings.Contains(client.lastReq.UserPrompt, "671,000") ||
		strings.Contains(client.lastReq.UserPrompt, "671"), "prompt should carry the figures")
}

func TestNarratorSummarize_FallsBackToDeterministic(t *testing.T) {
	client := &mockLLMClient{err: llm.ErrTimeout}
	n := NewNarrator(client, true, "prompt")

	summary, err := BuildSummary(catalog.Default())
	require.NoError(t, err)

	text, source := n.Summarize(context.Background(), summary)

	assert.Equal(t, domain.NarrationCanned, source)
	assert.Equal(t, DeterministicSummaryText(summary), text)
}
