package assistant

import (
	"context"
	"strings"

	"github.com/bizlens/bizlens/internal/domain"
	"github.com/bizlens/bizlens/internal/llm"
)

// chartCues gate the chart pipeline: a turn only attempts to build a chart
// when the question contains one of these words.
var chartCues = []string{"chart", "graph", "show", "visualize", "plot"}

// cannedRule maps question cues to a prewritten analysis reply.
type cannedRule struct {
	cues []string
	text string
}

// Replies for chart-producing questions, checked in order.
var chartReplies = []cannedRule{
	{
		cues: []string{"customer", "client"},
		text: "Here's your customer analysis! Your top 3 customers (ABC Trading, XYZ Manufacturing, DEF Industries) contribute 83% of total revenue. ABC Trading leads with RM 45k revenue and 35% margin. I'll show you the customer distribution chart.",
	},
	{
		cues: []string{"expense", "cost", "spending"},
		text: "Let me break down your expenses. Staff costs dominate at RM 35k (40% of total), followed by marketing at RM 15k. This suggests a healthy investment in people and growth. Here's the expense breakdown chart.",
	},
	{
		cues: []string{"profit", "margin"},
		text: "Excellent profit performance! Your margin improved from 17.9% to 32.3% over 6 months - that's phenomenal growth. This shows strong operational efficiency improvements. Here's your profit trend chart.",
	},
	{
		cues: []string{"region", "area", "location"},
		text: "Your regional performance shows KL leading with RM 45k, followed by Selangor (RM 38k) and Penang (RM 25k). Consider expanding marketing in underperforming regions. Here's the regional breakdown.",
	},
}

const chartDefaultReply = "Here's your overall business trend! Revenue grew 37% from Aug to Jan, reaching RM 130k. Expenses are well-controlled at RM 88k. Your business is on a strong growth trajectory! Let me show you the trends."

// Replies for analysis questions that produce no chart, checked in order.
var analysisReplies = []cannedRule{
	{
		cues: []string{"cash", "flow", "money"},
		text: "Your cash flow is excellent! Current month: RM 42k net profit. Based on trends, next month should generate RM 45k excess cash. Recommendation: Consider investing in inventory or equipment for growth.",
	},
	{
		cues: []string{"performance", "how am i doing"},
		text: "Outstanding performance! Revenue up 10% to RM 130k, expenses down 3% to RM 88k, profit up 56% to RM 42k. Your 32.3% profit margin beats industry average of 22%. Keep it up!",
	},
	{
		cues: []string{"hire", "staff", "employee"},
		text: "Based on your RM 130k revenue and current workload, yes! Revenue per employee analysis shows good productivity. Adding 1 sales person could increase revenue by RM 180k annually. ROI: 340%.",
	},
	{
		cues: []string{"predict", "forecast", "future"},
		text: "Next month prediction: Revenue RM 132k (+2%), Expenses RM 87.5k (-1%), Net Profit RM 44.5k (+6%). Confidence: 87%. Growth drivers: customer retention + seasonal uptick.",
	},
}

const analysisDefaultReply = "I'm analyzing your business data... Revenue trending upward (+37% growth), expenses controlled, profit margin strong at 32.3%. Your fundamentals look solid! What specific aspect would you like me to analyze or visualize?"

// WelcomeMessage greets the user at the start of an interactive session.
const WelcomeMessage = "Hello! I can analyze your business data and create dynamic charts. Try asking: 'Show me customer revenue pie chart' or 'Create profit trend graph'"

// Narrator produces the conversational half of a turn. When an LLM is
// configured it drafts the reply; any failure falls back to the canned
// analyst so a turn always gets an answer.
type Narrator struct {
	client       llm.Client
	enabled      bool
	systemPrompt string
}

// NewNarrator creates a Narrator. client may be nil when generation is
// disabled.
func NewNarrator(client llm.Client, enabled bool, systemPrompt string) *Narrator {
	return &Narrator{client: client, enabled: enabled, systemPrompt: systemPrompt}
}

// WantsChart reports whether the question asks for a visualization.
func WantsChart(question string) bool {
	return matchesAny(strings.ToLower(question), chartCues)
}

// Reply answers the question, returning the text and its source
// (domain.NarrationLLM or domain.NarrationCanned).
func (n *Narrator) Reply(ctx context.Context, question string) (string, string) {
	if n.enabled && n.client != nil {
		resp, err := n.client.Generate(ctx, llm.GenerateRequest{
			Task:         llm.TaskNarration,
			SystemPrompt: n.systemPrompt,
			UserPrompt:   question,
		})
		if err == nil {
			if text := llm.CleanNarration(resp.Text); text != "" {
				return text, domain.NarrationLLM
			}
		}
	}
	return CannedReply(question), domain.NarrationCanned
}

// Summarize turns the computed dashboard figures into prose, via the LLM
// when available, otherwise the deterministic template.
func (n *Narrator) Summarize(ctx context.Context, summary Summary) (string, string) {
	if n.enabled && n.client != nil {
		resp, err := n.client.Generate(ctx, llm.GenerateRequest{
			Task:         llm.TaskSummary,
			SystemPrompt: summarySystemPrompt,
			UserPrompt:   buildSummaryUserPrompt(summary),
		})
		if err == nil {
			if text := llm.CleanNarration(resp.Text); text != "" {
				return text, domain.NarrationLLM
			}
		}
	}
	return DeterministicSummaryText(summary), domain.NarrationCanned
}

// CannedReply picks the prewritten analysis for a question.
func CannedReply(question string) string {
	q := strings.ToLower(question)

	if matchesAny(q, chartCues) {
		for _, rule := range chartReplies {
			if matchesAny(q, rule.cues) {
				return rule.text
			}
		}
		return chartDefaultReply
	}

	for _, rule := range analysisReplies {
		if matchesAny(q, rule.cues) {
			return rule.text
		}
	}
	return analysisDefaultReply
}

func matchesAny(text string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(text, cue) {
			return true
		}
	}
	return false
}
