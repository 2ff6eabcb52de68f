// Package mcp exposes the assistant as MCP tools over stdio, so MCP-capable
// clients can request charts and business summaries.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bizlens/bizlens/internal/assistant"
	"github.com/bizlens/bizlens/internal/domain"
)

// NewServer creates an MCP server with the chart and summary tools
// registered.
func NewServer(svc *assistant.Service) *server.MCPServer {
	s := server.NewMCPServer("bizlens", "1.0.0")
	registerRenderChart(s, svc)
	registerBusinessSummary(s, svc)
	return s
}

// Serve blocks, answering MCP requests on stdin/stdout.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

// chartResult is the render_chart tool's JSON payload.
type chartResult struct {
	Spec        domain.ChartSpec `json:"spec"`
	Description string           `json:"description"`
	Labels      []string         `json:"labels"`
	Series      []seriesResult   `json:"series"`
}

type seriesResult struct {
	Metric    string    `json:"metric"`
	Label     string    `json:"label"`
	Values    []float64 `json:"values"`
	Secondary bool      `json:"secondary,omitempty"`
}

func registerRenderChart(s *server.MCPServer, svc *assistant.Service) {
	tool := mcp.NewTool("render_chart",
		mcp.WithDescription("Interprets a free-text chart request against the business metrics (monthly figures, customers, expenses, regions) and returns the resolved chart specification, data series, and a one-line description."),
		mcp.WithString("question",
			mcp.Required(),
			mcp.Description("The chart request, e.g. \"customer revenue pie chart\" or \"revenue and expenses for past 3 months\""),
		),
		mcp.WithString("previous_spec",
			mcp.Description("JSON chart spec from an earlier render_chart call; modification requests like \"also add profit margin\" patch it"),
		),
	)

	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		question, ok := request.Params.Arguments["question"].(string)
		if !ok || strings.TrimSpace(question) == "" {
			return newToolResultError("question is required"), nil
		}

		var previous *domain.ChartSpec
		if raw, ok := request.Params.Arguments["previous_spec"].(string); ok && raw != "" {
			var spec domain.ChartSpec
			if err := json.Unmarshal([]byte(raw), &spec); err != nil {
				return newToolResultError(fmt.Sprintf("previous_spec is not a valid chart spec: %v", err)), nil
			}
			previous = &spec
		}

		spec, chart, desc, err := svc.BuildChart(question, previous)
		if err != nil {
			return newToolResultError(fmt.Sprintf("failed to build chart: %v", err)), nil
		}

		result := chartResult{
			Spec:        *spec,
			Description: desc,
			Labels:      chart.Labels,
		}
		for _, series := range chart.Series {
			result.Series = append(result.Series, seriesResult{
				Metric:    series.Metric,
				Label:     series.Label,
				Values:    series.Values,
				Secondary: series.Secondary,
			})
		}

		payload, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return newToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(payload)), nil
	})
}

func registerBusinessSummary(s *server.MCPServer, svc *assistant.Service) {
	tool := mcp.NewTool("business_summary",
		mcp.WithDescription("Returns a short prose summary of the business: totals, latest-month figures, and the leading customer, expense, and region."),
	)

	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, _, _, err := svc.Summarize(ctx)
		if err != nil {
			return newToolResultError(fmt.Sprintf("failed to summarize: %v", err)), nil
		}
		return mcp.NewToolResultText(text), nil
	})
}

func newToolResultError(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: message},
		},
		IsError: true,
	}
}
