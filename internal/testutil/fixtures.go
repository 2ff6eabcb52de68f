package testutil

import (
	"time"

	"github.com/bizlens/bizlens/internal/domain"
	"github.com/google/uuid"
)

// ChatSession options
type SessionOption func(*domain.ChatSession)

func WithSessionTitle(title string) SessionOption {
	return func(s *domain.ChatSession) {
		s.Title = title
	}
}

func WithSessionTimes(started, updated time.Time) SessionOption {
	return func(s *domain.ChatSession) {
		s.StartedAt = started
		s.UpdatedAt = updated
	}
}

func NewTestSession(opts ...SessionOption) *domain.ChatSession {
	now := time.Now().UTC().Truncate(time.Second)
	s := &domain.ChatSession{
		ID:        uuid.New().String(),
		Title:     "test session",
		StartedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ChatMessage options
type MessageOption func(*domain.ChatMessage)

func WithRole(role domain.MessageRole) MessageOption {
	return func(m *domain.ChatMessage) {
		m.Role = role
	}
}

func WithSpec(spec *domain.ChartSpec) MessageOption {
	return func(m *domain.ChatMessage) {
		m.Spec = spec
	}
}

func WithChartDescription(desc string) MessageOption {
	return func(m *domain.ChatMessage) {
		m.ChartDescription = desc
	}
}

func WithSource(source string) MessageOption {
	return func(m *domain.ChatMessage) {
		m.Source = source
	}
}

func WithCreatedAt(ts time.Time) MessageOption {
	return func(m *domain.ChatMessage) {
		m.CreatedAt = ts
	}
}

func NewTestMessage(sessionID, content string, opts ...MessageOption) *domain.ChatMessage {
	m := &domain.ChatMessage{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Role:      domain.RoleUser,
		Content:   content,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewTestSpec returns a minimal renderable chart request.
func NewTestSpec(opts ...func(*domain.ChartSpec)) *domain.ChartSpec {
	spec := &domain.ChartSpec{
		DataSource: domain.SourceMonthly,
		XAxis:      domain.FieldMonths,
		YAxis:      []string{domain.FieldRevenue},
		ChartType:  domain.ChartLine,
	}
	for _, opt := range opts {
		opt(spec)
	}
	return spec
}
