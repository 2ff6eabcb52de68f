package domain

import "time"

// ChatSession is one persisted conversation.
type ChatSession struct {
	ID        string
	Title     string
	StartedAt time.Time
	UpdatedAt time.Time
	Messages  []*ChatMessage
}

// Narration sources recorded on assistant messages.
const (
	NarrationLLM    = "llm"
	NarrationCanned = "canned"
)

// ChatMessage is one persisted turn half (user question or assistant reply).
// Assistant messages that produced a chart carry the chart description and
// the serialized spec alongside the narration text.
type ChatMessage struct {
	ID               string
	SessionID        string
	Role             MessageRole
	Content          string
	ChartDescription string
	Source           string
	Spec             *ChartSpec
	CreatedAt        time.Time
}

// SessionState is the per-conversation chart memory. It holds at most one
// spec, the "current chart", which the next modification request patches.
// The presentation surface owns the lifecycle: created at session start,
// discarded at session end.
type SessionState struct {
	SessionID string
	Current   *ChartSpec
}

// NewSessionState returns state in the no-active-chart condition.
func NewSessionState(sessionID string) *SessionState {
	return &SessionState{SessionID: sessionID}
}

// SetCurrent records spec as the active chart, replacing any prior one.
func (s *SessionState) SetCurrent(spec ChartSpec) {
	c := spec.Clone()
	s.Current = &c
}

// Clear returns the session to the no-active-chart condition.
func (s *SessionState) Clear() {
	s.Current = nil
}

// HasChart reports whether a chart is active.
func (s *SessionState) HasChart() bool {
	return s.Current != nil
}
