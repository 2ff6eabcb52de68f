package llm

import (
	"fmt"
	"io"
	"time"
)

// LLMCallEvent records the outcome of a single generation attempt.
type LLMCallEvent struct {
	Timestamp time.Time
	Task      TaskType
	Provider  string
	Model     string
	LatencyMs int64
	Attempt   int
	Status    string // "ok" or "error"
	ErrorCode string // TIMEOUT, UNAVAILABLE, INVALID_OUTPUT, UNKNOWN
}

// Observer receives call events. Implementations must be safe for
// concurrent use.
type Observer interface {
	OnCallComplete(event LLMCallEvent)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(LLMCallEvent) {}

// LogObserver writes one line per call to w.
type LogObserver struct {
	W io.Writer
}

func (o LogObserver) OnCallComplete(e LLMCallEvent) {
	if o.W == nil {
		return
	}
	if e.Status == "ok" {
		fmt.Fprintf(o.W, "[%s] llm_call task=%s provider=%s model=%s attempt=%d latency_ms=%d status=ok\n",
			e.Timestamp.UTC().Format(time.RFC3339), e.Task, e.Provider, e.Model, e.Attempt, e.LatencyMs)
		return
	}
	fmt.Fprintf(o.W, "[%s] llm_call task=%s provider=%s model=%s attempt=%d latency_ms=%d status=error code=%s\n",
		e.Timestamp.UTC().Format(time.RFC3339), e.Task, e.Provider, e.Model, e.Attempt, e.LatencyMs, e.ErrorCode)
}
