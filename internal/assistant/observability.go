package assistant

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// TurnEvent captures lightweight execution telemetry for one chat turn.
type TurnEvent struct {
	SessionID  string
	Question   string
	Source     string // narration source: "llm" or "canned"
	HasChart   bool
	RenderErr  error
	PersistErr error
	Duration   time.Duration
}

// TurnObserver receives turn events.
type TurnObserver interface {
	ObserveTurn(ctx context.Context, event TurnEvent)
}

// NoopTurnObserver ignores all events.
type NoopTurnObserver struct{}

func (NoopTurnObserver) ObserveTurn(context.Context, TurnEvent) {}

type logTurnObserver struct {
	logger *slog.Logger
}

// NewLogTurnObserver writes turn events to the provided writer.
func NewLogTurnObserver(w io.Writer) TurnObserver {
	if w == nil {
		return NoopTurnObserver{}
	}
	return &logTurnObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logTurnObserver) ObserveTurn(ctx context.Context, event TurnEvent) {
	attrs := []any{
		"session_id", event.SessionID,
		"source", event.Source,
		"has_chart", event.HasChart,
		"duration_ms", event.Duration.Milliseconds(),
	}
	if event.RenderErr != nil {
		attrs = append(attrs, "render_error", event.RenderErr.Error())
	}
	if event.PersistErr != nil {
		attrs = append(attrs, "persist_error", event.PersistErr.Error())
		o.logger.ErrorContext(ctx, "assistant_turn", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "assistant_turn", attrs...)
}
