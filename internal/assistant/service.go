// Package assistant orchestrates a chat turn: narration, the chart pipeline,
// session state, and transcript persistence.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bizlens/bizlens/internal/catalog"
	"github.com/bizlens/bizlens/internal/db"
	"github.com/bizlens/bizlens/internal/domain"
	"github.com/bizlens/bizlens/internal/interpret"
	"github.com/bizlens/bizlens/internal/render"
	"github.com/bizlens/bizlens/internal/repository"
)

// Turn is the assistant's complete answer to one question.
type Turn struct {
	SessionID   string
	Question    string
	Reply       string
	Source      string // narration source: "llm" or "canned"
	Spec        *domain.ChartSpec
	Chart       *render.Chart
	Description string
}

// HasChart reports whether the turn produced a rendered chart.
func (t *Turn) HasChart() bool {
	return t.Chart != nil
}

// Service answers questions against the business catalog. Chart state lives
// in the caller's SessionState; transcripts are persisted best-effort so a
// storage fault never swallows an answer.
type Service struct {
	catalog    *catalog.Catalog
	classifier *interpret.Classifier
	narrator   *Narrator
	uow        db.UnitOfWork
	observer   TurnObserver
}

// NewService creates a Service. uow may be nil for surfaces that do not keep
// transcripts (exports, MCP tools).
func NewService(cat *catalog.Catalog, narrator *Narrator, uow db.UnitOfWork, observer TurnObserver) *Service {
	if observer == nil {
		observer = NoopTurnObserver{}
	}
	return &Service{
		catalog:    cat,
		classifier: interpret.NewClassifier(cat),
		narrator:   narrator,
		uow:        uow,
		observer:   observer,
	}
}

// Catalog exposes the data the service answers from.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// HandleTurn answers one question. It always narrates; it also runs the chart
// pipeline when the question asks for a visualization, or when it is a
// modification of an active chart ("also add profit margin" carries no chart
// cue but must still patch the chart). Session state advances only on a
// successful render, so a failed chart leaves the previous chart intact.
func (s *Service) HandleTurn(ctx context.Context, state *domain.SessionState, question string) (*Turn, error) {
	if state == nil {
		return nil, fmt.Errorf("handle turn: nil session state")
	}
	if strings.TrimSpace(question) == "" {
		return nil, fmt.Errorf("handle turn: empty question")
	}
	start := time.Now()

	reply, source := s.narrator.Reply(ctx, question)
	turn := &Turn{
		SessionID: state.SessionID,
		Question:  question,
		Reply:     reply,
		Source:    source,
	}

	var renderErr error
	next := s.classifier.Classify(question)
	if WantsChart(question) || (next.IsModification && state.HasChart()) {
		resolved := interpret.Resolve(next, state.Current)
		chart, desc, err := render.Render(resolved, s.catalog)
		if err != nil {
			renderErr = err
		} else {
			state.SetCurrent(resolved)
			spec := resolved.Clone()
			turn.Spec = &spec
			turn.Chart = chart
			turn.Description = desc
		}
	}

	persistErr := s.persistTurn(ctx, turn)

	s.observer.ObserveTurn(ctx, TurnEvent{
		SessionID:  state.SessionID,
		Question:   question,
		Source:     source,
		HasChart:   turn.HasChart(),
		RenderErr:  renderErr,
		PersistErr: persistErr,
		Duration:   time.Since(start),
	})

	return turn, nil
}

// BuildChart runs the stateless chart pipeline: classify the question, patch
// it onto the previous spec when it is a modification, and render.
func (s *Service) BuildChart(question string, previous *domain.ChartSpec) (*domain.ChartSpec, *render.Chart, string, error) {
	next := s.classifier.Classify(question)
	resolved := interpret.Resolve(next, previous)
	chart, desc, err := render.Render(resolved, s.catalog)
	if err != nil {
		return nil, nil, "", err
	}
	return &resolved, chart, desc, nil
}

// Summarize produces the dashboard summary text and its source.
func (s *Service) Summarize(ctx context.Context) (string, string, Summary, error) {
	summary, err := BuildSummary(s.catalog)
	if err != nil {
		return "", "", summary, err
	}
	text, source := s.narrator.Summarize(ctx, summary)
	return text, source, summary, nil
}

// persistTurn writes the session row and both turn halves in one
// transaction. Returns the error instead of failing the turn; the observer
// reports it.
func (s *Service) persistTurn(ctx context.Context, turn *Turn) error {
	if s.uow == nil {
		return nil
	}
	now := time.Now().UTC()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		sessions := repository.NewSQLiteSessionRepo(tx)
		messages := repository.NewSQLiteMessageRepo(tx)

		err := sessions.Upsert(ctx, &domain.ChatSession{
			ID:        turn.SessionID,
			Title:     truncateTitle(turn.Question),
			StartedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}

		err = messages.Create(ctx, &domain.ChatMessage{
			ID:        uuid.New().String(),
			SessionID: turn.SessionID,
			Role:      domain.RoleUser,
			Content:   turn.Question,
			CreatedAt: now,
		})
		if err != nil {
			return err
		}

		return messages.Create(ctx, &domain.ChatMessage{
			ID:               uuid.New().String(),
			SessionID:        turn.SessionID,
			Role:             domain.RoleAssistant,
			Content:          turn.Reply,
			ChartDescription: turn.Description,
			Source:           turn.Source,
			Spec:             turn.Spec,
			CreatedAt:        now,
		})
	})
}
