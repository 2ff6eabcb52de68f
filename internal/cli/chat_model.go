package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/bizlens/bizlens/internal/assistant"
	"github.com/bizlens/bizlens/internal/cli/formatter"
	"github.com/bizlens/bizlens/internal/domain"
)

// chatModel is the interactive chat loop. Each turn runs synchronously
// through the assistant; the session's chart memory lives in state so
// follow-ups like "also add profit margin" patch the active chart.
type chatModel struct {
	app     *App
	state   *domain.SessionState
	actions []assistant.QuickAction

	input    textinput.Model
	messages []string
	quitting bool
}

func newChatModel(app *App) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	m := &chatModel{
		app:     app,
		state:   domain.NewSessionState(uuid.New().String()),
		actions: assistant.QuickActions(),
		input:   ti,
	}
	m.messages = append(m.messages, formatter.FormatChatWelcome(m.actions))

	return m
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			input := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if input == "" {
				return m, nil
			}
			return m.handleInput(input)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}

	b.WriteString(formatter.StyleGreen.Render("you") + formatter.Dim("> "))
	b.WriteString(m.input.View())

	return b.String()
}

func (m *chatModel) handleInput(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(input) {
	case "/quit", "/exit", "/q", "quit", "exit":
		m.quitting = true
		return m, tea.Quit
	case "/clear":
		m.state.Clear()
		m.messages = append(m.messages, formatter.Dim("Chart cleared. The next question starts a fresh chart."))
		return m, nil
	}

	// Bare quick-action number runs its preset question.
	question := input
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(m.actions) {
		question = m.actions[n-1].Question
	}

	m.messages = append(m.messages, formatter.FormatQuestion(question))

	turn, err := m.app.Assistant.HandleTurn(context.Background(), m.state, question)
	if err != nil {
		m.messages = append(m.messages, formatter.StyleRed.Render(err.Error()))
		return m, nil
	}
	m.messages = append(m.messages, formatter.FormatAnswer(turn))

	return m, nil
}
