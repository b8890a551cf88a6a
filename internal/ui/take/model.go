package take

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options configures the terminal UI model.
type Options struct {
	NoColor bool
}

// Model renders a quiz or check using Bubble Tea.
type Model struct {
	session Session
	keys    keyMap
	help    help.Model
	width   int
	noColor bool
}

// NewModel constructs a model for target.
func NewModel(target Target, opts Options) Model {
	return Model{
		session: NewSession(target),
		keys:    defaultKeys(),
		help:    help.New(),
		noColor: opts.NoColor,
	}
}

// Session returns the current session state.
func (m Model) Session() Session {
	return m.session
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update maps key presses to session actions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.help.Width = typed.Width
		return m, nil
	case tea.KeyMsg:
		options := 0
		if m.session.Target != nil && m.session.Target.Len() > 0 {
			options = len(m.session.Target.Question(m.session.Current).Options)
		}
		m.session = Reduce(m.session, actionForKey(m.keys, typed, options))
		if m.session.Quitting {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the current question, feedback, and score.
func (m Model) View() string {
	if m.session.Target == nil || m.session.Target.Len() == 0 {
		return "Nothing to take.\n"
	}
	parts := []string{
		renderHeader(m.session, m.noColor),
		renderProgress(m.session, m.noColor),
		"",
		renderQuestion(m.session, m.noColor),
	}
	if feedback := renderFeedback(m.session, m.noColor); feedback != "" {
		parts = append(parts, "", feedback)
	}
	if m.session.Done() {
		parts = append(parts, "", renderFinal(m.session, m.noColor))
		if m.session.Target.Len() > 1 {
			parts = append(parts, renderReview(m.session, m.width, m.noColor))
		}
	}
	parts = append(parts, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}
