// Package tui is a full-screen bubbletea front end for a session.
package tui

import (
	"strings"

	"github.com/bnema/tstack/internal/adapters/render/board"
	"github.com/bnema/tstack/internal/application"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Model struct {
	session  *application.Session
	keys     keyMap
	help     help.Model
	opts     board.RenderOptions
	message  string
	failed   bool
	quitting bool

	okStyle   lipgloss.Style
	failStyle lipgloss.Style
}

func New(session *application.Session, opts board.RenderOptions) Model {
	return Model{
		session:   session,
		keys:      newKeyMap(),
		help:      help.New(),
		opts:      opts,
		okStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		failStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			m.failed = false
			m.message = board.DescribeResult(m.session.Execute(application.CommandQuit), m.session.Snapshot())
			return m, tea.Quit
		}

		for _, entry := range m.keys.actions() {
			if key.Matches(msg, entry.binding) {
				result := m.session.Execute(entry.command)
				m.failed = !result.OK()
				m.message = board.DescribeResult(result, m.session.Snapshot())
				return m, nil
			}
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return m.message + "\n"
	}

	var b strings.Builder
	b.WriteString(board.View(m.session.Snapshot(), m.opts))
	b.WriteString("\n\n")
	if m.message != "" {
		style := m.okStyle
		if m.failed {
			style = m.failStyle
		}
		b.WriteString(style.Render(m.message))
		b.WriteString("\n\n")
	}
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// Message is the outcome text of the last key press.
func (m Model) Message() string {
	return m.message
}

func (m Model) Failed() bool {
	return m.failed
}
