package board

import (
	"errors"
	"io"

	"github.com/bnema/tstack/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	snapshot application.Snapshot
	opts     RenderOptions
	styles   styles
	output   string
}

func newModel(snapshot application.Snapshot, opts RenderOptions) model {
	return model{
		snapshot: snapshot,
		opts:     opts,
		styles:   newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.snapshot, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render draws the board for snapshot through a one-shot bubbletea program.
// The program never reads input and discards its own output; it runs a single
// update so lipgloss resolves the terminal color profile the same way the
// interactive shells do, then hands back the final view as a string.
func Render(snapshot application.Snapshot, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(snapshot, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
