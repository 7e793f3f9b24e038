package tui

import (
	"testing"

	"github.com/bnema/tstack/internal/adapters/random"
	"github.com/bnema/tstack/internal/adapters/render/board"
	"github.com/bnema/tstack/internal/application"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func newTestModel() (Model, *application.Session) {
	session := application.NewSession(random.New(11), nil)
	return New(session, board.RenderOptions{}), session
}

func TestModelInitialView(t *testing.T) {
	m, _ := newTestModel()

	assert.Nil(t, m.Init())
	view := m.View()
	assert.Contains(t, view, "Queue (5/5):")
	assert.Contains(t, view, "Stack (0/3):")
	assert.Contains(t, view, "play")
	assert.Contains(t, view, "quit")
}

func TestModelKeysDriveSession(t *testing.T) {
	m, session := newTestModel()

	m, cmd := press(t, m, "2")
	assert.Nil(t, cmd)
	assert.False(t, m.Failed())
	assert.Contains(t, m.Message(), "Reserved [")
	assert.Len(t, session.Snapshot().Stack, 1)

	m, _ = press(t, m, "4")
	assert.Contains(t, m.Message(), "Swapped queue front")

	m, _ = press(t, m, "5")
	assert.True(t, m.Failed())
	assert.Contains(t, m.Message(), "needs exactly 3 pieces (has 1)")
	assert.Contains(t, m.View(), "needs exactly 3 pieces")

	m, _ = press(t, m, "3", "3")
	assert.True(t, m.Failed())
	assert.Contains(t, m.Message(), "Reserve stack is empty!")

	m, _ = press(t, m, "1")
	assert.False(t, m.Failed())
	assert.Contains(t, m.Message(), "Played [")
}

func TestModelIgnoresUnboundKeys(t *testing.T) {
	m, session := newTestModel()
	before := session.Snapshot()

	m, cmd := press(t, m, "x")

	assert.Nil(t, cmd)
	assert.Empty(t, m.Message())
	assert.Equal(t, before, session.Snapshot())
}

func TestModelQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("0")},
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		m, _ := newTestModel()

		next, cmd := m.Update(msg)

		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Equal(t, "Leaving the piece manager.\n", next.View())
	}
}

func TestModelTracksWindowWidth(t *testing.T) {
	m, _ := newTestModel()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	assert.Equal(t, 40, next.(Model).help.Width)
}
