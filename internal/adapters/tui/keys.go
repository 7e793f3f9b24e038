package tui

import (
	"github.com/bnema/tstack/internal/application"
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Play       key.Binding
	Reserve    key.Binding
	Use        key.Binding
	SwapFront  key.Binding
	SwapTriple key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Play:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "play")),
		Reserve:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "reserve")),
		Use:        key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "use reserved")),
		SwapFront:  key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "swap front/top")),
		SwapTriple: key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "swap three")),
		Quit:       key.NewBinding(key.WithKeys("0", "q", "ctrl+c"), key.WithHelp("0/q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Reserve, k.Use, k.SwapFront, k.SwapTriple, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Reserve, k.Use},
		{k.SwapFront, k.SwapTriple, k.Quit},
	}
}

type action struct {
	binding key.Binding
	command application.Command
}

// actions pairs each action binding with its session command.
func (k keyMap) actions() []action {
	return []action{
		{k.Play, application.CommandPlay},
		{k.Reserve, application.CommandReserve},
		{k.Use, application.CommandUseReserved},
		{k.SwapFront, application.CommandSwapFront},
		{k.SwapTriple, application.CommandSwapTriple},
	}
}
