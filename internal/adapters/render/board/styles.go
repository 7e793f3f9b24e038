package board

import (
	"github.com/bnema/tstack/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	rule   lipgloss.Style
	arrow  lipgloss.Style
	marker lipgloss.Style
	empty  lipgloss.Style
	pieces map[domain.PieceType]lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true),
		header: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		label:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		rule:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		arrow:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		marker: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		empty:  lipgloss.NewStyle().Faint(true),
		pieces: map[domain.PieceType]lipgloss.Style{
			domain.PieceI: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
			domain.PieceJ: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
			domain.PieceL: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
			domain.PieceO: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
			domain.PieceS: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),
			domain.PieceT: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("129")),
			domain.PieceZ: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		},
	}
}

func (s styles) piece(p domain.Piece) string {
	style, ok := s.pieces[p.Type]
	if !ok {
		style = s.label
	}

	return style.Render(FormatPiece(p))
}
