package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/tstack/internal/application"
	"github.com/bnema/tstack/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultTitle = "Piece Manager"
	queueArrow   = " -> "
	stackBar     = " | "
	stackMarker  = "TOP <- "
	emptyLabel   = "empty"
	ruleWidth    = 50
)

type RenderOptions struct {
	Title         string
	ShowSessionID bool
}

// FormatPiece renders a piece as [TYPE|ID].
func FormatPiece(p domain.Piece) string {
	return fmt.Sprintf("[%s|%d]", p.Type, p.ID)
}

// FormatQueue renders queued pieces front-to-back.
func FormatQueue(pieces []domain.Piece, capacity int) string {
	return queueLabel(len(pieces), capacity) + joinPieces(pieces, queueArrow, "", FormatPiece)
}

// FormatStack renders reserved pieces top-to-bottom.
func FormatStack(pieces []domain.Piece, capacity int) string {
	return stackLabel(len(pieces), capacity) + joinPieces(pieces, stackBar, stackMarker, FormatPiece)
}

// Plain renders the board without styling.
func Plain(snapshot application.Snapshot) string {
	return strings.Join([]string{
		FormatQueue(snapshot.Queue, snapshot.QueueCapacity),
		FormatStack(snapshot.Stack, snapshot.StackCapacity),
	}, "\n")
}

// View renders the styled board without running a program; interactive
// shells call it from their own render loop.
func View(snapshot application.Snapshot, opts RenderOptions) string {
	return renderView(snapshot, opts, newStyles())
}

func renderView(snapshot application.Snapshot, opts RenderOptions, s styles) string {
	title := opts.Title
	if title == "" {
		title = defaultTitle
	}

	lines := []string{s.title.Render(title)}
	if opts.ShowSessionID && snapshot.SessionID != "" {
		lines = append(lines, s.header.Render("session: "+snapshot.SessionID))
	}

	lines = append(lines,
		s.rule.Render(strings.Repeat("-", ruleWidth)),
		s.label.Render(queueLabel(len(snapshot.Queue), snapshot.QueueCapacity))+
			styledPieces(snapshot.Queue, s.arrow.Render(queueArrow), "", s),
		s.label.Render(stackLabel(len(snapshot.Stack), snapshot.StackCapacity))+
			styledPieces(snapshot.Stack, s.arrow.Render(stackBar), s.marker.Render(stackMarker), s),
		s.rule.Render(strings.Repeat("-", ruleWidth)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func styledPieces(pieces []domain.Piece, sep, prefix string, s styles) string {
	if len(pieces) == 0 {
		return s.empty.Render(emptyLabel)
	}

	return joinPieces(pieces, sep, prefix, s.piece)
}

func joinPieces(pieces []domain.Piece, sep, prefix string, format func(domain.Piece) string) string {
	if len(pieces) == 0 {
		return emptyLabel
	}

	parts := make([]string, 0, len(pieces))
	for _, p := range pieces {
		parts = append(parts, format(p))
	}

	return prefix + strings.Join(parts, sep)
}

func queueLabel(n, capacity int) string {
	return fmt.Sprintf("Queue (%d/%d): ", n, capacity)
}

func stackLabel(n, capacity int) string {
	return fmt.Sprintf("Stack (%d/%d): ", n, capacity)
}

// DescribeResult turns a command outcome into the message shown to the
// player. snapshot is the state after the command ran.
func DescribeResult(result application.Result, snapshot application.Snapshot) string {
	if result.Err != nil {
		return describeFailure(result, snapshot)
	}

	switch result.Command {
	case application.CommandQuit:
		return "Leaving the piece manager."
	case application.CommandPlay:
		return fmt.Sprintf("Played %s. New piece %s added to the back of the queue.", formatOptional(result.Moved), formatOptional(result.Generated))
	case application.CommandReserve:
		return fmt.Sprintf("Reserved %s. New piece %s added to the back of the queue.", formatOptional(result.Moved), formatOptional(result.Generated))
	case application.CommandUseReserved:
		return fmt.Sprintf("Used reserved piece %s.", formatOptional(result.Moved))
	case application.CommandSwapFront:
		if len(result.Swapped) == 1 {
			swap := result.Swapped[0]
			return fmt.Sprintf("Swapped queue front %s with stack top %s.", FormatPiece(swap.Queue), FormatPiece(swap.Stack))
		}
		return "Swapped queue front with stack top."
	case application.CommandSwapTriple:
		return fmt.Sprintf("Swapped the first %d queued pieces with the %d reserved pieces.", len(result.Swapped), len(result.Swapped))
	default:
		return result.Command.Label()
	}
}

func describeFailure(result application.Result, snapshot application.Snapshot) string {
	queued, reserved := len(snapshot.Queue), len(snapshot.Stack)

	var precondition *domain.PreconditionError
	switch {
	case result.Command == application.CommandSwapFront && errors.As(result.Err, &precondition):
		return fmt.Sprintf("Swap failed: queue or stack is empty (queue: %d, stack: %d).", queued, reserved)
	case errors.Is(result.Err, domain.ErrQueueTooShort):
		return fmt.Sprintf("Swap failed: the queue needs at least 3 pieces (has %d).", queued)
	case errors.Is(result.Err, domain.ErrStackNotFull):
		return fmt.Sprintf("Swap failed: the stack needs exactly %d pieces (has %d).", snapshot.StackCapacity, reserved)
	case errors.Is(result.Err, domain.ErrStackFull):
		return "Reserve stack is full! Cannot reserve."
	case errors.Is(result.Err, domain.ErrStackEmpty):
		return "Reserve stack is empty! No reserved piece to use."
	case errors.Is(result.Err, domain.ErrQueueEmpty) && result.Command == application.CommandReserve:
		return "Queue is empty! Nothing to reserve."
	case errors.Is(result.Err, domain.ErrQueueEmpty):
		return "Queue is empty! Nothing to play."
	default:
		return result.Err.Error()
	}
}

func formatOptional(p *domain.Piece) string {
	if p == nil {
		return "-"
	}
	return FormatPiece(*p)
}
