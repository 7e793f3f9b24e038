// Package shell runs the numeric menu loop that drives a session from a
// line-oriented reader.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bnema/tstack/internal/adapters/render/board"
	"github.com/bnema/tstack/internal/application"
)

const (
	prompt         = "Choose an option: "
	invalidInput   = "Invalid input. Try again."
	invalidOption  = "Invalid option. Choose between 0 and 5."
	bannerTemplate = "--- %s started ---"
)

// Renderer draws the board shown before every prompt.
type Renderer func(application.Snapshot) (string, error)

// PlainRenderer renders the board without styling.
func PlainRenderer(snapshot application.Snapshot) (string, error) {
	return board.Plain(snapshot), nil
}

type Shell struct {
	session *application.Session
	in      *bufio.Reader
	out     io.Writer
	render  Renderer
	title   string
}

func New(session *application.Session, in io.Reader, out io.Writer, render Renderer) *Shell {
	if render == nil {
		render = PlainRenderer
	}

	return &Shell{
		session: session,
		in:      bufio.NewReader(in),
		out:     out,
		render:  render,
		title:   "Piece manager",
	}
}

// Run shows the board and menu, reads one choice per line and executes it
// until the player quits or the input ends.
func (s *Shell) Run(ctx context.Context) error {
	s.printf(bannerTemplate+"\n", s.title)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.showBoard(); err != nil {
			return err
		}
		s.showMenu()

		line, readErr := s.in.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("read menu choice: %w", readErr)
		}

		input := strings.TrimSpace(line)
		if input == "" && errors.Is(readErr, io.EOF) {
			s.println("")
			s.println(board.DescribeResult(application.Result{Command: application.CommandQuit}, s.session.Snapshot()))
			return nil
		}

		quit := s.handle(input)
		if quit || errors.Is(readErr, io.EOF) {
			if !quit {
				s.println(board.DescribeResult(application.Result{Command: application.CommandQuit}, s.session.Snapshot()))
			}
			return nil
		}
	}
}

// handle executes one menu choice and reports whether the loop should end.
func (s *Shell) handle(input string) bool {
	s.println("")

	choice, err := strconv.Atoi(input)
	if err != nil {
		s.println(invalidInput)
		return false
	}

	cmd := application.Command(choice)
	if !cmd.Valid() {
		s.println(invalidOption)
		return false
	}

	result := s.session.Execute(cmd)
	s.println(board.DescribeResult(result, s.session.Snapshot()))

	return cmd == application.CommandQuit
}

func (s *Shell) showBoard() error {
	rendered, err := s.render(s.session.Snapshot())
	if err != nil {
		return fmt.Errorf("render board: %w", err)
	}

	s.println("")
	s.println(rendered)
	return nil
}

func (s *Shell) showMenu() {
	s.println("")
	s.println("Actions:")
	for _, cmd := range application.Commands {
		s.printf("%s - %s\n", cmd.MenuKey(), cmd.Label())
	}
	s.printf("%s", prompt)
}

func (s *Shell) println(line string) {
	_, _ = fmt.Fprintln(s.out, line)
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
