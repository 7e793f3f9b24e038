package cmd

import (
	"fmt"

	boardadapter "github.com/bnema/tstack/internal/adapters/render/board"
	"github.com/bnema/tstack/internal/adapters/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *app) *cobra.Command {
	var altScreen bool
	var showSession bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Play in a full-screen terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, _, err := app.newSession(0)
			if err != nil {
				return err
			}

			options := []tea.ProgramOption{
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			}
			if altScreen {
				options = append(options, tea.WithAltScreen())
			}

			model := tui.New(session, boardadapter.RenderOptions{ShowSessionID: showSession})
			if _, err := tea.NewProgram(model, options...).Run(); err != nil {
				return fmt.Errorf("run tui: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&altScreen, "alt-screen", false, "Use the terminal alternate screen")
	cmd.Flags().BoolVar(&showSession, "show-session", false, "Show the session id in the header")

	return cmd
}
