package cmd

import (
	"fmt"

	boardadapter "github.com/bnema/tstack/internal/adapters/render/board"
	"github.com/bnema/tstack/internal/adapters/shell"
	"github.com/bnema/tstack/internal/application"
	"github.com/spf13/cobra"
)

type playOptions struct {
	recordPath string
	styled     bool
}

func newPlayCmd(app *app) *cobra.Command {
	var opts playOptions

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play from the numeric menu on stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.recordPath, "record", "", "Write the commands played to a replayable script")
	cmd.Flags().BoolVar(&opts.styled, "styled", false, "Render the board with colors")

	return cmd
}

func runPlay(cmd *cobra.Command, app *app, opts playOptions) error {
	session, seed, err := app.newSession(0)
	if err != nil {
		return err
	}

	renderer := shell.PlainRenderer
	if opts.styled {
		renderer = func(snapshot application.Snapshot) (string, error) {
			return app.boardRenderer(snapshot, boardadapter.RenderOptions{})
		}
	}

	if err := shell.New(session, cmd.InOrStdin(), cmd.OutOrStdout(), renderer).Run(cmd.Context()); err != nil {
		return err
	}

	if opts.recordPath == "" {
		return nil
	}

	script := application.Script{Seed: seed, Commands: session.History()}
	if err := app.scripts.Save(cmd.Context(), opts.recordPath, script); err != nil {
		return fmt.Errorf("record session: %w", err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Recorded %d commands to %s\n", len(script.Commands), opts.recordPath)
	return err
}
