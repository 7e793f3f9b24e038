package cmd

import (
	"encoding/json"
	"fmt"

	boardadapter "github.com/bnema/tstack/internal/adapters/render/board"
	"github.com/bnema/tstack/internal/application"
	"github.com/spf13/cobra"
)

type replayStep struct {
	Command string `json:"command"`
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type replayReport struct {
	Seed  int64                `json:"seed"`
	Steps []replayStep         `json:"steps"`
	Final application.Snapshot `json:"final"`
}

func newReplayCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "replay <script.toml>",
		Short: "Run a recorded command script and print the outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := app.scripts.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			session, seed, err := app.newSession(script.Seed)
			if err != nil {
				return err
			}

			report := replayReport{Seed: seed}
			for _, result := range session.Replay(script.Commands) {
				report.Steps = append(report.Steps, replayStep{
					Command: result.Command.Name(),
					OK:      result.OK(),
					Message: boardadapter.DescribeResult(result, session.Snapshot()),
				})
			}
			report.Final = session.Snapshot()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			return writeReplayReport(cmd, report)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func writeReplayReport(cmd *cobra.Command, report replayReport) error {
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "seed: %d\n", report.Seed); err != nil {
		return err
	}
	for i, step := range report.Steps {
		if _, err := fmt.Fprintf(out, "%d. %s: %s\n", i+1, step.Command, step.Message); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(out, boardadapter.Plain(report.Final))
	return err
}
