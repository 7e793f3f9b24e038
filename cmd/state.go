package cmd

import (
	"encoding/json"
	"fmt"

	boardadapter "github.com/bnema/tstack/internal/adapters/render/board"
	"github.com/spf13/cobra"
)

func newStateCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Print the opening board for the resolved seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, _, err := app.newSession(0)
			if err != nil {
				return err
			}

			snapshot := session.Snapshot()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(snapshot)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), boardadapter.Plain(snapshot))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
