package cmd

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := newApp()

	rootCmd := &cobra.Command{
		Use:           "tstack",
		Short:         "tstack: manage a queue of upcoming pieces and a reserve stack",
		Long:          "tstack keeps a five-slot queue of upcoming pieces and a three-slot reserve stack, and lets you play, reserve, use and exchange pieces between them from an interactive menu.",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.load(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			app.close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, app, playOptions{})
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.Int64Var(&app.seed, "seed", 0, "Seed for piece generation (0 picks a random seed)")
	flags.BoolVarP(&app.verbose, "verbose", "v", false, "Log every command at debug level to stderr")
	flags.StringVar(&app.configPath, "config", "", "Config file (default $HOME/.config/tstack/config.toml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newPlayCmd(app),
		newTUICmd(app),
		newReplayCmd(app),
		newStateCmd(app),
	)

	return rootCmd
}
