package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quickbench",
		Short: "Quickbench - score trained models on a held-out test set",
		Long: `Quickbench scores a set of already-trained models against one labeled test set.

It infers whether the task is classification or regression from the true
values, times every model's predictions, and prints a ranked comparison table.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newTimeCommand())

	return cmd
}

func execute(ctx context.Context) error {
	rootCmd := newRootCommand()
	return rootCmd.ExecuteContext(ctx)
}
