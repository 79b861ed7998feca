package main

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/quickbench/quickbench/timer"
	"github.com/spf13/cobra"
)

func newTimeCommand() *cobra.Command {
	var label string
	cmd := &cobra.Command{
		Use:   "time [--label name] -- <command> [args...]",
		Short: "Run a command and report how long it took",
		Long: `Run an external command and report its wall-clock duration on stderr,
using the same format as the benchmark's timing lines.

The report is printed even when the command fails; the command's failure is
returned unchanged.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if label == "" {
				label = filepath.Base(args[0])
			}
			err := timer.Time(label, func() error {
				c := exec.CommandContext(cmd.Context(), args[0], args[1:]...)
				c.Stdin = cmd.InOrStdin()
				c.Stdout = cmd.OutOrStdout()
				c.Stderr = cmd.ErrOrStderr()
				return c.Run()
			}, timer.WithWriter(cmd.ErrOrStderr()))
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&label, "label", "l", "", "Label for the timing line (default: command name)")
	return cmd
}
