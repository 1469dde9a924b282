package cli

import (
	"github.com/spf13/cobra"

	"steplog/internal/tools"
)

func newExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec [--] <command> [args...]",
		Short: "Run a command between a started and a done line",
		Long:  "Run a command with its output passed through, timing it under its command line. The exit code is propagated.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			code, err := tools.Run(cmd.Context(), newLogger(cmd, s), args[0], args[1:], cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if code != 0 {
				return &exitError{Code: code}
			}
			return nil
		},
	}
	// everything after the command name belongs to the command
	cmd.Flags().SetInterspersed(false)
	return cmd
}
