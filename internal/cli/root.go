package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"steplog/internal/config"
	"steplog/internal/system"
	"steplog/internal/ui"
	"steplog/pkg/steplog"
)

// exitError carries a child process exit code up to Execute.
type exitError struct {
	Code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "steplog",
		Short: "steplog – nested timers and messages for the console",
		Long: "steplog prints indented start/done lines for named timers and \"-- \" prefixed messages.\n" +
			"Replay scripts, time commands, or drive a logger over HTTP.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			system.SetDebug(s.Debug)
			return nil
		},
	}
	root.PersistentFlags().Bool("tabify", true, "indent timer lines by nesting depth (env "+config.EnvTabify+")")
	root.PersistentFlags().Bool("color", false, "color lines when writing to a terminal (env "+config.EnvColor+")")
	root.PersistentFlags().Bool("debug", false, "trace timer lifecycle to stderr (env "+config.EnvDebug+")")

	root.AddCommand(
		newRunCmd(),
		newExecCmd(),
		newServeCmd(),
		newSchemaCmd(),
		newFormatsCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.Code)
		}
		system.Logger.Error(err)
		os.Exit(1)
	}
}

// resolveSettings reads the environment, then applies flags the user set
// explicitly.
func resolveSettings(cmd *cobra.Command) (config.Settings, error) {
	s, err := config.FromEnv()
	if err != nil {
		return s, err
	}
	flags := cmd.Flags()
	if flags.Changed("tabify") {
		s.Tabify, _ = flags.GetBool("tabify")
	}
	if flags.Changed("color") {
		s.Color, _ = flags.GetBool("color")
	}
	if flags.Changed("debug") {
		s.Debug, _ = flags.GetBool("debug")
	}
	if flags.Lookup("addr") != nil && flags.Changed("addr") {
		s.Addr, _ = flags.GetString("addr")
	}
	return s, nil
}

// newLogger builds a steplog.Logger writing to the command's streams.
func newLogger(cmd *cobra.Command, s config.Settings) *steplog.Logger {
	opts := []steplog.Option{
		steplog.WithSinks(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		steplog.WithTabify(s.Tabify),
	}
	if s.Color {
		opts = append(opts, steplog.WithStyler(ui.DefaultStyles()))
	}
	if s.Debug {
		opts = append(opts, steplog.WithDebug(system.Logger))
	}
	return steplog.New(opts...)
}
