package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"steplog/internal/script"
	"steplog/internal/system"
)

func newRunCmd() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Replay a script of start/end/log/error operations",
		Long: "Replay a script against a fresh logger. Files ending in .yaml or .yml use the YAML\n" +
			"list format; anything else is read one \"<verb> <argument>\" per line.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			path := args[0]
			if !watch {
				ops, err := script.Load(path)
				if err != nil {
					return err
				}
				return script.Replay(cmd.Context(), newLogger(cmd, s), ops)
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			system.Logger.Info("watching script", "path", path)
			return script.Watch(ctx, path, func() {
				ops, err := script.Load(path)
				if err != nil {
					system.Logger.Error("load script", "path", path, "err", err)
					return
				}
				if err := script.Replay(ctx, newLogger(cmd, s), ops); err != nil && ctx.Err() == nil {
					system.Logger.Error("replay script", "path", path, "err", err)
				}
			})
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "replay again whenever the script changes")
	return cmd
}
