package cli

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"steplog/internal/config"
	"steplog/internal/system"
	"steplog/internal/webui/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Drive a logger over HTTP",
		Long:  "Start an HTTP server whose /api endpoints start and end timers and write messages to this process's stdout and stderr.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			srv := &server.Server{Addr: s.Addr, Logger: newLogger(cmd, s)}

			// Handle Ctrl+C
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			system.Logger.Info("starting server", "url", fmt.Sprintf("http://%s/api/health", s.Addr))
			if err := srv.Start(ctx); err != nil {
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringP("addr", "a", config.DefaultAddr, "address to bind (host:port, env "+config.EnvAddr+")")
	return cmd
}
