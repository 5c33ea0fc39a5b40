package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/csbot/pkg/log"
	"github.com/sandevgo/csbot/pkg/srv"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the assistant over HTTP and/or Telegram",
	Long:  `Starts the transports enabled by CSBOT_ENABLE_WEB and CSBOT_ENABLE_TELEGRAM. Each transport owns one conversation that lives as long as the process.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx, os.Stdout)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting csbot")

		a, err := newApp(ctx)
		if err != nil {
			return err
		}

		services, err := NewServices(ctx, a)
		if err != nil {
			a.store.Close()
			return err
		}

		ctx = srv.StartServices(ctx, services)

		// Wait for shutdown signal
		if err := srv.ShutdownServices(ctx, services); err != nil {
			return err
		}
		logger.Info().Msg("csbot has been shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
