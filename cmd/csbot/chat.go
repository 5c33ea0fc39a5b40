package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/sandevgo/csbot/internal/config"
	"github.com/sandevgo/csbot/internal/service/topic"
	"github.com/sandevgo/csbot/internal/transport/tui"
	"github.com/sandevgo/csbot/pkg/log"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the assistant in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}
		appCfg, err := config.ParseAppConfig()
		if err != nil {
			return err
		}

		// The window owns the terminal, so logs go to a file
		if err := os.MkdirAll(appCfg.GetRuntimePath(), 0755); err != nil {
			return fmt.Errorf("failed to create runtime directory: %w", err)
		}
		ctx, flushLog, err := log.NewFileLogger(ctx, debug || config.IsDebug(), appCfg.GetLogPath())
		if err != nil {
			return err
		}
		defer flushLog()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.store.Close()

		observe, updates := tui.Observe()
		session, err := a.newSession(ctx, observe)
		if err != nil {
			return err
		}

		return tui.Run(ctx, session, a.router, updates, topic.QuickQuestions)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
