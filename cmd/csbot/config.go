package main

import (
	"fmt"
	"os"

	"github.com/sandevgo/csbot/internal/config"
	"github.com/sandevgo/csbot/pkg/env"
	"github.com/spf13/cobra"
)

var showSecrets bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as .env lines",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context(), os.Stderr)
		defer flushLog()

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}

		appCfg, err := config.ParseAppConfig()
		if err != nil {
			return err
		}

		configs := []any{appCfg, config.NewChatConfig(ctx)}
		if appCfg.IsWebSelected() {
			configs = append(configs, config.NewWebConfig(ctx))
		}
		if appCfg.IsTelegramSelected() {
			configs = append(configs, config.NewTelegramConfig(ctx))
		}

		out, err := env.MarshalEnvWith(env.Options{Mask: !showSecrets, KeepZero: true}, configs...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	configCmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "print tokens in clear text")
	rootCmd.AddCommand(configCmd)
}
