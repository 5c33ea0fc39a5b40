package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sandevgo/csbot/internal/config"
	"github.com/sandevgo/csbot/internal/service/installer"
	"github.com/sandevgo/csbot/pkg/log"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:           "install",
	Short:         "Configure csbot interactively",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context(), os.Stdout)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting installation process")

		appCfg, err := config.ParseAppConfig()
		if err != nil {
			return err
		}
		runtimePath := appCfg.GetRuntimePath()

		// run wizard (includes save step)
		if _, err := installer.RunWizard(runtimePath); err != nil {
			return err
		}

		envPath := appCfg.GetEnvPath()
		if err := godotenv.Load(envPath); err != nil {
			logger.Warn().Err(err).Str("path", envPath).Msg("failed to load .env file")
		}

		logger.Info().Msgf("initialized runtime directory at: %s", runtimePath)
		logger.Info().Msg("Installation complete! Run 'csbot chat' or 'csbot serve'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
