package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/csbot/pkg/log"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

type AppConfig struct {
	RuntimePath string `env:"CSBOT_RUNTIME_PATH" envDefault:".csbot"`
	// Conversation backend, both are scoped to the process
	Store string `env:"CSBOT_STORE" envDefault:"memory"`

	// Transport Flags
	EnableWeb      bool `env:"CSBOT_ENABLE_WEB" envDefault:"true"`
	EnableTelegram bool `env:"CSBOT_ENABLE_TELEGRAM" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := ParseAppConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func ParseAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	if c.Store != StoreMemory && c.Store != StoreSQLite {
		return nil, errUnknownStore(c.Store)
	}
	return c, nil
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetLogPath() string {
	return filepath.Join(c.RuntimePath, "csbot.log")
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}

func (c AppConfig) GetStore() string {
	return c.Store
}

func (c AppConfig) IsWebSelected() bool {
	return c.EnableWeb
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.EnableTelegram
}
