package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/csbot/pkg/log"
)

type WebConfig struct {
	Addr         string   `env:"CSBOT_WEB_ADDR" envDefault:":8080"`
	AllowOrigins []string `env:"CSBOT_WEB_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`
}

func NewWebConfig(ctx context.Context) *WebConfig {
	c := &WebConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Web config")
	}
	return c
}
