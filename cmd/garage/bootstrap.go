package main

import (
	"context"
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/garageworks/garage-service/internal/pkg/config"
	"github.com/garageworks/garage-service/pkg/logger"
)

// bootstrap loads .env (when present) and the environment, then initialises the logger.
func bootstrap(ctx context.Context) (*config.Config, zerolog.Logger, error) {
	dotenvErr := godotenv.Load()

	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.Log.Level,
		Pretty:  cfg.IsDevelopment(),
		Service: "garage-service",
	})
	if dotenvErr != nil && !errors.Is(dotenvErr, fs.ErrNotExist) {
		log.Warn().Err(dotenvErr).Msg("could not read .env file")
	}
	return cfg, log, nil
}
