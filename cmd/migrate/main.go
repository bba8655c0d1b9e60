package main

import (
	"context"

	"github.com/joho/godotenv"

	"shopfront/internal/config"
	"shopfront/internal/db"
	"shopfront/internal/logging"
	"shopfront/internal/migrate"
)

func main() {
	logger := logging.New(logging.Options{ServiceName: "migrate"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("apply migrations")
	}

	logger.Info().Msg("migrations applied")
}
