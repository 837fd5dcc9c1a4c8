package main

import (
	"context"
	"os"

	"github.com/monocle-dev/taskboard/db"
	"github.com/monocle-dev/taskboard/internal/config"
	"github.com/monocle-dev/taskboard/internal/logger"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()

	if err != nil {
		bootLog := logger.New("development", "info")
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logger.New(cfg.Env, cfg.LogLevel)

	result, err := run(context.Background(), cfg.Database.URL, log)

	if err != nil {
		log.Error().Err(err).Msg("seed failed")
		os.Exit(1)
	}

	log.Info().
		Str("email", result.User.Email).
		Str("password", db.SeedPassword).
		Int("projects", len(result.Projects)).
		Int("tasks", len(result.Tasks)).
		Msg("seed completed")
}

func run(ctx context.Context, dsn string, log zerolog.Logger) (*db.SeedResult, error) {
	conn, err := db.ConnectDatabase(dsn, log)

	if err != nil {
		return nil, err
	}

	defer func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	if err = db.MigrateDatabase(conn); err != nil {
		return nil, err
	}

	return db.Seed(ctx, conn)
}
