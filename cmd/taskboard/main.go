package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/taskboard/db"
	"github.com/monocle-dev/taskboard/internal/auth"
	"github.com/monocle-dev/taskboard/internal/config"
	"github.com/monocle-dev/taskboard/internal/logger"
	"github.com/monocle-dev/taskboard/internal/router"
)

func main() {
	cfg, err := config.Load()

	if err != nil {
		bootLog := logger.New("development", "info")
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logger.New(cfg.Env, cfg.LogLevel)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	conn, err := db.ConnectDatabase(cfg.Database.URL, log)

	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}

	if err = db.MigrateDatabase(conn); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	signer, err := auth.NewSigner(cfg.JWT.Secret, cfg.JWT.TTL)

	if err != nil {
		log.Fatal().Err(err).Msg("create token signer")
	}

	r := router.NewRouter(router.Dependencies{
		DB:             conn,
		Signer:         signer,
		Logger:         log,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := newServer(cfg.Server, r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	if sqlDB, err := conn.DB(); err == nil {
		sqlDB.Close()
	}
}

func newServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}
