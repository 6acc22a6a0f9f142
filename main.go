package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/gabrielbrunop/site/internal/config"
	"github.com/gabrielbrunop/site/internal/logger"
	"github.com/gabrielbrunop/site/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	srv, err := server.New(cfg, profile, log)
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("webserver error")
		return err
	}
	log.Info().Msg("webserver terminated")
	return nil
}
