package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"artscout/internal/app/server/api"
	"artscout/internal/app/server/config"
	"artscout/internal/artsy"
	"artscout/internal/infrastructure/storage/postgres"
	"artscout/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	storage, err := postgres.New(cfg)
	if err != nil {
		log.Error("storage init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	tokens := artsy.NewTokenSource(
		cfg.Artsy.BaseURL,
		cfg.Artsy.ClientID,
		cfg.Artsy.ClientSecret,
		artsy.FileStore{Path: cfg.Artsy.TokenFile},
		log,
	)

	// Прогреваем токен каталога заранее; неудача не мешает старту.
	warmCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if _, err := tokens.Token(warmCtx); err != nil {
		log.Warn("catalog token prefetch failed", slog.String("error", err.Error()))
	}
	cancel()

	catalog := artsy.NewClient(cfg.Artsy.BaseURL, tokens, log)
	mux := api.New(storage, catalog, cfg, log)

	server := &http.Server{
		Addr:    cfg.Server.RunAddress,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server starting", slog.String("address", cfg.Server.RunAddress))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", slog.String("error", err.Error()))
	}
	log.Info("server stopped")
}
