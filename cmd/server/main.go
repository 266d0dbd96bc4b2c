package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/hongminglow/catalog-be/internal/config"
	"github.com/hongminglow/catalog-be/internal/logger"
	"github.com/hongminglow/catalog-be/internal/search"
	"github.com/hongminglow/catalog-be/internal/search/elastic"
	"github.com/hongminglow/catalog-be/internal/server"
	"github.com/hongminglow/catalog-be/internal/storage/postgres"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log := logger.New("info", "json")
		log.Fatal().Err(err).Msg("load config")
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		log.Info().Msg("no .env file found; relying on existing environment")
	}

	ctx := context.Background()
	store, err := postgres.NewStore(ctx, postgres.Options{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DBMaxConns,
		Migrate:     true,
		TraceSQL:    log.GetLevel() <= zerolog.DebugLevel,
		Logger:      log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("init database")
	}
	defer store.Close()

	var engine search.Engine
	if cfg.SearchEnabled() {
		client, err := elastic.New(cfg.SearchNode, cfg.SearchIndex)
		if err != nil {
			log.Fatal().Err(err).Msg("init search engine client")
		}
		engine = client
		log.Info().Str("node", cfg.SearchNode).Str("index", cfg.SearchIndex).Msg("full-text search enabled")
	} else {
		log.Info().Msg("ES_NODE not set; full-text search uses the substring fallback")
	}

	srv := server.New(cfg, log, store, engine)

	go func() {
		log.Info().Str("addr", cfg.HTTPAddress()).Msg("catalog backend listening")
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
	}
}
