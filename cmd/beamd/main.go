package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mazohq/beam-parser/internal/common"
	"github.com/mazohq/beam-parser/internal/export"
	"github.com/mazohq/beam-parser/internal/extract"
	"github.com/mazohq/beam-parser/internal/history"
	"github.com/mazohq/beam-parser/internal/llm/openai"
	"github.com/mazohq/beam-parser/internal/parser"
	"github.com/mazohq/beam-parser/internal/server"
	"github.com/mazohq/beam-parser/internal/session"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := history.NewStore(cfg.History.DBPath)
	if err != nil {
		logger.Error("failed to open history store", "path", cfg.History.DBPath, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("history store close", "error", err)
		}
	}()

	client := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	extractor := extract.NewExtractor(logger)
	parserSvc := parser.NewService(cfg.Parser, extractor, client, logger)
	sess := session.New(cfg.Session, parserSvc, logger)
	exporter := export.NewService(logger)

	srv := server.New(*cfg, sess, exporter, store, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info("shutting down...")
		if err := srv.Shutdown(); err != nil {
			logger.Error("server shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "addr", cfg.Server.Addr, "model", cfg.LLM.Model)
	if err := srv.Listen(); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
	logger.Info("stopped")
}
