package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pandavocab/internal/config"
	"pandavocab/internal/handler"
	"pandavocab/internal/importer"
	"pandavocab/internal/middleware"
	"pandavocab/internal/service"
	"pandavocab/internal/storage"
	"pandavocab/internal/vocab"
	"pandavocab/internal/vocab/gemini"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting PandaVocab Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	if err := cfg.ValidateBot(); err != nil {
		logger.Fatal("Invalid bot config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("storage", cfg.StorageDriver),
		zap.Bool("gemini", cfg.Gemini.APIKey != ""),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Storage backend, migrations included
	kv, closeStore, err := storage.Open(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer closeStore()

	// Vocabulary source
	source := vocab.NewResilient(newGenerator(ctx, cfg, logger), vocab.NewFallback(), logger)

	// Initialize services
	rounds := service.NewRoundService(source, cfg.VocabCount, logger)
	imports := service.NewImportService(importer.NewParser(), logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error("Unhandled bot error", zap.Error(err))
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}
	bot.Use(middleware.Recover(logger), middleware.Logger(logger))

	logger.Info("Telegram bot initialized")

	// Initialize handler
	h := handler.NewHandler(bot, kv, rounds, imports, cfg.MismatchDelay, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}

// newGenerator returns the Gemini generator, or nil when it is not configured
func newGenerator(ctx context.Context, cfg *config.Config, logger *zap.Logger) vocab.Generator {
	if cfg.Gemini.APIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, using built-in vocabulary only")
		return nil
	}

	generator, err := gemini.NewGenerator(ctx, gemini.Config{
		APIKey:     cfg.Gemini.APIKey,
		Model:      cfg.Gemini.Model,
		MaxRetries: cfg.Gemini.MaxRetries,
	}, logger)
	if err != nil {
		logger.Error("Failed to create Gemini generator, using built-in vocabulary", zap.Error(err))
		return nil
	}
	return generator
}
