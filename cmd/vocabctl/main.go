// Command vocabctl manages saved vocabulary sets and previews generated
// HSK word lists from the terminal.
package main

import (
	"context"
	"fmt"
	"os"

	"pandavocab/internal/config"
	"pandavocab/internal/importer"
	"pandavocab/internal/repository"
	"pandavocab/internal/service"
	"pandavocab/internal/storage"
	"pandavocab/internal/vocab"
	"pandavocab/internal/vocab/gemini"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the dependencies commands resolve lazily
type app struct {
	logger *zap.Logger
	chatID int64

	openKV func() (repository.KVStore, func() error, error)
	source func(ctx context.Context) (vocab.Source, error)
	parser service.EntryParser
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := newRootCommand(newApp(logger)).Execute(); err != nil {
		os.Exit(1)
	}
}

func newApp(logger *zap.Logger) *app {
	return &app{
		logger: logger,
		openKV: func() (repository.KVStore, func() error, error) {
			cfg, err := config.Load()
			if err != nil {
				return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
			}
			return storage.Open(cfg, logger)
		},
		source: func(ctx context.Context) (vocab.Source, error) {
			cfg, err := config.Load()
			if err != nil {
				return nil, fmt.Errorf("failed to load configuration: %w", err)
			}

			var generator vocab.Generator
			if cfg.Gemini.APIKey != "" {
				g, err := gemini.NewGenerator(ctx, gemini.Config{
					APIKey:     cfg.Gemini.APIKey,
					Model:      cfg.Gemini.Model,
					MaxRetries: cfg.Gemini.MaxRetries,
				}, logger)
				if err != nil {
					return nil, err
				}
				generator = g
			}
			return vocab.NewResilient(generator, vocab.NewFallback(), logger), nil
		},
		parser: importer.NewParser(),
	}
}

func newRootCommand(a *app) *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "vocabctl",
		Short:         "Manage PandaVocab vocabulary sets",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCommand.PersistentFlags()
	flags.Int64Var(&a.chatID, "chat", 0, "Telegram chat whose sets to manage (0 for the shared store)")

	rootCommand.AddCommand(newSetsCommand(a))
	rootCommand.AddCommand(newGenerateCommand(a))
	return rootCommand
}

// withStore opens the set store for the selected chat and runs fn with it
func (a *app) withStore(fn func(store *service.SetStore) error) error {
	kv, closeKV, err := a.openKV()
	if err != nil {
		return err
	}
	defer closeKV()

	key := service.DefaultStorageKey
	if a.chatID != 0 {
		key = service.UserStorageKey(a.chatID)
	}
	return fn(service.NewSetStore(kv, key, a.logger))
}
