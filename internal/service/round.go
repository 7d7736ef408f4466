package service

import (
	"context"
	"fmt"

	"pandavocab/internal/domain"
	"pandavocab/internal/vocab"

	"go.uber.org/zap"
)

// RoundService picks the vocabulary for the next round
type RoundService struct {
	source vocab.Source
	count  int
	logger *zap.Logger
}

// NewRoundService creates a round service asking source for count words per HSK round
func NewRoundService(source vocab.Source, count int, logger *zap.Logger) *RoundService {
	if count <= 0 {
		count = domain.DefaultCount
	}
	return &RoundService{
		source: source,
		count:  count,
		logger: logger,
	}
}

// Vocabulary returns a fresh word list for cfg. HSK rounds ask the source,
// set rounds resample the saved set.
func (s *RoundService) Vocabulary(ctx context.Context, store *SetStore, cfg domain.GameConfig) (vocab.Result, error) {
	switch cfg.Source {
	case domain.SourceHSK:
		result, err := s.source.Vocabulary(ctx, cfg.Level, s.count)
		if err != nil {
			return vocab.Result{}, err
		}
		if result.Warning != nil {
			s.logger.Warn("Round uses offline vocabulary",
				zap.Int("level", cfg.Level),
				zap.Error(result.Warning),
			)
		}
		return result, nil

	case domain.SourceSet:
		entries, err := store.Sample(cfg.SetID, domain.MaxRoundSize)
		if err != nil {
			return vocab.Result{}, err
		}
		return vocab.Result{Entries: entries}, nil
	}

	return vocab.Result{}, fmt.Errorf("unknown vocabulary source %q", cfg.Source)
}
