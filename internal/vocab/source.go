// Package vocab supplies HSK vocabulary lists, generated live when possible
// and sampled from built-in tables otherwise.
package vocab

import (
	"context"
	"fmt"

	"pandavocab/internal/domain"

	"go.uber.org/zap"
)

// Result is a vocabulary list together with where it came from
type Result struct {
	Entries []domain.VocabularyEntry

	// Fallback is true when Entries came from the offline tables
	Fallback bool

	// Warning explains why the fallback was used. It wraps
	// domain.ErrSourceUnavailable and is advisory only.
	Warning error
}

// Source returns count entries for an HSK level
type Source interface {
	Vocabulary(ctx context.Context, level, count int) (Result, error)
}

// Generator produces fresh entries on demand, e.g. from a language model
type Generator interface {
	Generate(ctx context.Context, level, count int) ([]domain.VocabularyEntry, error)
}

// Resilient tries the generator first and falls back to the offline tables
type Resilient struct {
	generator Generator
	fallback  *Fallback
	logger    *zap.Logger
}

// NewResilient creates a source. generator may be nil when no API key is configured.
func NewResilient(generator Generator, fallback *Fallback, logger *zap.Logger) *Resilient {
	return &Resilient{
		generator: generator,
		fallback:  fallback,
		logger:    logger,
	}
}

// Vocabulary implements Source
func (r *Resilient) Vocabulary(ctx context.Context, level, count int) (Result, error) {
	if !domain.ValidLevel(level) {
		return Result{}, fmt.Errorf("%w: got %d", domain.ErrInvalidLevel, level)
	}
	if count <= 0 {
		count = domain.DefaultCount
	}

	if r.generator == nil {
		return r.fallbackResult(level, count, fmt.Errorf("%w: generator not configured", domain.ErrSourceUnavailable)), nil
	}

	entries, err := r.generator.Generate(ctx, level, count)
	if err == nil && len(entries) == 0 {
		err = fmt.Errorf("generator returned no entries")
	}
	if err != nil {
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		r.logger.Warn("Vocabulary generation failed, using offline tables",
			zap.Int("level", level),
			zap.Int("count", count),
			zap.Error(err),
		)
		return r.fallbackResult(level, count, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)), nil
	}

	return Result{Entries: entries}, nil
}

func (r *Resilient) fallbackResult(level, count int, warning error) Result {
	return Result{
		Entries:  r.fallback.Sample(level, count),
		Fallback: true,
		Warning:  warning,
	}
}
