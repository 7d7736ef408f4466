package testutil

import (
	"fmt"
	"time"

	"pandavocab/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestEntry creates a vocabulary entry
func NewTestEntry(id, hanzi, pinyin, meaning string) domain.VocabularyEntry {
	return domain.VocabularyEntry{
		ID:      id,
		Hanzi:   hanzi,
		Pinyin:  pinyin,
		Meaning: meaning,
	}
}

// NewTestEntries creates n distinct entries
func NewTestEntries(n int) []domain.VocabularyEntry {
	out := make([]domain.VocabularyEntry, n)
	for i := range out {
		out[i] = NewTestEntry(
			fmt.Sprintf("e%d", i),
			fmt.Sprintf("词%d", i),
			fmt.Sprintf("ci%d", i),
			fmt.Sprintf("từ %d", i),
		)
	}
	return out
}

// NewTestSet creates a vocabulary set
func NewTestSet(id, name string, items ...domain.VocabularyEntry) domain.VocabularySet {
	if items == nil {
		items = []domain.VocabularyEntry{}
	}
	return domain.VocabularySet{
		ID:        id,
		Name:      name,
		CreatedAt: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		Items:     items,
	}
}

// SequentialIDs returns an id generator yielding prefix-1, prefix-2, ...
func SequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}
