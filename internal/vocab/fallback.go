package vocab

import (
	"math/rand"

	"pandavocab/internal/domain"

	"github.com/google/uuid"
)

type word struct {
	hanzi, pinyin, meaning string
}

// Fallback samples from the built-in HSK tables
type Fallback struct {
	tables  map[int][]word
	shuffle func(n int, swap func(i, j int))
	newID   func() string
}

// NewFallback creates a sampler over the built-in tables
func NewFallback() *Fallback {
	return &Fallback{
		tables:  hskTables,
		shuffle: rand.Shuffle,
		newID:   uuid.NewString,
	}
}

// Sample returns up to count random entries of the level. Levels without
// data borrow from HSK 6, then HSK 1.
func (f *Fallback) Sample(level, count int) []domain.VocabularyEntry {
	source := f.tables[level]
	if len(source) == 0 {
		source = f.tables[6]
	}
	if len(source) == 0 {
		source = f.tables[1]
	}

	pool := make([]word, len(source))
	copy(pool, source)
	f.shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	if count < len(pool) {
		pool = pool[:count]
	}

	out := make([]domain.VocabularyEntry, len(pool))
	for i, w := range pool {
		out[i] = domain.VocabularyEntry{
			ID:      f.newID(),
			Hanzi:   w.hanzi,
			Pinyin:  w.pinyin,
			Meaning: w.meaning,
		}
	}
	return out
}

// Levels reports how many offline words each level has
func (f *Fallback) Levels() map[int]int {
	out := make(map[int]int, len(f.tables))
	for level, words := range f.tables {
		out[level] = len(words)
	}
	return out
}
