package vocab

import (
	"testing"

	"pandavocab/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestFallback_TablesCoverEveryLevel(t *testing.T) {
	f := NewFallback()

	for level := domain.MinLevel; level <= domain.MaxLevel; level++ {
		assert.GreaterOrEqual(t, f.Levels()[level], domain.MinPlayable, "level %d", level)
	}
}

func TestFallback_Sample(t *testing.T) {
	tests := []struct {
		name     string
		level    int
		count    int
		expected int
	}{
		{name: "level 1 eight words", level: 1, count: 8, expected: 8},
		{name: "more than available", level: 8, count: 50, expected: len(hskTables[8])},
		{name: "unknown level borrows hsk 6", level: 42, count: 5, expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFallback()

			got := f.Sample(tt.level, tt.count)

			assert.Len(t, got, tt.expected)
			hanzi := map[string]bool{}
			ids := map[string]bool{}
			for _, e := range got {
				assert.NotEmpty(t, e.Hanzi)
				assert.NotEmpty(t, e.Pinyin)
				assert.NotEmpty(t, e.Meaning)
				assert.False(t, hanzi[e.Hanzi], "duplicate %s", e.Hanzi)
				assert.False(t, ids[e.ID])
				hanzi[e.Hanzi] = true
				ids[e.ID] = true
			}
		})
	}
}

func TestFallback_SampleBorrowsFromLevelSix(t *testing.T) {
	f := NewFallback()
	f.shuffle = func(int, func(i, j int)) {}

	got := f.Sample(0, 1)

	assert.Equal(t, hskTables[6][0].hanzi, got[0].Hanzi)
}

func TestFallback_SampleDoesNotMutateTables(t *testing.T) {
	before := hskTables[1][0]
	f := NewFallback()

	for i := 0; i < 10; i++ {
		f.Sample(1, 3)
	}

	assert.Equal(t, before, hskTables[1][0])
}
