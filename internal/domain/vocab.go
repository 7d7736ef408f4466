package domain

import (
	"strings"
	"time"
)

// VocabularyEntry is a single hanzi/pinyin/meaning record
type VocabularyEntry struct {
	ID      string `json:"id"`
	Hanzi   string `json:"hanzi" validate:"required"`
	Pinyin  string `json:"pinyin" validate:"required"`
	Meaning string `json:"meaning" validate:"required"`
}

// Key returns the deduplication key of the entry
func (e VocabularyEntry) Key() string {
	return strings.TrimSpace(e.Hanzi)
}

// VocabularySet is a named, user-owned list of entries
type VocabularySet struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	CreatedAt time.Time         `json:"createdAt"`
	Items     []VocabularyEntry `json:"items"`
}

// Clone returns a copy of the set that shares no item storage with s
func (s VocabularySet) Clone() VocabularySet {
	out := s
	out.Items = make([]VocabularyEntry, len(s.Items))
	copy(out.Items, s.Items)
	return out
}
