package service

import (
	"pandavocab/internal/domain"
)

// SetsPageSize is how many sets one "my sets" page shows
const SetsPageSize = 7

// SetPage is one page of the saved sets list
type SetPage struct {
	Sets       []domain.VocabularySet
	Page       int
	TotalPages int
}

// HasPrev reports whether a previous page exists
func (p SetPage) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether a next page exists
func (p SetPage) HasNext() bool {
	return p.Page < p.TotalPages
}

// ListPage returns a page of sets, newest first
func ListPage(store *SetStore, page int) SetPage {
	sets := store.List()

	totalPages := (len(sets) + SetsPageSize - 1) / SetsPageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * SetsPageSize
	end := start + SetsPageSize
	if end > len(sets) {
		end = len(sets)
	}

	return SetPage{
		Sets:       sets[start:end],
		Page:       page,
		TotalPages: totalPages,
	}
}

// Playable reports whether a set holds enough words for a round
func Playable(set domain.VocabularySet) bool {
	return len(set.Items) >= domain.MinPlayable
}
