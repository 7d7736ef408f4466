package domain

import "fmt"

// Facet is the representation of an entry a card displays
type Facet string

const (
	FacetHanzi   Facet = "hanzi"
	FacetPinyin  Facet = "pinyin"
	FacetMeaning Facet = "meaning"
)

// Content returns the text of the given facet of an entry
func (f Facet) Content(e VocabularyEntry) string {
	switch f {
	case FacetHanzi:
		return e.Hanzi
	case FacetPinyin:
		return e.Pinyin
	case FacetMeaning:
		return e.Meaning
	}
	return ""
}

// Mode selects which facet is paired with the hanzi card
type Mode string

const (
	ModeHanziPinyin  Mode = "HANZI_PINYIN"
	ModeHanziMeaning Mode = "HANZI_MEANING"
)

// PairedFacet returns the facet shown on the second card of each pair
func (m Mode) PairedFacet() (Facet, error) {
	switch m {
	case ModeHanziPinyin:
		return FacetPinyin, nil
	case ModeHanziMeaning:
		return FacetMeaning, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, string(m))
}

// Toggle returns the other mode
func (m Mode) Toggle() Mode {
	if m == ModeHanziMeaning {
		return ModeHanziPinyin
	}
	return ModeHanziMeaning
}

// CardState is the lifecycle state of a single card.
//
// faceUp -> selected -> matched (terminal)
// faceUp -> selected -> errored -> faceUp
type CardState int

const (
	CardFaceUp CardState = iota
	CardSelected
	CardMatched
	CardErrored
)

func (s CardState) String() string {
	switch s {
	case CardFaceUp:
		return "faceUp"
	case CardSelected:
		return "selected"
	case CardMatched:
		return "matched"
	case CardErrored:
		return "errored"
	}
	return fmt.Sprintf("CardState(%d)", int(s))
}

// Card is one half of a pair in a matching round
type Card struct {
	ID      string
	VocabID string
	Content string
	Facet   Facet
	State   CardState
}

// CardID derives the card identifier from the entry and facet
func CardID(vocabID string, facet Facet) string {
	return vocabID + "-" + string(facet)
}

func (c Card) Matched() bool  { return c.State == CardMatched }
func (c Card) Selected() bool { return c.State == CardSelected }
func (c Card) Errored() bool  { return c.State == CardErrored }
