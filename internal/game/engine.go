package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"pandavocab/internal/domain"
)

// DefaultMismatchDelay is how long a wrong pair stays visible
const DefaultMismatchDelay = 800 * time.Millisecond

// Outcome describes what a selection did
type Outcome int

const (
	OutcomeSelected Outcome = iota
	OutcomeDeselected
	OutcomeMatched
	OutcomeMismatched
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSelected:
		return "selected"
	case OutcomeDeselected:
		return "deselected"
	case OutcomeMatched:
		return "matched"
	case OutcomeMismatched:
		return "mismatched"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Options configures an Engine. Zero values fall back to defaults.
type Options struct {
	MismatchDelay time.Duration
	Scheduler     Scheduler
	Shuffle       func(n int, swap func(i, j int))

	// OnComplete runs once per round, right after the winning match
	OnComplete func(pairs int)

	// OnMismatchReset runs after errored cards return face up
	OnMismatchReset func()
}

// Engine drives one matching round at a time. It is safe for concurrent use.
type Engine struct {
	mu sync.Mutex

	opts Options

	cards   []domain.Card
	index   map[string]int
	pairs   int
	matched int

	selected int // index of the pending card, -1 if none
	pending  Timer
	round    uint64
	won      bool
}

// NewEngine creates an engine with an empty deck
func NewEngine(opts Options) *Engine {
	if opts.MismatchDelay <= 0 {
		opts.MismatchDelay = DefaultMismatchDelay
	}
	if opts.Scheduler == nil {
		opts.Scheduler = RealScheduler
	}
	if opts.Shuffle == nil {
		opts.Shuffle = rand.Shuffle
	}
	return &Engine{
		opts:     opts,
		index:    make(map[string]int),
		selected: -1,
	}
}

// Initialize replaces the deck with a freshly shuffled one built from entries.
// Any pending mismatch reset from the previous round is cancelled.
func (e *Engine) Initialize(entries []domain.VocabularyEntry, mode domain.Mode) error {
	facet, err := mode.PairedFacet()
	if err != nil {
		return err
	}

	cards := make([]domain.Card, 0, len(entries)*2)
	for _, entry := range entries {
		cards = append(cards,
			domain.Card{
				ID:      domain.CardID(entry.ID, domain.FacetHanzi),
				VocabID: entry.ID,
				Content: entry.Hanzi,
				Facet:   domain.FacetHanzi,
			},
			domain.Card{
				ID:      domain.CardID(entry.ID, facet),
				VocabID: entry.ID,
				Content: facet.Content(entry),
				Facet:   facet,
			},
		)
	}
	e.opts.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })

	index := make(map[string]int, len(cards))
	for i, c := range cards {
		index[c.ID] = i
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.cancelPendingLocked()
	e.round++
	e.cards = cards
	e.index = index
	e.pairs = len(entries)
	e.matched = 0
	e.selected = -1
	e.won = false
	return nil
}

// SelectCard applies a player's pick to the current deck
func (e *Engine) SelectCard(cardID string) (Outcome, error) {
	e.mu.Lock()

	i, ok := e.index[cardID]
	if !ok {
		e.mu.Unlock()
		return 0, fmt.Errorf("%w: %s", domain.ErrCardNotFound, cardID)
	}
	if e.pending != nil {
		e.mu.Unlock()
		return 0, domain.ErrMismatchPending
	}
	if e.cards[i].Matched() {
		e.mu.Unlock()
		return 0, fmt.Errorf("%w: %s", domain.ErrCardMatched, cardID)
	}

	switch {
	case e.selected == i:
		e.cards[i].State = domain.CardFaceUp
		e.selected = -1
		e.mu.Unlock()
		return OutcomeDeselected, nil

	case e.selected < 0:
		e.cards[i].State = domain.CardSelected
		e.selected = i
		e.mu.Unlock()
		return OutcomeSelected, nil
	}

	first := e.selected
	e.selected = -1

	if e.cards[first].VocabID == e.cards[i].VocabID {
		e.cards[first].State = domain.CardMatched
		e.cards[i].State = domain.CardMatched
		e.matched++

		var onComplete func(int)
		if !e.won && e.matched == e.pairs {
			e.won = true
			onComplete = e.opts.OnComplete
		}
		pairs := e.pairs
		e.mu.Unlock()

		if onComplete != nil {
			onComplete(pairs)
		}
		return OutcomeMatched, nil
	}

	e.cards[first].State = domain.CardErrored
	e.cards[i].State = domain.CardErrored
	round := e.round
	e.pending = e.opts.Scheduler.AfterFunc(e.opts.MismatchDelay, func() {
		e.resetMismatch(round, first, i)
	})
	e.mu.Unlock()
	return OutcomeMismatched, nil
}

func (e *Engine) resetMismatch(round uint64, a, b int) {
	e.mu.Lock()
	if round != e.round || e.pending == nil {
		e.mu.Unlock()
		return
	}
	e.cards[a].State = domain.CardFaceUp
	e.cards[b].State = domain.CardFaceUp
	e.pending = nil
	cb := e.opts.OnMismatchReset
	e.mu.Unlock()

	if cb != nil {
		cb()
	}
}

func (e *Engine) cancelPendingLocked() {
	if e.pending != nil {
		e.pending.Stop()
		e.pending = nil
	}
}

// Close cancels any scheduled reset. The engine can be reinitialized afterwards.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelPendingLocked()
	e.round++
}

// Cards returns a snapshot of the deck in display order
func (e *Engine) Cards() []domain.Card {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.Card, len(e.cards))
	copy(out, e.cards)
	return out
}

// MatchedPairs returns the number of pairs found this round
func (e *Engine) MatchedPairs() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.matched
}

// TotalPairs returns the number of entries the round was built from
func (e *Engine) TotalPairs() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pairs
}

// Complete reports whether every pair has been matched. An empty deck is complete.
func (e *Engine) Complete() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.matched == e.pairs
}

// MismatchPending reports whether a wrong pair is currently displayed
func (e *Engine) MismatchPending() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pending != nil
}
