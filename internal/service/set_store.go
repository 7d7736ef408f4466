package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"pandavocab/internal/domain"
	"pandavocab/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultStorageKey is the key the whole collection is stored under
const DefaultStorageKey = "panda_vocab_sets"

// UserStorageKey scopes the collection to one chat
func UserStorageKey(userID int64) string {
	return DefaultStorageKey + ":" + strconv.FormatInt(userID, 10)
}

// SetStore manages named vocabulary sets persisted as one JSON blob.
// Items are merged by trimmed hanzi: re-importing a word overwrites its
// pinyin and meaning and keeps its original id.
type SetStore struct {
	kv     repository.KVStore
	key    string
	logger *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewSetStore creates a set store reading and writing under key
func NewSetStore(kv repository.KVStore, key string, logger *zap.Logger) *SetStore {
	return &SetStore{
		kv:     kv,
		key:    key,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// List returns all persisted sets. Missing or unreadable data is treated as empty.
func (s *SetStore) List() []domain.VocabularySet {
	data, err := s.kv.Get(s.key)
	if errors.Is(err, repository.ErrNotFound) {
		return []domain.VocabularySet{}
	}
	if err != nil {
		s.logger.Warn("Failed to read vocabulary sets, treating as empty",
			zap.String("key", s.key),
			zap.Error(err),
		)
		return []domain.VocabularySet{}
	}

	sets, err := decodeSets(data)
	if err != nil {
		s.logger.Warn("Stored vocabulary sets are corrupt, treating as empty",
			zap.String("key", s.key),
			zap.Error(err),
		)
		return []domain.VocabularySet{}
	}
	return sets
}

// Get returns the set with the given id
func (s *SetStore) Get(setID string) (domain.VocabularySet, error) {
	for _, set := range s.List() {
		if set.ID == setID {
			return set, nil
		}
	}
	return domain.VocabularySet{}, fmt.Errorf("%w: %s", domain.ErrSetNotFound, setID)
}

// Create adds a new empty set in front of the existing ones
func (s *SetStore) Create(name string) ([]domain.VocabularySet, error) {
	current := s.List()

	name = strings.TrimSpace(name)
	if name == "" {
		return current, domain.ErrEmptySetName
	}

	set := domain.VocabularySet{
		ID:        s.newID(),
		Name:      name,
		CreatedAt: s.now(),
		Items:     []domain.VocabularyEntry{},
	}
	updated := append([]domain.VocabularySet{set}, current...)

	if err := s.save(updated); err != nil {
		return current, err
	}

	s.logger.Info("Vocabulary set created",
		zap.String("set_id", set.ID),
		zap.String("name", set.Name),
	)
	return updated, nil
}

// Merge folds items into the set. Unknown set ids leave the collection untouched.
func (s *SetStore) Merge(setID string, items []domain.VocabularyEntry) ([]domain.VocabularySet, error) {
	current := s.List()

	idx := -1
	for i, set := range current {
		if set.ID == setID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.logger.Warn("Merge into unknown vocabulary set ignored", zap.String("set_id", setID))
		return current, nil
	}

	target := current[idx]
	merged := MergeEntries(target.Items, items, s.newID)

	updated := make([]domain.VocabularySet, len(current))
	copy(updated, current)
	updated[idx] = domain.VocabularySet{
		ID:        target.ID,
		Name:      target.Name,
		CreatedAt: target.CreatedAt,
		Items:     merged,
	}

	if err := s.save(updated); err != nil {
		return current, err
	}

	s.logger.Info("Vocabulary set merged",
		zap.String("set_id", setID),
		zap.Int("incoming", len(items)),
		zap.Int("before", len(target.Items)),
		zap.Int("after", len(merged)),
	)
	return updated, nil
}

// Delete removes the set if present
func (s *SetStore) Delete(setID string) ([]domain.VocabularySet, error) {
	current := s.List()

	updated := make([]domain.VocabularySet, 0, len(current))
	for _, set := range current {
		if set.ID != setID {
			updated = append(updated, set)
		}
	}

	if err := s.save(updated); err != nil {
		return current, err
	}
	return updated, nil
}

// Sample picks a random subset of at most limit entries from a set to play with
func (s *SetStore) Sample(setID string, limit int) ([]domain.VocabularyEntry, error) {
	set, err := s.Get(setID)
	if err != nil {
		return nil, err
	}
	if len(set.Items) < domain.MinPlayable {
		return nil, fmt.Errorf("%w: %q has %d words, need at least %d",
			domain.ErrInsufficientVocabulary, set.Name, len(set.Items), domain.MinPlayable)
	}

	picked := make([]domain.VocabularyEntry, len(set.Items))
	copy(picked, set.Items)
	rand.Shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })

	if limit > 0 && len(picked) > limit {
		picked = picked[:limit]
	}
	return picked, nil
}

// MergeEntries merges incoming into existing keyed by trimmed hanzi.
// Existing entries keep their position and id, new keys are appended in
// incoming order with ids from newID.
func MergeEntries(existing, incoming []domain.VocabularyEntry, newID func() string) []domain.VocabularyEntry {
	merged := make([]domain.VocabularyEntry, 0, len(existing)+len(incoming))
	positions := make(map[string]int, len(existing)+len(incoming))

	for _, item := range existing {
		key := item.Key()
		if pos, ok := positions[key]; ok {
			merged[pos] = item
			continue
		}
		positions[key] = len(merged)
		merged = append(merged, item)
	}

	for _, item := range incoming {
		key := item.Key()
		if pos, ok := positions[key]; ok {
			item.ID = merged[pos].ID
			merged[pos] = item
			continue
		}
		item.ID = newID()
		positions[key] = len(merged)
		merged = append(merged, item)
	}

	return merged
}

func (s *SetStore) save(sets []domain.VocabularySet) error {
	data, err := json.Marshal(sets)
	if err != nil {
		return fmt.Errorf("failed to encode vocabulary sets: %w", err)
	}
	if err := s.kv.Put(s.key, data); err != nil {
		return fmt.Errorf("failed to persist vocabulary sets: %w", err)
	}
	return nil
}

func decodeSets(data []byte) ([]domain.VocabularySet, error) {
	if len(data) == 0 {
		return []domain.VocabularySet{}, nil
	}
	var sets []domain.VocabularySet
	if err := json.Unmarshal(data, &sets); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageCorrupt, err)
	}
	if sets == nil {
		sets = []domain.VocabularySet{}
	}
	return sets, nil
}
