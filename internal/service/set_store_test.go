package service

import (
	"fmt"
	"testing"
	"time"

	"pandavocab/internal/domain"
	"pandavocab/internal/repository"
	"pandavocab/internal/repository/memory"
	"pandavocab/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestSetStore(kv repository.KVStore) *SetStore {
	store := NewSetStore(kv, DefaultStorageKey, testutil.NewTestLogger())
	store.newID = testutil.SequentialIDs("id")
	store.now = func() time.Time { return time.Date(2024, 12, 12, 10, 0, 0, 0, time.UTC) }
	return store
}

func TestSetStore_ListEmpty(t *testing.T) {
	store := newTestSetStore(memory.NewKVStore())

	sets := store.List()

	assert.NotNil(t, sets)
	assert.Empty(t, sets)
}

func TestSetStore_ListCorrupt(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		err  error
	}{
		{name: "malformed json", data: []byte(`{not json`)},
		{name: "wrong shape", data: []byte(`{"id":"x"}`)},
		{name: "read error", err: fmt.Errorf("io error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := new(testutil.MockKVStore)
			kv.On("Get", DefaultStorageKey).Return(tt.data, tt.err)

			core, logs := observer.New(zapcore.WarnLevel)
			store := NewSetStore(kv, DefaultStorageKey, zap.New(core))

			sets := store.List()

			assert.Empty(t, sets)
			assert.Equal(t, 1, logs.Len())
			kv.AssertExpectations(t)
		})
	}
}

func TestSetStore_Create(t *testing.T) {
	store := newTestSetStore(memory.NewKVStore())

	sets, err := store.Create("  Food  ")
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, "Food", sets[0].Name)
	assert.Equal(t, "id-1", sets[0].ID)
	assert.Empty(t, sets[0].Items)

	sets, err = store.Create("Travel")
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "Travel", sets[0].Name)

	assert.Equal(t, sets, store.List())
}

func TestSetStore_CreateEmptyName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		t.Run(fmt.Sprintf("%q", name), func(t *testing.T) {
			kv := new(testutil.MockKVStore)
			kv.On("Get", DefaultStorageKey).Return(nil, repository.ErrNotFound)

			store := newTestSetStore(kv)
			sets, err := store.Create(name)

			assert.ErrorIs(t, err, domain.ErrEmptySetName)
			assert.Empty(t, sets)
			kv.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
		})
	}
}

func TestSetStore_CreatePersistError(t *testing.T) {
	kv := new(testutil.MockKVStore)
	kv.On("Get", DefaultStorageKey).Return(nil, repository.ErrNotFound)
	kv.On("Put", DefaultStorageKey, mock.Anything).Return(fmt.Errorf("disk full"))

	store := newTestSetStore(kv)
	sets, err := store.Create("Food")

	assert.Error(t, err)
	assert.Empty(t, sets)
	kv.AssertExpectations(t)
}

func TestSetStore_MergeDeduplicates(t *testing.T) {
	store := newTestSetStore(memory.NewKVStore())
	sets, err := store.Create("Greetings")
	require.NoError(t, err)
	setID := sets[0].ID

	_, err = store.Merge(setID, []domain.VocabularyEntry{
		{Hanzi: "你好", Pinyin: "nǐ hǎo", Meaning: "xin chào"},
	})
	require.NoError(t, err)
	original, err := store.Get(setID)
	require.NoError(t, err)
	require.Len(t, original.Items, 1)
	originalID := original.Items[0].ID

	sets, err = store.Merge(setID, []domain.VocabularyEntry{
		{ID: "excel-1", Hanzi: "你好", Pinyin: "nihao2", Meaning: "hi2"},
		{ID: "excel-2", Hanzi: "谢谢", Pinyin: "xièxie", Meaning: "cảm ơn"},
	})
	require.NoError(t, err)

	items := sets[0].Items
	require.Len(t, items, 2)
	assert.Equal(t, originalID, items[0].ID)
	assert.Equal(t, "你好", items[0].Hanzi)
	assert.Equal(t, "nihao2", items[0].Pinyin)
	assert.Equal(t, "hi2", items[0].Meaning)
	assert.Equal(t, "谢谢", items[1].Hanzi)
	assert.NotEqual(t, originalID, items[1].ID)
	assert.NotEqual(t, "excel-2", items[1].ID)
}

func TestSetStore_MergeUnknownSet(t *testing.T) {
	store := newTestSetStore(memory.NewKVStore())
	before, err := store.Create("Food")
	require.NoError(t, err)

	after, err := store.Merge("missing", testutil.NewTestEntries(3))

	assert.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, before, store.List())
}

func TestSetStore_MergeIsIdempotent(t *testing.T) {
	store := newTestSetStore(memory.NewKVStore())
	sets, err := store.Create("Food")
	require.NoError(t, err)
	setID := sets[0].ID

	apple := []domain.VocabularyEntry{{Hanzi: "苹果", Pinyin: "píngguǒ", Meaning: "táo"}}

	_, err = store.Merge(setID, apple)
	require.NoError(t, err)
	_, err = store.Merge(setID, apple)
	require.NoError(t, err)

	listed := store.List()
	require.Len(t, listed, 1)
	assert.Equal(t, "Food", listed[0].Name)
	require.Len(t, listed[0].Items, 1)
	assert.Equal(t, "苹果", listed[0].Items[0].Hanzi)
}

func TestSetStore_Delete(t *testing.T) {
	store := newTestSetStore(memory.NewKVStore())
	_, err := store.Create("A")
	require.NoError(t, err)
	before, err := store.Create("B")
	require.NoError(t, err)

	after, err := store.Delete("does-not-exist")
	require.NoError(t, err)
	assert.Equal(t, before, after)

	after, err = store.Delete(before[0].ID)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "A", after[0].Name)
	assert.Equal(t, after, store.List())
}

func TestSetStore_Sample(t *testing.T) {
	tests := []struct {
		name          string
		size          int
		limit         int
		expectedLen   int
		expectedError error
	}{
		{name: "too few words", size: 3, limit: 12, expectedError: domain.ErrInsufficientVocabulary},
		{name: "exactly minimum", size: 4, limit: 12, expectedLen: 4},
		{name: "capped at limit", size: 20, limit: 12, expectedLen: 12},
		{name: "no limit", size: 20, limit: 0, expectedLen: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestSetStore(memory.NewKVStore())
			sets, err := store.Create("Set")
			require.NoError(t, err)
			_, err = store.Merge(sets[0].ID, testutil.NewTestEntries(tt.size))
			require.NoError(t, err)

			picked, err := store.Sample(sets[0].ID, tt.limit)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, picked)
				return
			}
			require.NoError(t, err)
			assert.Len(t, picked, tt.expectedLen)

			seen := map[string]bool{}
			for _, e := range picked {
				assert.False(t, seen[e.ID])
				seen[e.ID] = true
			}
		})
	}
}

func TestSetStore_SampleUnknownSet(t *testing.T) {
	store := newTestSetStore(memory.NewKVStore())

	_, err := store.Sample("missing", 12)

	assert.ErrorIs(t, err, domain.ErrSetNotFound)
}

func TestMergeEntries(t *testing.T) {
	existing := []domain.VocabularyEntry{
		testutil.NewTestEntry("a", "你好", "nǐ hǎo", "xin chào"),
		testutil.NewTestEntry("b", "再见", "zài jiàn", "tạm biệt"),
	}
	incoming := []domain.VocabularyEntry{
		testutil.NewTestEntry("x", " 再见 ", "zaijian", "bye"),
		testutil.NewTestEntry("y", "加油", "jiā yóu", "cố lên"),
		testutil.NewTestEntry("z", "加油", "jiayou", "cố lên!"),
	}

	merged := MergeEntries(existing, incoming, testutil.SequentialIDs("new"))

	require.Len(t, merged, 3)
	assert.Equal(t, "a", merged[0].ID)
	assert.Equal(t, "b", merged[1].ID)
	assert.Equal(t, "zaijian", merged[1].Pinyin)
	assert.Equal(t, "new-1", merged[2].ID)
	assert.Equal(t, "jiayou", merged[2].Pinyin)

	assert.Equal(t, "nǐ hǎo", existing[0].Pinyin)
	assert.Equal(t, "zài jiàn", existing[1].Pinyin)
}

func TestUserStorageKey(t *testing.T) {
	assert.Equal(t, "panda_vocab_sets:123", UserStorageKey(123))
}
