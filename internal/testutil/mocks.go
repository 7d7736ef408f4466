package testutil

import (
	"context"

	"pandavocab/internal/domain"
	"pandavocab/internal/vocab"

	"github.com/stretchr/testify/mock"
)

// MockKVStore is a mock for repository.KVStore
type MockKVStore struct {
	mock.Mock
}

func (m *MockKVStore) Get(key string) ([]byte, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKVStore) Put(key string, value []byte) error {
	args := m.Called(key, value)
	return args.Error(0)
}

// MockSource is a mock for vocab.Source
type MockSource struct {
	mock.Mock
}

func (m *MockSource) Vocabulary(ctx context.Context, level, count int) (vocab.Result, error) {
	args := m.Called(ctx, level, count)
	return args.Get(0).(vocab.Result), args.Error(1)
}

// MockGenerator is a mock for vocab.Generator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, level, count int) ([]domain.VocabularyEntry, error) {
	args := m.Called(ctx, level, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VocabularyEntry), args.Error(1)
}
