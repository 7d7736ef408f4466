package storage

import (
	"testing"

	"pandavocab/internal/config"
	"pandavocab/internal/repository/memory"
	"pandavocab/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	kv, closeFn, err := Open(&config.Config{StorageDriver: config.DriverMemory}, testutil.NewTestLogger())

	require.NoError(t, err)
	assert.IsType(t, &memory.KVStore{}, kv)
	assert.NoError(t, closeFn())
}

func TestOpen_UnknownDriver(t *testing.T) {
	kv, closeFn, err := Open(&config.Config{StorageDriver: "redis"}, testutil.NewTestLogger())

	assert.Error(t, err)
	assert.Nil(t, kv)
	assert.Nil(t, closeFn)
}
