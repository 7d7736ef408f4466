package repository

import "errors"

// ErrNotFound is returned by KVStore.Get when nothing is stored under a key
var ErrNotFound = errors.New("key not found")

// KVStore persists opaque blobs under string keys
type KVStore interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}
