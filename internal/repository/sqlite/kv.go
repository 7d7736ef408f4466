package sqlite

import (
	"database/sql"
	"errors"

	"pandavocab/internal/repository"
)

// KVRepo implements repository.KVStore on a SQLite kv_store table
type KVRepo struct {
	db *sql.DB
}

// NewKVRepo creates a new key-value repository
func NewKVRepo(db *sql.DB) *KVRepo {
	return &KVRepo{db: db}
}

// Get returns the blob stored under key
func (r *KVRepo) Get(key string) ([]byte, error) {
	var value []byte
	query := `SELECT value FROM kv_store WHERE key = ?`
	err := r.db.QueryRow(query, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Put upserts the blob stored under key (last writer wins)
func (r *KVRepo) Put(key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP
	`
	_, err := r.db.Exec(query, key, value)
	return err
}
