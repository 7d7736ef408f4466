// Package storage opens the key-value backend selected in the configuration.
package storage

import (
	"database/sql"
	"fmt"

	"pandavocab/internal/config"
	"pandavocab/internal/database"
	"pandavocab/internal/repository"
	"pandavocab/internal/repository/memory"
	"pandavocab/internal/repository/postgres"
	"pandavocab/internal/repository/sqlite"

	"go.uber.org/zap"
)

// Open connects the configured backend and applies its migrations. The
// returned close function releases the database, if any.
func Open(cfg *config.Config, logger *zap.Logger) (repository.KVStore, func() error, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		logger.Warn("Using in-memory storage, sets are lost on restart")
		return memory.NewKVStore(), noop, nil

	case config.DriverSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := migrate(db, database.DriverSQLite, logger); err != nil {
			return nil, nil, err
		}
		logger.Info("SQLite storage ready", zap.String("path", cfg.SQLitePath))
		return sqlite.NewKVRepo(db), db.Close, nil

	case config.DriverPostgres:
		db, err := database.ConnectPostgres(cfg.DSN(), logger)
		if err != nil {
			return nil, nil, err
		}
		if err := migrate(db, database.DriverPostgres, logger); err != nil {
			return nil, nil, err
		}
		logger.Info("PostgreSQL storage ready", zap.String("host", cfg.Database.Host))
		return postgres.NewKVRepo(db), db.Close, nil
	}

	return nil, nil, fmt.Errorf("unsupported storage driver: %s", cfg.StorageDriver)
}

func migrate(db *sql.DB, driverName string, logger *zap.Logger) error {
	if err := database.RunMigrations(db, driverName, logger); err != nil {
		db.Close()
		return err
	}
	return nil
}

func noop() error { return nil }
