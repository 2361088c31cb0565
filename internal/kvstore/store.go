package kvstore

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrUnsupportedURL is returned for database URLs with an unknown scheme
var ErrUnsupportedURL = errors.New("unsupported database URL")

// MemoryURL selects the process-local store instead of a database
const MemoryURL = "memory://"

// Store is a flat string key-value store.
// Values are opaque to the store; callers own their encoding.
type Store interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
	Remove(key string) error
	Keys() ([]string, error)
}

// Open returns the store selected by databaseURL.
// For database backends the key-value table is created when missing.
func Open(databaseURL, table string, verbose bool) (Store, error) {
	if strings.HasPrefix(databaseURL, MemoryURL) {
		return NewMemoryStore(), nil
	}

	db, err := Connect(databaseURL, verbose)
	if err != nil {
		return nil, err
	}

	store := NewGormStore(db, table)
	if err := store.Initialize(); err != nil {
		return nil, err
	}
	return store, nil
}

// Connect connects to the database based on the URL
func Connect(databaseURL string, verbose bool) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	if verbose {
		cfg.Logger = logger.Default.LogMode(logger.Info)
	}

	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return gorm.Open(postgres.Open(databaseURL), cfg)
	} else if strings.HasPrefix(databaseURL, "sqlite://") {
		path := strings.TrimPrefix(databaseURL, "sqlite://")
		db, err := gorm.Open(sqlite.Open(path), cfg)
		if err != nil {
			return nil, err
		}
		// A single connection keeps ":memory:" databases alive across calls
		// and serializes writers on file databases.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedURL, databaseURL)
}
