package kvstore

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultTable is the table used when none is configured
const DefaultTable = "_catalog_kv"

// Entry represents one key-value row in the database
type Entry struct {
	Key   string `gorm:"primaryKey;column:storage_key"`
	Value string `gorm:"column:payload"`
}

// TableName returns the table name for the entry
func (Entry) TableName() string {
	return DefaultTable
}

// GormStore keeps key-value entries in a database table
type GormStore struct {
	db    *gorm.DB
	table string
}

// NewGormStore creates a new table-backed store
func NewGormStore(db *gorm.DB, tableName string) *GormStore {
	if tableName == "" {
		tableName = DefaultTable
	}
	return &GormStore{
		db:    db,
		table: tableName,
	}
}

// Initialize creates the key-value table
func (s *GormStore) Initialize() error {
	if err := s.db.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			storage_key VARCHAR(255) PRIMARY KEY,
			payload TEXT NOT NULL
		)
	`, s.table)).Error; err != nil {
		return fmt.Errorf("failed to create key-value table: %w", err)
	}
	return nil
}

// Get returns the value stored under key
func (s *GormStore) Get(key string) (string, bool, error) {
	var entry Entry
	if err := s.db.Table(s.table).Where("storage_key = ?", key).Take(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return entry.Value, true, nil
}

// Set stores value under key, replacing any previous value
func (s *GormStore) Set(key, value string) error {
	entry := Entry{Key: key, Value: value}
	err := s.db.Table(s.table).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (s *GormStore) Remove(key string) error {
	if err := s.db.Table(s.table).Where("storage_key = ?", key).Delete(&Entry{}).Error; err != nil {
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}

// Keys returns all stored keys in ascending order
func (s *GormStore) Keys() ([]string, error) {
	var keys []string
	if err := s.db.Table(s.table).Order("storage_key ASC").Pluck("storage_key", &keys).Error; err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	return keys, nil
}
