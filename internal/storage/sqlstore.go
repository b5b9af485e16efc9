package storage

import (
	"database/sql"
	"time"

	"audiobirdle/internal/database"
)

// SQLStore backs the key-value surface with the kv_store table.
type SQLStore struct {
	db *database.DB
}

// NewSQLStore creates a SQL-backed store.
func NewSQLStore(db *database.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Get returns the stored value for (deviceID, key).
func (s *SQLStore) Get(deviceID, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM kv_store WHERE device_id = ? AND store_key = ?",
		deviceID, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set writes the value for (deviceID, key), replacing any previous one. The
// update-then-insert dance is portable across all three dialects, unlike
// their upsert syntaxes.
func (s *SQLStore) Set(deviceID, key, value string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		"UPDATE kv_store SET value = ?, updated_at = ? WHERE device_id = ? AND store_key = ?",
		value, time.Now(), deviceID, key,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		_, err = tx.Exec(
			"INSERT INTO kv_store (device_id, store_key, value, updated_at) VALUES (?, ?, ?, ?)",
			deviceID, key, value, time.Now(),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Remove deletes the value for (deviceID, key). Removing a missing key is
// not an error.
func (s *SQLStore) Remove(deviceID, key string) error {
	_, err := s.db.Exec(
		"DELETE FROM kv_store WHERE device_id = ? AND store_key = ?",
		deviceID, key,
	)
	return err
}
