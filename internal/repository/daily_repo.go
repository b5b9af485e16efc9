// Package repository provides data access for published daily answers.
package repository

import (
	"database/sql"
	"time"

	"audiobirdle/internal/database"
	"audiobirdle/internal/models"
)

// DailyAnswerRepository stores the published answer table rows pushed by the
// admin publish endpoint. Rows loaded from the static daily.json never pass
// through here; the database table takes precedence over the file.
type DailyAnswerRepository struct {
	db *database.DB
}

// NewDailyAnswerRepository creates a new daily answer repository.
func NewDailyAnswerRepository(db *database.DB) *DailyAnswerRepository {
	return &DailyAnswerRepository{db: db}
}

// Find returns the published entry for a date and region, or nil when none
// has been published.
func (r *DailyAnswerRepository) Find(date, region string) (*models.DailyAnswerEntry, error) {
	entry := &models.DailyAnswerEntry{}
	var subregion sql.NullString
	err := r.db.QueryRow(
		"SELECT answer_date, region, answer_hash, subregion FROM daily_answers WHERE answer_date = ? AND region = ?",
		date, region,
	).Scan(&entry.Date, &entry.Region, &entry.AnswerHash, &subregion)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	entry.Subregion = subregion.String
	return entry, nil
}

// Upsert writes an entry, replacing any previous publication for the same
// date and region.
func (r *DailyAnswerRepository) Upsert(entry *models.DailyAnswerEntry) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		"UPDATE daily_answers SET answer_hash = ?, subregion = ?, updated_at = ? WHERE answer_date = ? AND region = ?",
		entry.AnswerHash, entry.Subregion, time.Now(), entry.Date, entry.Region,
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
			"INSERT INTO daily_answers (answer_date, region, answer_hash, subregion, updated_at) VALUES (?, ?, ?, ?, ?)",
			entry.Date, entry.Region, entry.AnswerHash, entry.Subregion, time.Now(),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
