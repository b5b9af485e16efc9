package game

import (
	"time"

	"audiobirdle/internal/models"
)

// NewDailyRecord returns a zeroed play record for (region, date).
func NewDailyRecord(region, date string, now time.Time) *models.DailyGameRecord {
	return &models.DailyGameRecord{
		Region:     region,
		Date:       date,
		MaxGuesses: models.DefaultMaxGuesses,
		StartTime:  now,
	}
}

// ProcessGuess appends a guess to the record, storing the resolved answer id
// and completing the record when the guess is correct or the limit is
// reached. A guess against a completed record is a no-op. The return value
// reports whether this call caused the completion transition, which is the
// only moment aggregate statistics may be updated.
func ProcessGuess(record *models.DailyGameRecord, guessedBirdID, correctBirdID string, now time.Time) bool {
	if record.Completed {
		return false
	}

	correct := guessedBirdID == correctBirdID
	record.Guesses = append(record.Guesses, models.Guess{
		BirdID:    guessedBirdID,
		Correct:   correct,
		Timestamp: now,
	})
	record.AnswerBirdID = correctBirdID

	if correct || len(record.Guesses) >= record.MaxGuesses {
		record.Completed = true
		record.Won = correct
		end := now
		record.EndTime = &end
		return true
	}
	return false
}
