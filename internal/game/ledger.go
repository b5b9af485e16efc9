package game

import (
	"time"

	"audiobirdle/internal/models"
)

// NewLedger returns an empty current-version ledger.
func NewLedger() *models.GameStateLedger {
	return &models.GameStateLedger{
		Version: models.CurrentLedgerVersion,
		Records: make(map[string]*models.DailyGameRecord),
		Stats: models.AggregateStats{
			Regions: make(map[string]*models.RegionStats),
		},
	}
}

// GetOrCreateDailyRecord returns the record for (region, date), creating a
// zeroed one on first access. Idempotent.
func GetOrCreateDailyRecord(ledger *models.GameStateLedger, region, date string, now time.Time) *models.DailyGameRecord {
	key := models.RecordKey(region, date)
	if record, ok := ledger.Records[key]; ok {
		return record
	}
	record := NewDailyRecord(region, date, now)
	ledger.Records[key] = record
	return record
}

// HasPlayed reports whether a record exists for (region, date) and has at
// least one guess.
func HasPlayed(ledger *models.GameStateLedger, region, date string) bool {
	record, ok := ledger.Records[models.RecordKey(region, date)]
	return ok && len(record.Guesses) > 0
}

// ApplyGuess runs one guess through the ledger: the record is created if
// missing, the guess is processed, the last-played pointer always moves to
// (region, date), and a completion transition triggers the aggregate-stats
// update. The touched record is returned.
func ApplyGuess(ledger *models.GameStateLedger, region, date, guessedBirdID, correctBirdID string, now time.Time) *models.DailyGameRecord {
	record := GetOrCreateDailyRecord(ledger, region, date, now)
	completed := ProcessGuess(record, guessedBirdID, correctBirdID, now)
	ledger.LastPlayed = &models.LastPlayed{Region: region, Date: date}
	if completed {
		updateStats(ledger, record)
	}
	return record
}

// ResetRecord deletes the one record for (region, date). All other history
// and the aggregate statistics are untouched.
func ResetRecord(ledger *models.GameStateLedger, region, date string) {
	delete(ledger.Records, models.RecordKey(region, date))
}

// updateStats applies a single completion to the overall and per-region
// aggregates: totals and wins increment, the running average is recomputed
// over all completed records, and the streak counters advance.
func updateStats(ledger *models.GameStateLedger, record *models.DailyGameRecord) {
	stats := &ledger.Stats
	stats.TotalGamesPlayed++
	if record.Won {
		stats.TotalGamesWon++
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.MaxStreak {
			stats.MaxStreak = stats.CurrentStreak
		}
	} else {
		stats.CurrentStreak = 0
	}
	stats.AverageGuesses = averageGuesses(ledger, "")

	if stats.Regions == nil {
		stats.Regions = make(map[string]*models.RegionStats)
	}
	regional, ok := stats.Regions[record.Region]
	if !ok {
		regional = &models.RegionStats{}
		stats.Regions[record.Region] = regional
	}
	regional.Played++
	if record.Won {
		regional.Won++
		regional.CurrentStreak++
		if regional.CurrentStreak > regional.MaxStreak {
			regional.MaxStreak = regional.CurrentStreak
		}
	} else {
		regional.CurrentStreak = 0
	}
	regional.AverageGuesses = averageGuesses(ledger, record.Region)
}

// averageGuesses recomputes guesses-per-game over completed records,
// optionally scoped to one region. Returns 0 when nothing has completed.
func averageGuesses(ledger *models.GameStateLedger, region string) float64 {
	total, count := 0, 0
	for _, record := range ledger.Records {
		if !record.Completed {
			continue
		}
		if region != "" && record.Region != region {
			continue
		}
		total += len(record.Guesses)
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}
