package game

import (
	"encoding/json"
	"time"

	"audiobirdle/internal/models"
)

// legacyFallbackRegion is the region a versionless single-record state is
// filed under: the game shipped US-only before regions existed.
const legacyFallbackRegion = "us"

// ledgerProbe distinguishes the two persisted shapes without committing to
// either: a current ledger carries a version >= 2 and a record map, a legacy
// state carries neither.
type ledgerProbe struct {
	Version int                        `json:"version"`
	Records map[string]json.RawMessage `json:"records"`
	Stats   *models.AggregateStats     `json:"stats"`
}

// MigrateIfNeeded turns raw persisted state of any vintage into a
// current-version ledger. Empty or undecodable input yields a fresh ledger.
// A legacy single-record state is wrapped into one DailyGameRecord under the
// legacy fallback region, keyed by the record's own date (today when it has
// none); aggregate-stats fields that structurally match are preserved.
// Migration is best-effort: anything that cannot be carried over gets the
// fresh defaults.
func MigrateIfNeeded(raw []byte, today string, now time.Time) *models.GameStateLedger {
	if len(raw) == 0 {
		return NewLedger()
	}

	var probe ledgerProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return NewLedger()
	}

	if probe.Version >= models.CurrentLedgerVersion && probe.Records != nil {
		var ledger models.GameStateLedger
		if err := json.Unmarshal(raw, &ledger); err != nil {
			return NewLedger()
		}
		if ledger.Records == nil {
			ledger.Records = make(map[string]*models.DailyGameRecord)
		}
		if ledger.Stats.Regions == nil {
			ledger.Stats.Regions = make(map[string]*models.RegionStats)
		}
		ledger.Version = models.CurrentLedgerVersion
		return &ledger
	}

	return migrateLegacy(raw, today, now, probe.Stats)
}

func migrateLegacy(raw []byte, today string, now time.Time, stats *models.AggregateStats) *models.GameStateLedger {
	ledger := NewLedger()

	if stats != nil {
		ledger.Stats = *stats
		if ledger.Stats.Regions == nil {
			ledger.Stats.Regions = make(map[string]*models.RegionStats)
		}
	}

	var legacy models.LegacyStateV1
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return ledger
	}
	if legacy.Guesses == nil {
		// Not a single-day record; nothing more to carry over.
		return ledger
	}

	date := legacy.Date
	if date == "" {
		date = today
	}

	record := NewDailyRecord(legacyFallbackRegion, date, now)
	record.Guesses = legacy.Guesses
	record.Completed = legacy.Completed
	record.Won = legacy.Won
	if legacy.MaxGuesses > 0 {
		record.MaxGuesses = legacy.MaxGuesses
	}
	if legacy.StartTime != nil {
		record.StartTime = *legacy.StartTime
	}
	record.EndTime = legacy.EndTime

	ledger.Records[models.RecordKey(legacyFallbackRegion, date)] = record
	ledger.LastPlayed = &models.LastPlayed{Region: legacyFallbackRegion, Date: date}
	return ledger
}
