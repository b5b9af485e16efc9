package service

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"audiobirdle/internal/game"
	"audiobirdle/internal/models"
	"audiobirdle/internal/storage"
)

// LedgerService owns a device's persisted game state: the per-day records,
// the aggregate statistics and the selected region. Every mutation runs as
// load, change, save under one lock so concurrent requests from the same
// device cannot interleave partial writes.
type LedgerService struct {
	store storage.Store
	loc   *time.Location
	now   func() time.Time
	mu    sync.Mutex
}

// NewLedgerService creates a ledger service over a key-value store. loc is
// the timezone the daily puzzle rolls over in.
func NewLedgerService(store storage.Store, loc *time.Location) *LedgerService {
	return &LedgerService{
		store: store,
		loc:   loc,
		now:   time.Now,
	}
}

// Today returns the current game date for the configured rollover timezone.
func (s *LedgerService) Today() string {
	return game.GameDate(s.now(), s.loc)
}

// SecondsUntilNextPuzzle returns the countdown to the next daily rollover.
func (s *LedgerService) SecondsUntilNextPuzzle() int {
	return game.SecondsUntilNextPuzzle(s.now(), s.loc)
}

// LoadLedger returns the device's ledger, migrating older persisted shapes in
// place. A read failure logs and yields a fresh ledger so the game keeps
// working on degraded storage.
func (s *LedgerService) LoadLedger(deviceID string) *models.GameStateLedger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLedger(deviceID)
}

// DailyRecord returns the record for (region, date), creating it on first
// access. The creation is persisted so StartTime survives across requests.
func (s *LedgerService) DailyRecord(deviceID, region, date string) *models.DailyGameRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger := s.loadLedger(deviceID)
	key := models.RecordKey(region, date)
	if record, ok := ledger.Records[key]; ok {
		return record
	}
	record := game.GetOrCreateDailyRecord(ledger, region, date, s.now())
	s.saveLedger(deviceID, ledger)
	return record
}

// HasPlayed reports whether the device has guessed at least once for
// (region, date).
func (s *LedgerService) HasPlayed(deviceID, region, date string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return game.HasPlayed(s.loadLedger(deviceID), region, date)
}

// SubmitGuess applies one guess and persists the result. The returned record
// reflects the post-guess state.
func (s *LedgerService) SubmitGuess(deviceID, region, date, guessedBirdID, correctBirdID string) *models.DailyGameRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger := s.loadLedger(deviceID)
	record := game.ApplyGuess(ledger, region, date, guessedBirdID, correctBirdID, s.now())
	s.saveLedger(deviceID, ledger)
	return record
}

// Stats returns the device's aggregate statistics.
func (s *LedgerService) Stats(deviceID string) models.AggregateStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLedger(deviceID).Stats
}

// Record returns the stored record for (region, date) without creating one.
func (s *LedgerService) Record(deviceID, region, date string) *models.DailyGameRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLedger(deviceID).Records[models.RecordKey(region, date)]
}

// ResetRecord deletes the one record for (region, date), leaving history and
// statistics alone.
func (s *LedgerService) ResetRecord(deviceID, region, date string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger := s.loadLedger(deviceID)
	game.ResetRecord(ledger, region, date)
	s.saveLedger(deviceID, ledger)
}

// ResetAll wipes the device's entire game state, records and statistics both.
func (s *LedgerService) ResetAll(deviceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Remove(deviceID, storage.KeyGameState); err != nil {
		log.Printf("failed to clear game state for device %s: %v", deviceID, err)
	}
}

// SelectedRegion returns the device's chosen region, or the default when none
// has been saved.
func (s *LedgerService) SelectedRegion(deviceID, defaultRegion string) string {
	region, ok, err := s.store.Get(deviceID, storage.KeyRegion)
	if err != nil {
		log.Printf("failed to read region for device %s: %v", deviceID, err)
		return defaultRegion
	}
	if !ok || region == "" {
		return defaultRegion
	}
	return region
}

// SetSelectedRegion persists the device's region choice.
func (s *LedgerService) SetSelectedRegion(deviceID, region string) error {
	return s.store.Set(deviceID, storage.KeyRegion, region)
}

func (s *LedgerService) loadLedger(deviceID string) *models.GameStateLedger {
	raw, ok, err := s.store.Get(deviceID, storage.KeyGameState)
	if err != nil {
		log.Printf("failed to read game state for device %s: %v", deviceID, err)
		return game.NewLedger()
	}
	if !ok {
		return game.NewLedger()
	}
	return game.MigrateIfNeeded([]byte(raw), game.GameDate(s.now(), s.loc), s.now())
}

// saveLedger persists the ledger. Write failures are logged, not returned:
// the in-memory state already answered the request and the next successful
// write catches the store up.
func (s *LedgerService) saveLedger(deviceID string, ledger *models.GameStateLedger) {
	raw, err := json.Marshal(ledger)
	if err != nil {
		log.Printf("failed to encode game state for device %s: %v", deviceID, err)
		return
	}
	if err := s.store.Set(deviceID, storage.KeyGameState, string(raw)); err != nil {
		log.Printf("failed to save game state for device %s: %v", deviceID, err)
	}
}
