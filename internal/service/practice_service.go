package service

import (
	"sync"
	"time"

	"audiobirdle/internal/game"
	"audiobirdle/internal/models"
)

// PracticeService tracks one in-flight practice session per device. Sessions
// are held in memory only: practice never counts toward statistics, so a
// restart losing them costs nothing.
type PracticeService struct {
	daily *DailyService
	now   func() time.Time

	mu       sync.Mutex
	sessions map[string]*models.PracticeSession
}

// NewPracticeService creates a practice service drawing birds from the same
// catalogs as the daily game.
func NewPracticeService(daily *DailyService) *PracticeService {
	return &PracticeService{
		daily:    daily,
		now:      time.Now,
		sessions: make(map[string]*models.PracticeSession),
	}
}

// Start begins a fresh session for the device, replacing any existing one.
// Returns nil when the region has no catalog.
func (s *PracticeService) Start(deviceID, region string) *models.PracticeSession {
	session := game.NewPracticeSession(region, s.daily.Catalog(region), s.now())
	if session == nil {
		return nil
	}

	s.mu.Lock()
	s.sessions[deviceID] = session
	s.mu.Unlock()
	return session
}

// Current returns the device's active session, or nil.
func (s *PracticeService) Current(deviceID string) *models.PracticeSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[deviceID]
}

// Guess applies one guess to the device's session. Returns nil when no
// session is active.
func (s *PracticeService) Guess(deviceID, guessedBirdID string) *models.PracticeSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.sessions[deviceID]
	if session == nil {
		return nil
	}
	game.ProcessPracticeGuess(session, guessedBirdID, s.now())
	return session
}

// Next advances the device's session to the next round.
func (s *PracticeService) Next(deviceID string) *models.PracticeSession {
	return s.redeal(deviceID, game.NextPracticeRound)
}

// Retry restarts the current round with cleared guesses. The bird and the
// option order stay the same.
func (s *PracticeService) Retry(deviceID string) *models.PracticeSession {
	return s.redeal(deviceID, game.RetryPracticeRound)
}

// End discards the device's session.
func (s *PracticeService) End(deviceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, deviceID)
}

func (s *PracticeService) redeal(deviceID string, deal func(*models.PracticeSession, []models.Bird, time.Time) bool) *models.PracticeSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.sessions[deviceID]
	if session == nil {
		return nil
	}
	if !deal(session, s.daily.Catalog(session.Region), s.now()) {
		return nil
	}
	return session
}
