package game

import (
	"fmt"
	"time"

	"audiobirdle/internal/models"
)

// PracticeBird returns the bird for a practice round. The catalog is
// shuffled with a round-derived seed and indexed modulo its length, so the
// practice sequence is an infinite deterministic cycle through the catalog
// in an order unrelated to the daily order.
func PracticeBird(region string, catalog []models.Bird, roundIndex int) *models.Bird {
	if len(catalog) == 0 {
		return nil
	}
	seed := HashString(fmt.Sprintf("practice-%s-%d", region, roundIndex))
	shuffled := Shuffle(catalog, seed)
	return &shuffled[roundIndex%len(shuffled)]
}

// NewPracticeSession builds the first round of a practice session for a
// region. Returns nil when the catalog is empty.
func NewPracticeSession(region string, catalog []models.Bird, now time.Time) *models.PracticeSession {
	session := &models.PracticeSession{
		Region:     region,
		MaxGuesses: models.DefaultMaxGuesses,
		StartTime:  now,
	}
	if !dealPracticeRound(session, catalog, 0, now) {
		return nil
	}
	return session
}

// ProcessPracticeGuess appends a guess to the session, completing it on a
// correct answer or when the guess limit is reached. Guesses after
// completion are a no-op. Practice never touches the aggregate statistics.
func ProcessPracticeGuess(session *models.PracticeSession, guessedBirdID string, now time.Time) {
	if session.CurrentBird == nil || session.Completed {
		return
	}

	correct := guessedBirdID == session.CurrentBird.ID
	session.Guesses = append(session.Guesses, models.Guess{
		BirdID:    guessedBirdID,
		Correct:   correct,
		Timestamp: now,
	})

	if correct || len(session.Guesses) >= session.MaxGuesses {
		session.Completed = true
		session.Won = correct
		end := now
		session.EndTime = &end
	}
}

// NextPracticeRound advances the session to the next round index and redraws
// bird and options. The session is left untouched when the catalog is empty.
func NextPracticeRound(session *models.PracticeSession, catalog []models.Bird, now time.Time) bool {
	return dealPracticeRound(session, catalog, session.RoundIndex+1, now)
}

// RetryPracticeRound regenerates the current round with cleared guesses. The
// option order is stable because the seeds are pure functions of
// (region, round index, bird id).
func RetryPracticeRound(session *models.PracticeSession, catalog []models.Bird, now time.Time) bool {
	return dealPracticeRound(session, catalog, session.RoundIndex, now)
}

func dealPracticeRound(session *models.PracticeSession, catalog []models.Bird, roundIndex int, now time.Time) bool {
	bird := PracticeBird(session.Region, catalog, roundIndex)
	if bird == nil {
		return false
	}

	session.RoundIndex = roundIndex
	session.CurrentBird = bird
	session.AnswerOptions = PracticeAnswerOptions(session.Region, catalog, roundIndex, *bird, models.DefaultAnswerOptions)
	session.Guesses = nil
	session.Completed = false
	session.Won = false
	session.StartTime = now
	session.EndTime = nil
	return true
}
