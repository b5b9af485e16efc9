package models

import "time"

// CurrentLedgerVersion is the persisted ledger format version.
const CurrentLedgerVersion = 2

// DefaultMaxGuesses is the guess limit for every daily and practice game.
const DefaultMaxGuesses = 4

// DefaultAnswerOptions is the multiple-choice set size.
const DefaultAnswerOptions = 4

// Guess is one answer submitted for a game. Guesses are append-only.
type Guess struct {
	BirdID    string    `json:"birdId"`
	Correct   bool      `json:"correct"`
	Timestamp time.Time `json:"timestamp"`
}

// DailyGameRecord is the play record for one (region, date) pair.
type DailyGameRecord struct {
	Region       string     `json:"region"`
	Date         string     `json:"date"`
	Guesses      []Guess    `json:"guesses"`
	Completed    bool       `json:"completed"`
	Won          bool       `json:"won"`
	MaxGuesses   int        `json:"maxGuesses"`
	StartTime    time.Time  `json:"startTime"`
	EndTime      *time.Time `json:"endTime,omitempty"`
	AnswerBirdID string     `json:"answerBirdId,omitempty"`
}

// RegionStats is the per-region slice of the aggregate statistics.
type RegionStats struct {
	Played         int     `json:"played"`
	Won            int     `json:"won"`
	AverageGuesses float64 `json:"averageGuesses"`
	CurrentStreak  int     `json:"currentStreak"`
	MaxStreak      int     `json:"maxStreak"`
}

// AggregateStats is updated only when a record transitions to completed.
type AggregateStats struct {
	TotalGamesPlayed int                     `json:"totalGamesPlayed"`
	TotalGamesWon    int                     `json:"totalGamesWon"`
	AverageGuesses   float64                 `json:"averageGuesses"`
	CurrentStreak    int                     `json:"currentStreak"`
	MaxStreak        int                     `json:"maxStreak"`
	Regions          map[string]*RegionStats `json:"regions"`
}

// LastPlayed points at the most recently touched daily game.
type LastPlayed struct {
	Region string `json:"region"`
	Date   string `json:"date"`
}

// GameStateLedger is the root persisted object for one device: every daily
// record ever started plus aggregate statistics.
type GameStateLedger struct {
	Version    int                         `json:"version"`
	Records    map[string]*DailyGameRecord `json:"records"`
	Stats      AggregateStats              `json:"stats"`
	LastPlayed *LastPlayed                 `json:"lastPlayed,omitempty"`
}

// RecordKey builds the ledger map key for a region and date.
func RecordKey(region, date string) string {
	return region + "-" + date
}

// LegacyStateV1 is the pre-ledger persisted shape: a single day's record at
// the root of the object, with no version field and no record map.
type LegacyStateV1 struct {
	Date       string     `json:"date"`
	Guesses    []Guess    `json:"guesses"`
	Completed  bool       `json:"completed"`
	Won        bool       `json:"won"`
	MaxGuesses int        `json:"maxGuesses"`
	StartTime  *time.Time `json:"startTime,omitempty"`
	EndTime    *time.Time `json:"endTime,omitempty"`
}
