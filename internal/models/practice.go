package models

import "time"

// PracticeSession is an ephemeral practice-mode game. It is never persisted
// and never touches the aggregate statistics. RoundIndex both selects the
// round's bird and seeds its answer options, so a session is fully
// restartable from (region, round index).
type PracticeSession struct {
	Region        string     `json:"region"`
	CurrentBird   *Bird      `json:"currentBird,omitempty"`
	AnswerOptions []Bird     `json:"answerOptions"`
	Guesses       []Guess    `json:"guesses"`
	Completed     bool       `json:"completed"`
	Won           bool       `json:"won"`
	MaxGuesses    int        `json:"maxGuesses"`
	RoundIndex    int        `json:"roundIndex"`
	StartTime     time.Time  `json:"startTime"`
	EndTime       *time.Time `json:"endTime,omitempty"`
}
