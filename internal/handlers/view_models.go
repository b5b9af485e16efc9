package handlers

import (
	"audiobirdle/internal/models"
)

// BirdOption is a bird as shown in the multiple-choice list. Family is
// withheld: exposing it would reveal which distractors share the answer's
// family.
type BirdOption struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ScientificName string `json:"scientificName"`
}

func toOptions(birds []models.Bird) []BirdOption {
	options := make([]BirdOption, len(birds))
	for i, b := range birds {
		options[i] = BirdOption{ID: b.ID, Name: b.Name, ScientificName: b.ScientificName}
	}
	return options
}

// TodayResponse describes today's puzzle without naming the answer: the
// audio is playable but the bird behind it stays hidden until the game
// completes.
type TodayResponse struct {
	Region                 string                  `json:"region"`
	Date                   string                  `json:"date"`
	Subregion              string                  `json:"subregion,omitempty"`
	AudioURLs              []string                `json:"audioUrls"`
	Options                []BirdOption            `json:"options"`
	Record                 *models.DailyGameRecord `json:"record"`
	Answer                 *BirdOption             `json:"answer,omitempty"`
	SecondsUntilNextPuzzle int                     `json:"secondsUntilNextPuzzle"`
}

// GuessRequest is the body of a daily or practice guess.
type GuessRequest struct {
	BirdID string `json:"birdId"`
}

// GuessResponse returns the post-guess record. Answer is set only once the
// game has completed.
type GuessResponse struct {
	Correct bool                    `json:"correct"`
	Record  *models.DailyGameRecord `json:"record"`
	Answer  *BirdOption             `json:"answer,omitempty"`
}

// StatsSummary is the aggregate statistics with the derived win rate.
type StatsSummary struct {
	models.AggregateStats
	WinRate float64 `json:"winRate"`
}

// ShareResponse carries the emoji summary text.
type ShareResponse struct {
	Text string `json:"text"`
}

// ShareEmailRequest asks for the share text to be mailed to a friend.
type ShareEmailRequest struct {
	Region string `json:"region"`
	Email  string `json:"email"`
}

// ShareEmailResponse always carries the text so a failed or disabled mailer
// never loses the share.
type ShareEmailResponse struct {
	Text string `json:"text"`
	Sent bool   `json:"sent"`
}

// RegionSettingRequest sets the device's region selection.
type RegionSettingRequest struct {
	Region string `json:"region"`
}

// PracticeResponse mirrors a practice session with the current bird's
// identity withheld until the round completes.
type PracticeResponse struct {
	Region     string         `json:"region"`
	RoundIndex int            `json:"roundIndex"`
	AudioURLs  []string       `json:"audioUrls"`
	Options    []BirdOption   `json:"options"`
	Guesses    []models.Guess `json:"guesses"`
	Completed  bool           `json:"completed"`
	Won        bool           `json:"won"`
	MaxGuesses int            `json:"maxGuesses"`
	Answer     *BirdOption    `json:"answer,omitempty"`
}

func toPracticeResponse(session *models.PracticeSession) *PracticeResponse {
	resp := &PracticeResponse{
		Region:     session.Region,
		RoundIndex: session.RoundIndex,
		Options:    toOptions(session.AnswerOptions),
		Guesses:    session.Guesses,
		Completed:  session.Completed,
		Won:        session.Won,
		MaxGuesses: session.MaxGuesses,
	}
	if session.Guesses == nil {
		resp.Guesses = []models.Guess{}
	}
	if session.CurrentBird != nil {
		resp.AudioURLs = session.CurrentBird.AudioURLs
		if session.Completed {
			answer := BirdOption{
				ID:             session.CurrentBird.ID,
				Name:           session.CurrentBird.Name,
				ScientificName: session.CurrentBird.ScientificName,
			}
			resp.Answer = &answer
		}
	}
	return resp
}

// sanitizeRecord hides the stored answer id from in-progress records so a
// state poll cannot spoil the game.
func sanitizeRecord(record *models.DailyGameRecord) *models.DailyGameRecord {
	if record == nil || record.Completed || record.AnswerBirdID == "" {
		return record
	}
	clean := *record
	clean.AnswerBirdID = ""
	return &clean
}

func toAnswer(bird *models.Bird) *BirdOption {
	if bird == nil {
		return nil
	}
	return &BirdOption{ID: bird.ID, Name: bird.Name, ScientificName: bird.ScientificName}
}

// PublishRequest is the admin body for publishing a daily answer. Either a
// plain birdId (hashed server-side) or a precomputed answerHash is accepted.
type PublishRequest struct {
	Password   string `json:"password"`
	Date       string `json:"date"`
	Region     string `json:"region"`
	BirdID     string `json:"birdId,omitempty"`
	AnswerHash string `json:"answerHash,omitempty"`
	Subregion  string `json:"subregion,omitempty"`
}
