package models

import "encoding/json"

// Bird is reference data for one playable species. Catalogs are loaded from
// static JSON and never mutated by the game.
type Bird struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	ScientificName string   `json:"scientificName"`
	Family         string   `json:"family"`
	AudioURLs      []string `json:"audioUrl"`
}

// birdJSON mirrors Bird but keeps audioUrl raw so both the single-string and
// array forms found in published catalogs can be decoded.
type birdJSON struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	ScientificName string          `json:"scientificName"`
	Family         string          `json:"family"`
	AudioURL       json.RawMessage `json:"audioUrl"`
}

// UnmarshalJSON accepts audioUrl as either a string or an array of strings.
func (b *Bird) UnmarshalJSON(data []byte) error {
	var raw birdJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	b.ID = raw.ID
	b.Name = raw.Name
	b.ScientificName = raw.ScientificName
	b.Family = raw.Family
	b.AudioURLs = nil

	if len(raw.AudioURL) == 0 || string(raw.AudioURL) == "null" {
		return nil
	}

	var single string
	if err := json.Unmarshal(raw.AudioURL, &single); err == nil {
		if single != "" {
			b.AudioURLs = []string{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(raw.AudioURL, &many); err != nil {
		return err
	}
	b.AudioURLs = many
	return nil
}

// Region is reference data for a playable region.
type Region struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DailyAnswerEntry is one row of the published-answer table. The answer is
// stored as a truncated salted hash so the plain bird id is not shipped.
type DailyAnswerEntry struct {
	Date       string `json:"date"`
	Region     string `json:"region"`
	AnswerHash string `json:"answerHash"`
	Subregion  string `json:"subregion,omitempty"`
}
