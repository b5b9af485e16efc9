package service

import (
	"strings"
	"testing"

	"audiobirdle/internal/models"
)

func TestShareTextWonGame(t *testing.T) {
	svc := NewShareService("https://audio-birdle.example.com", nil)

	record := &models.DailyGameRecord{
		Region:     "us",
		Date:       "2025-06-08",
		MaxGuesses: 4,
		Won:        true,
		Completed:  true,
		Guesses: []models.Guess{
			{BirdID: "sparrow", Correct: false},
			{BirdID: "robin", Correct: true},
		},
	}

	text := svc.ShareText(record, "United States")

	want := "🐦 Audio-Birdle 2025-06-08\nRegion: United States\n2/4\n\n🟥🟩⬛⬛\n\nhttps://audio-birdle.example.com"
	if text != want {
		t.Errorf("share text:\n%q\nwant:\n%q", text, want)
	}
}

func TestShareTextLostGame(t *testing.T) {
	svc := NewShareService("https://audio-birdle.example.com", nil)

	record := &models.DailyGameRecord{
		Region:     "us",
		Date:       "2025-06-08",
		MaxGuesses: 4,
		Completed:  true,
		Guesses: []models.Guess{
			{Correct: false}, {Correct: false}, {Correct: false}, {Correct: false},
		},
	}

	text := svc.ShareText(record, "United States")
	if !strings.Contains(text, "X/4") {
		t.Errorf("lost game should read X/4, got:\n%s", text)
	}
	if !strings.Contains(text, "🟥🟥🟥🟥") {
		t.Errorf("four misses should render four red squares, got:\n%s", text)
	}
}

func TestShareTextNeverNamesTheBird(t *testing.T) {
	svc := NewShareService("https://audio-birdle.example.com", nil)

	record := &models.DailyGameRecord{
		Region:       "us",
		Date:         "2025-06-08",
		MaxGuesses:   4,
		Won:          true,
		Completed:    true,
		AnswerBirdID: "robin",
		Guesses:      []models.Guess{{BirdID: "robin", Correct: true}},
	}

	if strings.Contains(svc.ShareText(record, "United States"), "robin") {
		t.Error("share text leaked the answer")
	}
}
