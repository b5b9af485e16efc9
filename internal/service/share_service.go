package service

import (
	"fmt"
	"strings"

	"audiobirdle/internal/models"
)

// ShareService renders finished daily games into the emoji summary players
// paste into chats. The text names the region and date but never the bird,
// so sharing cannot spoil the answer.
type ShareService struct {
	baseURL string
	email   *EmailService
}

// NewShareService creates a share service. baseURL is the public site link
// appended to every summary.
func NewShareService(baseURL string, email *EmailService) *ShareService {
	return &ShareService{baseURL: baseURL, email: email}
}

// Email returns the underlying email delivery service.
func (s *ShareService) Email() *EmailService {
	return s.email
}

// ShareText renders one completed record. Each guess becomes a square, green
// for the winning guess and red for a miss, with unused guesses padded black
// so every summary for a region reads against the same guess budget.
func (s *ShareService) ShareText(record *models.DailyGameRecord, regionName string) string {
	result := fmt.Sprintf("X/%d", record.MaxGuesses)
	if record.Won {
		result = fmt.Sprintf("%d/%d", len(record.Guesses), record.MaxGuesses)
	}

	var grid strings.Builder
	for _, guess := range record.Guesses {
		if guess.Correct {
			grid.WriteString("🟩")
		} else {
			grid.WriteString("🟥")
		}
	}
	for i := len(record.Guesses); i < record.MaxGuesses; i++ {
		grid.WriteString("⬛")
	}

	return fmt.Sprintf("🐦 Audio-Birdle %s\nRegion: %s\n%s\n\n%s\n\n%s",
		record.Date, regionName, result, grid.String(), s.baseURL)
}
