package game

import "audiobirdle/internal/models"

// FallbackDailyBird picks the day's answer deterministically from the region
// catalog: index = HashString(region + "-" + date) mod catalog length. This
// is the ground truth whenever no published-answer table applies, and it
// keeps the game playable fully offline. Returns nil for an empty catalog,
// which callers treat as "region unplayable today", not as an error.
func FallbackDailyBird(region string, catalog []models.Bird, date string) *models.Bird {
	if len(catalog) == 0 {
		return nil
	}
	seed := HashString(region + "-" + date)
	return &catalog[int(seed%uint32(len(catalog)))]
}

// FindDailyEntry returns the published-answer row for (date, region), or nil
// when the table has no matching row.
func FindDailyEntry(entries []models.DailyAnswerEntry, date, region string) *models.DailyAnswerEntry {
	for i := range entries {
		if entries[i].Date == date && entries[i].Region == region {
			return &entries[i]
		}
	}
	return nil
}
