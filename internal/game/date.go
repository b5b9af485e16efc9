package game

import "time"

// DateLayout is the wire format for game dates.
const DateLayout = "2006-01-02"

// GameDate formats the current puzzle date in the game's timezone. The day
// rolls over at local midnight in loc for every player, so the same date
// string selects the same bird worldwide.
func GameDate(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(DateLayout)
}

// SecondsUntilNextPuzzle returns how long until the next daily puzzle
// unlocks: the distance to the upcoming midnight in loc.
func SecondsUntilNextPuzzle(now time.Time, loc *time.Location) int {
	local := now.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
	return int(midnight.Sub(local).Seconds())
}
