package game

import (
	"fmt"

	"audiobirdle/internal/models"
)

// AnswerOptions builds the multiple-choice set for a daily game: optionCount
// distinct birds containing the correct bird exactly once, positions
// randomized deterministically. Distractors prefer the correct bird's
// taxonomic family; other families fill any shortfall. When the whole
// catalog holds fewer than optionCount birds the result is simply shorter.
func AnswerOptions(region, date string, catalog []models.Bird, correct models.Bird, optionCount int) []models.Bird {
	key := region + "-" + date + "-" + correct.ID
	return buildOptions(catalog, correct, optionCount,
		HashString(key+"-options"),
		HashString(key+"-final"))
}

// PracticeAnswerOptions mirrors AnswerOptions for practice mode, keyed by
// round index instead of date so each round has its own stable option set.
func PracticeAnswerOptions(region string, catalog []models.Bird, roundIndex int, correct models.Bird, optionCount int) []models.Bird {
	return buildOptions(catalog, correct, optionCount,
		HashString(fmt.Sprintf("practice-options-%s-%d-%s", region, roundIndex, correct.ID)),
		HashString(fmt.Sprintf("practice-final-%s-%d-%s", region, roundIndex, correct.ID)))
}

// buildOptions assembles correct + family-biased distractors using seed for
// distractor selection and finalSeed for the combined ordering. Two
// independent seeds keep the answer's position from always being first while
// leaving both the set and its order reproducible.
func buildOptions(catalog []models.Bird, correct models.Bird, optionCount int, seed, finalSeed uint32) []models.Bird {
	if len(catalog) == 0 || optionCount <= 0 {
		return nil
	}

	var sameFamily, otherFamily []models.Bird
	for _, b := range catalog {
		if b.ID == correct.ID {
			continue
		}
		if b.Family == correct.Family {
			sameFamily = append(sameFamily, b)
		} else {
			otherFamily = append(otherFamily, b)
		}
	}

	wanted := optionCount - 1
	distractors := Shuffle(sameFamily, seed)
	if len(distractors) > wanted {
		distractors = distractors[:wanted]
	}
	if missing := wanted - len(distractors); missing > 0 {
		others := Shuffle(otherFamily, seed)
		if missing > len(others) {
			missing = len(others)
		}
		distractors = append(distractors, others[:missing]...)
	}

	options := make([]models.Bird, 0, len(distractors)+1)
	options = append(options, correct)
	options = append(options, distractors...)
	return Shuffle(options, finalSeed)
}
