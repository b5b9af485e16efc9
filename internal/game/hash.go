package game

import (
	"strconv"
	"strings"

	"audiobirdle/internal/models"
)

// HashString digests a string into a non-negative 32-bit integer. The
// accumulator is hash*31 + code under two's-complement int32 wraparound and
// the final bit pattern is reinterpreted as unsigned. Every seed in the
// selection engine derives from this function, so the arithmetic must never
// change: doing so would silently reassign every previously shared daily
// answer. The empty string hashes to 0.
func HashString(s string) uint32 {
	var hash int32
	for _, r := range s {
		hash = hash*31 + int32(r)
	}
	return uint32(hash)
}

// answerHashLen is the published length of a salted answer digest.
const answerHashLen = 8

// HashBirdID computes the salted digest published in the daily-answer table:
// lowercase hex of HashString(birdID + "-" + salt), truncated to its first
// eight digits. The hex is not zero-padded. The salt is light obfuscation
// for content staging, not a security measure.
func HashBirdID(birdID, salt string) string {
	digest := strconv.FormatUint(uint64(HashString(birdID+"-"+salt)), 16)
	if len(digest) > answerHashLen {
		digest = digest[:answerHashLen]
	}
	return digest
}

// FindBirdByHash returns the catalog bird whose salted digest equals
// answerHash, compared case-insensitively, or nil when no candidate matches.
func FindBirdByHash(catalog []models.Bird, answerHash, salt string) *models.Bird {
	if answerHash == "" {
		return nil
	}
	want := strings.ToLower(answerHash)
	for i := range catalog {
		if HashBirdID(catalog[i].ID, salt) == want {
			return &catalog[i]
		}
	}
	return nil
}
