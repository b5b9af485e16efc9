// Package service holds the application services between the HTTP handlers
// and the game engine, storage and repositories.
package service

import (
	"log"
	"strings"
	"sync"
	"time"

	"audiobirdle/internal/catalog"
	"audiobirdle/internal/game"
	"audiobirdle/internal/models"
	"audiobirdle/internal/repository"
)

// DailyService resolves the bird of the day for a region. Resolution order:
// a row published to the database, then the static published-answer table,
// then the deterministic catalog fallback. Unresolvable hashes fall through
// silently so a stale publication can never make a region unplayable.
type DailyService struct {
	data      *catalog.Data
	loader    *catalog.Loader
	dailyRepo *repository.DailyAnswerRepository
	salt      string

	cacheTTL      time.Duration
	mu            sync.Mutex
	cachedEntries []models.DailyAnswerEntry
	cachedAt      time.Time
}

// NewDailyService creates a daily service. dailyRepo may be nil when no
// database is configured; resolution then skips straight to the static table.
func NewDailyService(data *catalog.Data, loader *catalog.Loader, dailyRepo *repository.DailyAnswerRepository, salt string, cacheTTL time.Duration) *DailyService {
	return &DailyService{
		data:      data,
		loader:    loader,
		dailyRepo: dailyRepo,
		salt:      salt,
		cacheTTL:  cacheTTL,
	}
}

// Regions returns all playable regions.
func (s *DailyService) Regions() []models.Region {
	return s.data.Regions
}

// Region returns a region by id, or nil.
func (s *DailyService) Region(id string) *models.Region {
	return s.data.Region(id)
}

// Catalog returns the bird catalog for a region.
func (s *DailyService) Catalog(region string) []models.Bird {
	return s.data.Catalog(region)
}

// ResolveDailyBird returns the answer bird for (region, date) along with the
// published subregion label, if any. Returns nil when the region has no
// catalog.
func (s *DailyService) ResolveDailyBird(region, date string) (*models.Bird, string) {
	birds := s.data.Catalog(region)
	if len(birds) == 0 {
		return nil, ""
	}

	if entry := s.publishedEntry(date, region); entry != nil {
		if bird := game.FindBirdByHash(birds, entry.AnswerHash, s.salt); bird != nil {
			return bird, entry.Subregion
		}
		log.Printf("published answer hash %q for %s/%s matches no bird, using fallback", entry.AnswerHash, region, date)
	}

	return game.FallbackDailyBird(region, birds, date), ""
}

// AnswerOptions returns the multiple-choice set for the daily game.
func (s *DailyService) AnswerOptions(region, date string, correct models.Bird) []models.Bird {
	return game.AnswerOptions(region, date, s.data.Catalog(region), correct, models.DefaultAnswerOptions)
}

// AnswerHashFor computes the publishable salted digest for a bird id.
func (s *DailyService) AnswerHashFor(birdID string) string {
	return game.HashBirdID(birdID, s.salt)
}

// PublishEntry records an answer publication, overwriting any earlier row
// for the same date and region.
func (s *DailyService) PublishEntry(entry *models.DailyAnswerEntry) error {
	if s.dailyRepo == nil {
		return nil
	}
	entry.AnswerHash = strings.ToLower(entry.AnswerHash)
	return s.dailyRepo.Upsert(entry)
}

// publishedEntry looks up a publication for (date, region), database first.
func (s *DailyService) publishedEntry(date, region string) *models.DailyAnswerEntry {
	if s.dailyRepo != nil {
		entry, err := s.dailyRepo.Find(date, region)
		if err != nil {
			log.Printf("daily answer lookup failed for %s/%s: %v", region, date, err)
		} else if entry != nil {
			return entry
		}
	}
	return game.FindDailyEntry(s.staticEntries(), date, region)
}

// staticEntries returns the static published-answer table, re-read at most
// once per cache interval so a redeployed daily.json is picked up without a
// restart.
func (s *DailyService) staticEntries() []models.DailyAnswerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cachedEntries != nil && time.Since(s.cachedAt) < s.cacheTTL {
		return s.cachedEntries
	}

	entries, err := s.loader.LoadDailyEntries()
	if err != nil {
		log.Printf("published-answer table unavailable, relying on fallback selection: %v", err)
		entries = []models.DailyAnswerEntry{}
	}
	s.cachedEntries = entries
	s.cachedAt = time.Now()
	return s.cachedEntries
}
