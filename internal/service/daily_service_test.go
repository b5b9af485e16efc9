package service

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"audiobirdle/internal/catalog"
	"audiobirdle/internal/game"
	"audiobirdle/internal/models"
)

const testSalt = "birdle-salt-2025"

func testData() *catalog.Data {
	return &catalog.Data{
		Regions: []models.Region{
			{ID: "us", Name: "United States"},
		},
		Birds: map[string][]models.Bird{
			"us": {
				{ID: "robin", Name: "American Robin", Family: "Turdidae"},
				{ID: "cardinal", Name: "Northern Cardinal", Family: "Cardinalidae"},
				{ID: "bluejay", Name: "Blue Jay", Family: "Turdidae"},
				{ID: "sparrow", Name: "House Sparrow", Family: "Passeridae"},
			},
		},
	}
}

func newTestDailyService(t *testing.T, dailyJSON string) *DailyService {
	t.Helper()
	dir := t.TempDir()
	if dailyJSON != "" {
		if err := os.WriteFile(filepath.Join(dir, "daily.json"), []byte(dailyJSON), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return NewDailyService(testData(), catalog.NewLoader(dir, ""), nil, testSalt, time.Minute)
}

func TestResolveDailyBirdFallback(t *testing.T) {
	svc := newTestDailyService(t, "")

	bird, subregion := svc.ResolveDailyBird("us", "2025-06-08")
	if bird == nil {
		t.Fatal("playable region resolved to no bird")
	}
	if subregion != "" {
		t.Errorf("fallback selection carries no subregion, got %q", subregion)
	}

	again, _ := svc.ResolveDailyBird("us", "2025-06-08")
	if again.ID != bird.ID {
		t.Errorf("same day resolved differently: %s then %s", bird.ID, again.ID)
	}
}

func TestResolveDailyBirdFromPublishedTable(t *testing.T) {
	hash := game.HashBirdID("cardinal", testSalt)
	svc := newTestDailyService(t, fmt.Sprintf(
		`[{"date": "2025-06-08", "region": "us", "answerHash": "%s", "subregion": "Midwest"}]`, hash))

	bird, subregion := svc.ResolveDailyBird("us", "2025-06-08")
	if bird == nil || bird.ID != "cardinal" {
		t.Fatalf("published answer ignored, got %+v", bird)
	}
	if subregion != "Midwest" {
		t.Errorf("subregion = %q, want Midwest", subregion)
	}
}

func TestResolveDailyBirdStaleHashFallsBack(t *testing.T) {
	svc := newTestDailyService(t,
		`[{"date": "2025-06-08", "region": "us", "answerHash": "ffffffff"}]`)

	bird, _ := svc.ResolveDailyBird("us", "2025-06-08")
	if bird == nil {
		t.Fatal("stale publication must not make the region unplayable")
	}
	want := game.FallbackDailyBird("us", testData().Birds["us"], "2025-06-08")
	if bird.ID != want.ID {
		t.Errorf("got %s, want fallback bird %s", bird.ID, want.ID)
	}
}

func TestResolveDailyBirdUnknownRegion(t *testing.T) {
	svc := newTestDailyService(t, "")
	if bird, _ := svc.ResolveDailyBird("mars", "2025-06-08"); bird != nil {
		t.Errorf("unknown region resolved to %+v", bird)
	}
}

func TestAnswerOptionsContainCorrectBird(t *testing.T) {
	svc := newTestDailyService(t, "")

	bird, _ := svc.ResolveDailyBird("us", "2025-06-08")
	options := svc.AnswerOptions("us", "2025-06-08", *bird)
	if len(options) != models.DefaultAnswerOptions {
		t.Fatalf("got %d options, want %d", len(options), models.DefaultAnswerOptions)
	}
	found := 0
	for _, o := range options {
		if o.ID == bird.ID {
			found++
		}
	}
	if found != 1 {
		t.Errorf("correct bird appears %d times", found)
	}
}
