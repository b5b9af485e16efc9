package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadGameData(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "regions.json", `[
		{"id": "us", "name": "United States"},
		{"id": "uk", "name": "United Kingdom"}
	]`)
	writeFile(t, dir, "birds.json", `{
		"us": [
			{"id": "robin", "name": "American Robin", "scientificName": "Turdus migratorius",
			 "family": "Turdidae", "audioUrl": "https://cdn.example.com/robin.mp3"},
			{"id": "bluejay", "name": "Blue Jay", "scientificName": "Cyanocitta cristata",
			 "family": "Corvidae", "audioUrl": ["https://cdn.example.com/bj1.mp3", "https://cdn.example.com/bj2.mp3"]}
		]
	}`)

	loader := NewLoader(dir, "")
	data, err := loader.LoadGameData()
	if err != nil {
		t.Fatal(err)
	}

	if len(data.Regions) != 2 {
		t.Fatalf("got %d regions, want 2", len(data.Regions))
	}
	if region := data.Region("uk"); region == nil || region.Name != "United Kingdom" {
		t.Errorf("Region(uk) = %+v", region)
	}
	if data.Region("nope") != nil {
		t.Error("unknown region should be nil")
	}

	birds := data.Catalog("us")
	if len(birds) != 2 {
		t.Fatalf("got %d birds, want 2", len(birds))
	}

	// audioUrl accepts both the single-string and array forms.
	if len(birds[0].AudioURLs) != 1 || birds[0].AudioURLs[0] != "https://cdn.example.com/robin.mp3" {
		t.Errorf("single audioUrl decoded as %v", birds[0].AudioURLs)
	}
	if len(birds[1].AudioURLs) != 2 {
		t.Errorf("array audioUrl decoded as %v", birds[1].AudioURLs)
	}

	if data.Catalog("uk") != nil {
		t.Error("region without birds should have a nil catalog")
	}
}

func TestLoadDailyEntries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "daily.json", `[
		{"date": "2025-06-08", "region": "us", "answerHash": "1a2b3c4d", "subregion": "Pacific Northwest"}
	]`)

	loader := NewLoader(dir, "")
	entries, err := loader.LoadDailyEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].AnswerHash != "1a2b3c4d" {
		t.Errorf("entries = %+v", entries)
	}
	if entries[0].Subregion != "Pacific Northwest" {
		t.Errorf("subregion = %q", entries[0].Subregion)
	}
}

func TestLoadDailyEntriesMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "daily.json", `{"not": "an array"}`)

	loader := NewLoader(dir, "")
	if _, err := loader.LoadDailyEntries(); err == nil {
		t.Error("malformed table must surface an error for the fallback path")
	}
}

func TestLoadGameDataMissingFiles(t *testing.T) {
	loader := NewLoader(t.TempDir(), "")
	if _, err := loader.LoadGameData(); err == nil {
		t.Error("missing catalogs must be an error")
	}
}
