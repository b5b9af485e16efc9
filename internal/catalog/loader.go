// Package catalog loads the static game data: the region list, the per-region
// bird catalogs and the optional published-answer table. All three are
// read-only inputs; the loader never writes.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"audiobirdle/internal/models"
)

const fetchTimeout = 10 * time.Second

// Data bundles the reference data loaded once per process.
type Data struct {
	Regions []models.Region
	Birds   map[string][]models.Bird
}

// Catalog returns the bird catalog for a region; nil when the region is
// unknown or has no birds, which callers treat as unplayable.
func (d *Data) Catalog(region string) []models.Bird {
	if d == nil {
		return nil
	}
	return d.Birds[region]
}

// Region returns the region record for an id, or nil.
func (d *Data) Region(id string) *models.Region {
	for i := range d.Regions {
		if d.Regions[i].ID == id {
			return &d.Regions[i]
		}
	}
	return nil
}

// Loader reads game data files from a local directory or, when baseURL is
// set, over HTTP from a static host.
type Loader struct {
	dataPath string
	baseURL  string
	client   *http.Client
}

// NewLoader creates a loader. baseURL wins over dataPath when both are set.
func NewLoader(dataPath, baseURL string) *Loader {
	return &Loader{
		dataPath: dataPath,
		baseURL:  baseURL,
		client:   &http.Client{Timeout: fetchTimeout},
	}
}

// LoadGameData reads regions.json and birds.json. Both are required: a
// deployment without catalogs has nothing to play.
func (l *Loader) LoadGameData() (*Data, error) {
	var regions []models.Region
	if err := l.loadJSON("regions.json", &regions); err != nil {
		return nil, fmt.Errorf("failed to load regions: %w", err)
	}

	birds := make(map[string][]models.Bird)
	if err := l.loadJSON("birds.json", &birds); err != nil {
		return nil, fmt.Errorf("failed to load birds: %w", err)
	}

	return &Data{Regions: regions, Birds: birds}, nil
}

// LoadDailyEntries reads the published-answer table. A missing or malformed
// daily.json is an error for the caller to log; daily selection then falls
// back to the deterministic path rather than failing the game.
func (l *Loader) LoadDailyEntries() ([]models.DailyAnswerEntry, error) {
	var entries []models.DailyAnswerEntry
	if err := l.loadJSON("daily.json", &entries); err != nil {
		return nil, fmt.Errorf("failed to load daily answers: %w", err)
	}
	return entries, nil
}

func (l *Loader) loadJSON(name string, v interface{}) error {
	raw, err := l.read(name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("malformed %s: %w", name, err)
	}
	return nil
}

func (l *Loader) read(name string) ([]byte, error) {
	if l.baseURL != "" {
		return l.fetch(l.baseURL + "/" + name)
	}
	return os.ReadFile(filepath.Join(l.dataPath, name))
}

func (l *Loader) fetch(url string) ([]byte, error) {
	resp, err := l.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
