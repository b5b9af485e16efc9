package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"audiobirdle/internal/catalog"
	"audiobirdle/internal/models"
	"audiobirdle/internal/service"
	"audiobirdle/internal/storage"
)

func testGameHandler(t *testing.T) *GameHandler {
	t.Helper()
	data := &catalog.Data{
		Regions: []models.Region{{ID: "us", Name: "United States"}},
		Birds: map[string][]models.Bird{
			"us": {
				{ID: "robin", Name: "American Robin", Family: "Turdidae", AudioURLs: []string{"https://cdn.example.com/robin.mp3"}},
				{ID: "cardinal", Name: "Northern Cardinal", Family: "Cardinalidae", AudioURLs: []string{"https://cdn.example.com/cardinal.mp3"}},
				{ID: "bluejay", Name: "Blue Jay", Family: "Turdidae", AudioURLs: []string{"https://cdn.example.com/bluejay.mp3"}},
				{ID: "sparrow", Name: "House Sparrow", Family: "Passeridae", AudioURLs: []string{"https://cdn.example.com/sparrow.mp3"}},
			},
		},
	}
	daily := service.NewDailyService(data, catalog.NewLoader(t.TempDir(), ""), nil, "birdle-salt-2025", time.Minute)
	ledger := service.NewLedgerService(storage.NewMemStore(), time.UTC)
	share := service.NewShareService("https://audio-birdle.example.com", nil)
	return NewGameHandler(daily, ledger, share)
}

func deviceRequest(method, target, body, region string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	r = r.WithContext(context.WithValue(r.Context(), DeviceContextKey, "test-device"))
	if region != "" {
		r.SetPathValue("region", region)
	}
	return r
}

func TestTodayReturnsPuzzleWithoutAnswer(t *testing.T) {
	h := testGameHandler(t)

	w := httptest.NewRecorder()
	h.Today(w, deviceRequest(http.MethodGet, "/api/game/us/today", "", "us"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp TodayResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.AudioURLs) == 0 {
		t.Error("puzzle carries no audio")
	}
	if len(resp.Options) != models.DefaultAnswerOptions {
		t.Errorf("got %d options, want %d", len(resp.Options), models.DefaultAnswerOptions)
	}
	if resp.Answer != nil {
		t.Error("answer revealed before the game completed")
	}
	if resp.Record == nil || resp.Record.MaxGuesses != models.DefaultMaxGuesses {
		t.Errorf("record snapshot = %+v", resp.Record)
	}
	if resp.SecondsUntilNextPuzzle <= 0 || resp.SecondsUntilNextPuzzle > 86400 {
		t.Errorf("countdown = %d", resp.SecondsUntilNextPuzzle)
	}
}

func TestTodayUnknownRegion(t *testing.T) {
	h := testGameHandler(t)

	w := httptest.NewRecorder()
	h.Today(w, deviceRequest(http.MethodGet, "/api/game/mars/today", "", "mars"))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestGuessFlow(t *testing.T) {
	h := testGameHandler(t)

	// Discover the answer through the options and the stable selection.
	w := httptest.NewRecorder()
	h.Today(w, deviceRequest(http.MethodGet, "/api/game/us/today", "", "us"))
	var today TodayResponse
	if err := json.Unmarshal(w.Body.Bytes(), &today); err != nil {
		t.Fatal(err)
	}

	// Guess every option; exactly one must come back correct and completion
	// must happen at that point or at the guess limit.
	var answerID string
	for _, option := range today.Options {
		w = httptest.NewRecorder()
		body := fmt.Sprintf(`{"birdId": "%s"}`, option.ID)
		h.Guess(w, deviceRequest(http.MethodPost, "/api/game/us/guess", body, "us"))
		if w.Code == http.StatusConflict {
			break
		}
		if w.Code != http.StatusOK {
			t.Fatalf("guess status = %d, body = %s", w.Code, w.Body.String())
		}

		var resp GuessResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Correct {
			answerID = option.ID
			if resp.Answer == nil || resp.Answer.ID != option.ID {
				t.Errorf("completed game did not reveal the answer: %+v", resp.Answer)
			}
			break
		}
	}
	if answerID == "" {
		t.Fatal("no option was the answer")
	}

	// Further guesses are rejected.
	w = httptest.NewRecorder()
	h.Guess(w, deviceRequest(http.MethodPost, "/api/game/us/guess", `{"birdId": "robin"}`, "us"))
	if w.Code != http.StatusConflict {
		t.Errorf("guess after completion: status = %d, want 409", w.Code)
	}

	// Stats reflect the completed game.
	w = httptest.NewRecorder()
	h.Stats(w, deviceRequest(http.MethodGet, "/api/stats", "", ""))
	var stats StatsSummary
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatal(err)
	}
	if stats.TotalGamesPlayed != 1 || stats.TotalGamesWon != 1 || stats.WinRate != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestInProgressRecordHidesAnswer(t *testing.T) {
	h := testGameHandler(t)

	// One deliberately wrong guess; "not-a-bird" can never be the answer.
	w := httptest.NewRecorder()
	h.Guess(w, deviceRequest(http.MethodPost, "/api/game/us/guess", `{"birdId": "not-a-bird"}`, "us"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp GuessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Correct || resp.Record.Completed {
		t.Fatalf("wrong guess scored as correct: %+v", resp)
	}
	if resp.Record.AnswerBirdID != "" {
		t.Error("in-progress record leaked the answer id")
	}

	w = httptest.NewRecorder()
	h.State(w, deviceRequest(http.MethodGet, "/api/game/us/state", "", "us"))
	var record models.DailyGameRecord
	if err := json.Unmarshal(w.Body.Bytes(), &record); err != nil {
		t.Fatal(err)
	}
	if record.AnswerBirdID != "" {
		t.Error("state poll leaked the answer id")
	}
}

func TestShareRequiresCompletedGame(t *testing.T) {
	h := testGameHandler(t)

	w := httptest.NewRecorder()
	h.Share(w, deviceRequest(http.MethodGet, "/api/game/us/share", "", "us"))
	if w.Code != http.StatusConflict {
		t.Errorf("share before playing: status = %d, want 409", w.Code)
	}
}

func TestStateBeforePlaying(t *testing.T) {
	h := testGameHandler(t)

	w := httptest.NewRecorder()
	h.State(w, deviceRequest(http.MethodGet, "/api/game/us/state", "", "us"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var record models.DailyGameRecord
	if err := json.Unmarshal(w.Body.Bytes(), &record); err != nil {
		t.Fatal(err)
	}
	if len(record.Guesses) != 0 || record.Completed {
		t.Errorf("fresh state = %+v", record)
	}
}
