package handlers

import (
	"encoding/json"
	"net/http"

	"audiobirdle/internal/models"
	"audiobirdle/internal/service"
	"audiobirdle/internal/validation"
)

// GameHandler serves the daily game: today's puzzle, guesses, state, stats
// and the share text.
type GameHandler struct {
	daily  *service.DailyService
	ledger *service.LedgerService
	share  *service.ShareService
}

// NewGameHandler creates a new game handler
func NewGameHandler(daily *service.DailyService, ledger *service.LedgerService, share *service.ShareService) *GameHandler {
	return &GameHandler{daily: daily, ledger: ledger, share: share}
}

// Regions handles GET /api/regions
func (h *GameHandler) Regions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.daily.Regions())
}

// Today handles GET /api/game/{region}/today
func (h *GameHandler) Today(w http.ResponseWriter, r *http.Request) {
	region, ok := h.playableRegion(w, r)
	if !ok {
		return
	}

	date := h.ledger.Today()
	bird, subregion := h.daily.ResolveDailyBird(region, date)
	if bird == nil {
		respondWithError(w, http.StatusNotFound, "No birds available for this region", "", nil)
		return
	}

	record := h.ledger.DailyRecord(GetDeviceID(r.Context()), region, date)

	resp := TodayResponse{
		Region:                 region,
		Date:                   date,
		Subregion:              subregion,
		AudioURLs:              bird.AudioURLs,
		Options:                toOptions(h.daily.AnswerOptions(region, date, *bird)),
		Record:                 sanitizeRecord(record),
		SecondsUntilNextPuzzle: h.ledger.SecondsUntilNextPuzzle(),
	}
	if record.Completed {
		resp.Answer = toAnswer(bird)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Guess handles POST /api/game/{region}/guess
func (h *GameHandler) Guess(w http.ResponseWriter, r *http.Request) {
	region, ok := h.playableRegion(w, r)
	if !ok {
		return
	}

	var req GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}
	if err := validation.ValidateBirdID(req.BirdID); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}

	date := h.ledger.Today()
	bird, _ := h.daily.ResolveDailyBird(region, date)
	if bird == nil {
		respondWithError(w, http.StatusNotFound, "No birds available for this region", "", nil)
		return
	}

	deviceID := GetDeviceID(r.Context())
	existing := h.ledger.Record(deviceID, region, date)
	if existing != nil && existing.Completed {
		respondWithError(w, http.StatusConflict, "Today's game is already complete", "", nil)
		return
	}

	record := h.ledger.SubmitGuess(deviceID, region, date, req.BirdID, bird.ID)

	resp := GuessResponse{
		Correct: req.BirdID == bird.ID,
		Record:  sanitizeRecord(record),
	}
	if record.Completed {
		resp.Answer = toAnswer(bird)
	}
	writeJSON(w, http.StatusOK, resp)
}

// State handles GET /api/game/{region}/state
func (h *GameHandler) State(w http.ResponseWriter, r *http.Request) {
	region, ok := h.playableRegion(w, r)
	if !ok {
		return
	}

	date := h.ledger.Today()
	record := h.ledger.Record(GetDeviceID(r.Context()), region, date)
	if record == nil {
		record = &models.DailyGameRecord{
			Region:     region,
			Date:       date,
			Guesses:    []models.Guess{},
			MaxGuesses: models.DefaultMaxGuesses,
		}
	}
	writeJSON(w, http.StatusOK, sanitizeRecord(record))
}

// Stats handles GET /api/stats
func (h *GameHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats := h.ledger.Stats(GetDeviceID(r.Context()))

	summary := StatsSummary{AggregateStats: stats}
	if stats.TotalGamesPlayed > 0 {
		summary.WinRate = float64(stats.TotalGamesWon) / float64(stats.TotalGamesPlayed)
	}
	writeJSON(w, http.StatusOK, summary)
}

// Share handles GET /api/game/{region}/share
func (h *GameHandler) Share(w http.ResponseWriter, r *http.Request) {
	region, ok := h.playableRegion(w, r)
	if !ok {
		return
	}

	date := h.ledger.Today()
	record := h.ledger.Record(GetDeviceID(r.Context()), region, date)
	if record == nil || !record.Completed {
		respondWithError(w, http.StatusConflict, "Finish today's game before sharing", "", nil)
		return
	}

	regionName := region
	if reg := h.daily.Region(region); reg != nil {
		regionName = reg.Name
	}
	writeJSON(w, http.StatusOK, ShareResponse{Text: h.share.ShareText(record, regionName)})
}

// ResetRecord handles DELETE /api/game/{region}/{date}
func (h *GameHandler) ResetRecord(w http.ResponseWriter, r *http.Request) {
	region := r.PathValue("region")
	if err := validation.ValidateRegionID(region); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}
	date := r.PathValue("date")
	if err := validation.ValidateDate(date); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}

	h.ledger.ResetRecord(GetDeviceID(r.Context()), region, date)
	w.WriteHeader(http.StatusNoContent)
}

// ResetAll handles DELETE /api/state
func (h *GameHandler) ResetAll(w http.ResponseWriter, r *http.Request) {
	h.ledger.ResetAll(GetDeviceID(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}

// playableRegion validates the region path segment and checks the region is
// known. Writes the error response itself when the region is unusable.
func (h *GameHandler) playableRegion(w http.ResponseWriter, r *http.Request) (string, bool) {
	region := r.PathValue("region")
	if err := validation.ValidateRegionID(region); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return "", false
	}
	if h.daily.Region(region) == nil {
		respondWithError(w, http.StatusNotFound, "Unknown region", "", nil)
		return "", false
	}
	return region, true
}
