package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"audiobirdle/internal/models"
	"audiobirdle/internal/service"
	"audiobirdle/internal/validation"
)

var answerHashRegex = regexp.MustCompile(`^[0-9a-fA-F]{1,8}$`)

// AdminHandler serves the operator-only publication endpoint.
type AdminHandler struct {
	daily        *service.DailyService
	passwordHash string
}

// NewAdminHandler creates a new admin handler. passwordHash is the bcrypt
// hash of the operator password; an empty hash disables the endpoint.
func NewAdminHandler(daily *service.DailyService, passwordHash string) *AdminHandler {
	return &AdminHandler{daily: daily, passwordHash: passwordHash}
}

// PublishDaily handles POST /admin/daily. The body names either a bird id,
// hashed server-side, or a precomputed answer hash from the offline
// generator.
func (h *AdminHandler) PublishDaily(w http.ResponseWriter, r *http.Request) {
	if h.passwordHash == "" {
		respondWithError(w, http.StatusForbidden, "Publishing is not configured", "", nil)
		return
	}

	var req PublishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(req.Password)); err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid password", "", nil)
		return
	}

	if err := validation.ValidateDate(req.Date); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}
	if err := validation.ValidateRegionID(req.Region); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}
	if h.daily.Region(req.Region) == nil {
		respondWithError(w, http.StatusNotFound, "Unknown region", "", nil)
		return
	}

	answerHash := req.AnswerHash
	if req.BirdID != "" {
		found := false
		for _, b := range h.daily.Catalog(req.Region) {
			if b.ID == req.BirdID {
				found = true
				break
			}
		}
		if !found {
			respondWithError(w, http.StatusBadRequest, "Bird is not in the region's catalog", "", nil)
			return
		}
		answerHash = h.daily.AnswerHashFor(req.BirdID)
	}
	if !answerHashRegex.MatchString(answerHash) {
		respondWithError(w, http.StatusBadRequest, "Provide a birdId or a valid answerHash", "", nil)
		return
	}

	entry := &models.DailyAnswerEntry{
		Date:       req.Date,
		Region:     req.Region,
		AnswerHash: answerHash,
		Subregion:  req.Subregion,
	}
	if err := h.daily.PublishEntry(entry); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to publish daily answer", "failed to publish daily answer", err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}
