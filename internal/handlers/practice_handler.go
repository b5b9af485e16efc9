package handlers

import (
	"encoding/json"
	"net/http"

	"audiobirdle/internal/service"
	"audiobirdle/internal/validation"
)

// PracticeHandler serves the unlimited practice mode.
type PracticeHandler struct {
	practice *service.PracticeService
}

// NewPracticeHandler creates a new practice handler
func NewPracticeHandler(practice *service.PracticeService) *PracticeHandler {
	return &PracticeHandler{practice: practice}
}

// Start handles POST /api/practice/{region}/start
func (h *PracticeHandler) Start(w http.ResponseWriter, r *http.Request) {
	region := r.PathValue("region")
	if err := validation.ValidateRegionID(region); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}

	session := h.practice.Start(GetDeviceID(r.Context()), region)
	if session == nil {
		respondWithError(w, http.StatusNotFound, "No birds available for this region", "", nil)
		return
	}
	writeJSON(w, http.StatusOK, toPracticeResponse(session))
}

// Current handles GET /api/practice/{region}
func (h *PracticeHandler) Current(w http.ResponseWriter, r *http.Request) {
	session := h.practice.Current(GetDeviceID(r.Context()))
	if session == nil || session.Region != r.PathValue("region") {
		respondWithError(w, http.StatusNotFound, "No active practice session", "", nil)
		return
	}
	writeJSON(w, http.StatusOK, toPracticeResponse(session))
}

// Guess handles POST /api/practice/{region}/guess
func (h *PracticeHandler) Guess(w http.ResponseWriter, r *http.Request) {
	var req GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}
	if err := validation.ValidateBirdID(req.BirdID); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}

	session := h.practice.Guess(GetDeviceID(r.Context()), req.BirdID)
	if session == nil {
		respondWithError(w, http.StatusNotFound, "No active practice session", "", nil)
		return
	}
	writeJSON(w, http.StatusOK, toPracticeResponse(session))
}

// Next handles POST /api/practice/{region}/next
func (h *PracticeHandler) Next(w http.ResponseWriter, r *http.Request) {
	session := h.practice.Next(GetDeviceID(r.Context()))
	if session == nil {
		respondWithError(w, http.StatusNotFound, "No active practice session", "", nil)
		return
	}
	writeJSON(w, http.StatusOK, toPracticeResponse(session))
}

// Retry handles POST /api/practice/{region}/retry
func (h *PracticeHandler) Retry(w http.ResponseWriter, r *http.Request) {
	session := h.practice.Retry(GetDeviceID(r.Context()))
	if session == nil {
		respondWithError(w, http.StatusNotFound, "No active practice session", "", nil)
		return
	}
	writeJSON(w, http.StatusOK, toPracticeResponse(session))
}

// End handles DELETE /api/practice/{region}
func (h *PracticeHandler) End(w http.ResponseWriter, r *http.Request) {
	h.practice.End(GetDeviceID(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}
