package handlers

import (
	"encoding/json"
	"net/http"

	"audiobirdle/internal/service"
	"audiobirdle/internal/validation"
)

// defaultRegion is what a device plays before ever choosing a region.
const defaultRegion = "us"

// SettingsHandler serves the persisted per-device settings.
type SettingsHandler struct {
	daily  *service.DailyService
	ledger *service.LedgerService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(daily *service.DailyService, ledger *service.LedgerService) *SettingsHandler {
	return &SettingsHandler{daily: daily, ledger: ledger}
}

// GetRegion handles GET /api/settings/region
func (h *SettingsHandler) GetRegion(w http.ResponseWriter, r *http.Request) {
	region := h.ledger.SelectedRegion(GetDeviceID(r.Context()), defaultRegion)
	writeJSON(w, http.StatusOK, RegionSettingRequest{Region: region})
}

// SetRegion handles PUT /api/settings/region
func (h *SettingsHandler) SetRegion(w http.ResponseWriter, r *http.Request) {
	var req RegionSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
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

	if err := h.ledger.SetSelectedRegion(GetDeviceID(r.Context()), req.Region); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to save region", "failed to save region selection", err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}
