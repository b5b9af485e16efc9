package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"audiobirdle/internal/service"
	"audiobirdle/internal/validation"
)

// ShareHandler mails a finished game's summary to a friend.
type ShareHandler struct {
	daily  *service.DailyService
	ledger *service.LedgerService
	share  *service.ShareService
}

// NewShareHandler creates a new share handler
func NewShareHandler(daily *service.DailyService, ledger *service.LedgerService, share *service.ShareService) *ShareHandler {
	return &ShareHandler{daily: daily, ledger: ledger, share: share}
}

// Email handles POST /api/share/email. The response always carries the share
// text: a disabled or failing mailer downgrades the feature, it never eats
// the player's result.
func (h *ShareHandler) Email(w http.ResponseWriter, r *http.Request) {
	var req ShareEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}
	if err := validation.ValidateRegionID(req.Region); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}

	date := h.ledger.Today()
	record := h.ledger.Record(GetDeviceID(r.Context()), req.Region, date)
	if record == nil || !record.Completed {
		respondWithError(w, http.StatusConflict, "Finish today's game before sharing", "", nil)
		return
	}

	regionName := req.Region
	if reg := h.daily.Region(req.Region); reg != nil {
		regionName = reg.Name
	}
	text := h.share.ShareText(record, regionName)

	sent := false
	email := h.share.Email()
	if email != nil && email.IsEnabled() {
		if err := email.SendShareEmail(r.Context(), req.Email, text); err != nil {
			log.Printf("share email to %s failed: %v", req.Email, err)
		} else {
			sent = true
		}
	}

	writeJSON(w, http.StatusOK, ShareEmailResponse{Text: text, Sent: sent})
}
