package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/velez94/scoringames-sub000/services"
)

type StandingsHandler struct {
	standingsService services.StandingsService
}

func NewStandingsHandler(ss services.StandingsService) *StandingsHandler {
	return &StandingsHandler{standingsService: ss}
}

// GetHandler handles
// GET /events/{eventID}/schedules/{scheduleID}/categories/{categoryID}/standings.
func (h *StandingsHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	scheduleID := chi.URLParam(r, "scheduleID")
	categoryID := chi.URLParam(r, "categoryID")

	standings, err := h.standingsService.ComputeStandings(r.Context(), eventID, scheduleID, categoryID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
