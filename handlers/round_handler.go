package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/velez94/scoringames-sub000/models"
	"github.com/velez94/scoringames-sub000/services"
)

type RoundHandler struct {
	progressionService services.ProgressionService
}

func NewRoundHandler(ps services.ProgressionService) *RoundHandler {
	return &RoundHandler{progressionService: ps}
}

type submitRoundInput struct {
	Results []models.MatchResult `json:"results"`
}

// SubmitHandler handles
// POST /events/{eventID}/schedules/{scheduleID}/categories/{categoryID}/rounds/{filter}.
// The round must be complete: one result per contested match.
func (h *RoundHandler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	scheduleID := chi.URLParam(r, "scheduleID")
	categoryID := chi.URLParam(r, "categoryID")

	filter, err := strconv.Atoi(chi.URLParam(r, "filter"))
	if err != nil || filter < 1 {
		badRequestResponse(w, r, errors.New("round number must be a positive integer"))
		return
	}

	var input submitRoundInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if len(input.Results) == 0 {
		badRequestResponse(w, r, errors.New("results must not be empty"))
		return
	}

	schedule, err := h.progressionService.SubmitRound(r.Context(), eventID, scheduleID, categoryID, filter, input.Results)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"schedule": schedule}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
