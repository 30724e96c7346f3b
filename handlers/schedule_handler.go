package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/velez94/scoringames-sub000/models"
	"github.com/velez94/scoringames-sub000/services"
)

type ScheduleHandler struct {
	scheduleService services.ScheduleService
}

func NewScheduleHandler(ss services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: ss}
}

// GenerateHandler handles POST /events/{eventID}/schedules. The body is
// the schedule configuration.
func (h *ScheduleHandler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	var cfg models.ScheduleConfig
	if err := readJSON(w, r, &cfg); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	schedule, err := h.scheduleService.Generate(r.Context(), eventID, cfg)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"schedule": schedule}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RegenerateHandler handles PUT /events/{eventID}/schedules/{scheduleID}.
func (h *ScheduleHandler) RegenerateHandler(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	scheduleID := chi.URLParam(r, "scheduleID")

	var cfg models.ScheduleConfig
	if err := readJSON(w, r, &cfg); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	schedule, err := h.scheduleService.Regenerate(r.Context(), eventID, scheduleID, cfg)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"schedule": schedule}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListHandler handles GET /events/{eventID}/schedules.
func (h *ScheduleHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	schedules, err := h.scheduleService.ListByEvent(r.Context(), eventID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"schedules": schedules}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetByIDHandler handles GET /events/{eventID}/schedules/{scheduleID}.
func (h *ScheduleHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	scheduleID := chi.URLParam(r, "scheduleID")

	schedule, err := h.scheduleService.GetByID(r.Context(), eventID, scheduleID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"schedule": schedule}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// PublishHandler handles POST /events/{eventID}/schedules/{scheduleID}/publish.
func (h *ScheduleHandler) PublishHandler(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	scheduleID := chi.URLParam(r, "scheduleID")

	schedule, err := h.scheduleService.Publish(r.Context(), eventID, scheduleID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"schedule": schedule}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UnpublishHandler handles DELETE /events/{eventID}/schedules/{scheduleID}/publish.
func (h *ScheduleHandler) UnpublishHandler(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	scheduleID := chi.URLParam(r, "scheduleID")

	if err := h.scheduleService.Unpublish(r.Context(), eventID, scheduleID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteHandler handles DELETE /events/{eventID}/schedules/{scheduleID}.
func (h *ScheduleHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	scheduleID := chi.URLParam(r, "scheduleID")

	if err := h.scheduleService.Delete(r.Context(), eventID, scheduleID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
