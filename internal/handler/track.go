package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/event-planner/internal/service"
)

// TrackHandler обрабатывает эндпоинты треков
type TrackHandler struct {
	trackService *service.TrackService
}

// NewTrackHandler создает новый TrackHandler
func NewTrackHandler(trackService *service.TrackService) *TrackHandler {
	return &TrackHandler{
		trackService: trackService,
	}
}

// CreateTrackRequest представляет тело запроса на создание трека
type CreateTrackRequest struct {
	EventID     string  `json:"eventId"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	LeadID      *string `json:"leadId"`
}

// CreateTrack обрабатывает POST /api/tracks
func (h *TrackHandler) CreateTrack(w http.ResponseWriter, r *http.Request) {
	var req CreateTrackRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	track, err := h.trackService.Create(r.Context(), service.CreateTrackInput{
		EventID:     req.EventID,
		Name:        req.Name,
		Description: req.Description,
		LeadID:      req.LeadID,
	})
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, track)
}

// GetTrack обрабатывает GET /api/tracks/{trackID}
func (h *TrackHandler) GetTrack(w http.ResponseWriter, r *http.Request) {
	track, err := h.trackService.Get(r.Context(), chi.URLParam(r, "trackID"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, track)
}

// ListEventTracks обрабатывает GET /api/events/{eventID}/tracks
func (h *TrackHandler) ListEventTracks(w http.ResponseWriter, r *http.Request) {
	tracks, err := h.trackService.ListByEvent(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, tracks)
}
