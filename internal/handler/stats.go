package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/event-planner/internal/service"
)

// StatsHandler обрабатывает эндпоинты статистики
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler создает новый StatsHandler
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetEventStats обрабатывает GET /api/events/{eventID}/stats
func (h *StatsHandler) GetEventStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.GetEventStats(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, stats)
}
