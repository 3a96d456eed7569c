package service

import (
	"context"

	"github.com/aidar/event-planner/internal/domain"
	"github.com/aidar/event-planner/internal/repository"
)

// StatsService handles statistics queries
type StatsService struct {
	statsRepo repository.StatsRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(statsRepo repository.StatsRepository) *StatsService {
	return &StatsService{
		statsRepo: statsRepo,
	}
}

// GetEventStats returns aggregated counters for an event.
// The repository reports ErrEventNotFound for unknown events.
func (s *StatsService) GetEventStats(ctx context.Context, eventID string) (*domain.EventStats, error) {
	return s.statsRepo.EventStats(ctx, eventID)
}
