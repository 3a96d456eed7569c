package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/aidar/event-planner/internal/domain"
	"github.com/aidar/event-planner/internal/repository"
)

// CreateTrackInput holds the fields accepted when creating a track
type CreateTrackInput struct {
	EventID     string
	Name        string
	Description *string
	LeadID      *string
}

// TrackService handles business logic for tracks
type TrackService struct {
	trackRepo repository.TrackRepository
	newID     func() string
}

// NewTrackService creates a new TrackService
func NewTrackService(trackRepo repository.TrackRepository) *TrackService {
	return &TrackService{
		trackRepo: trackRepo,
		newID:     uuid.NewString,
	}
}

// Create validates the input and persists a new track with no participants
func (s *TrackService) Create(ctx context.Context, input CreateTrackInput) (*domain.Track, error) {
	// Validate before touching the store
	eventID := strings.TrimSpace(input.EventID)
	if eventID == "" {
		return nil, domain.NewValidationError("Event ID is required")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.NewValidationError("Track name is required")
	}

	track := &domain.Track{
		ID:             s.newID(),
		EventID:        eventID,
		Name:           name,
		Description:    trimmedOrNil(input.Description),
		LeadID:         "",
		ParticipantIDs: []string{},
	}
	if input.LeadID != nil {
		track.LeadID = strings.TrimSpace(*input.LeadID)
	}

	if err := s.trackRepo.Create(ctx, track); err != nil {
		return nil, err
	}

	return track, nil
}

// Get retrieves a track by ID
func (s *TrackService) Get(ctx context.Context, trackID string) (*domain.Track, error) {
	return s.trackRepo.GetByID(ctx, trackID)
}

// ListByEvent returns all tracks of an event
func (s *TrackService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Track, error) {
	return s.trackRepo.ListByEvent(ctx, eventID)
}

// trimmedOrNil returns nil for absent or blank values
func trimmedOrNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
