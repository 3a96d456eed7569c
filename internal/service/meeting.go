package service

import (
	"context"

	"github.com/aidar/event-planner/internal/domain"
	"github.com/aidar/event-planner/internal/repository"
)

// MeetingService handles read access to meetings
type MeetingService struct {
	meetingRepo repository.MeetingRepository
	eventRepo   repository.EventRepository
	enricher    *MeetingEnricher
}

// NewMeetingService creates a new MeetingService
func NewMeetingService(
	meetingRepo repository.MeetingRepository,
	eventRepo repository.EventRepository,
	enricher *MeetingEnricher,
) *MeetingService {
	return &MeetingService{
		meetingRepo: meetingRepo,
		eventRepo:   eventRepo,
		enricher:    enricher,
	}
}

// ListByEvent returns the enriched meetings of an event ordered by start time
func (s *MeetingService) ListByEvent(ctx context.Context, eventID string) (*domain.Event, []*domain.EnrichedMeeting, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}

	meetings, err := s.meetingRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}

	enriched, err := s.enricher.Enrich(ctx, meetings)
	if err != nil {
		return nil, nil, err
	}

	return event, enriched, nil
}

// Get returns one enriched meeting
func (s *MeetingService) Get(ctx context.Context, meetingID string) (*domain.EnrichedMeeting, error) {
	meeting, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	return s.enricher.EnrichOne(ctx, meeting)
}

// ListForAttendee returns the enriched meetings a user attends
func (s *MeetingService) ListForAttendee(ctx context.Context, userID string) ([]*domain.EnrichedMeeting, error) {
	meetings, err := s.meetingRepo.ListByAttendee(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.enricher.Enrich(ctx, meetings)
}
