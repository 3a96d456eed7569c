package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aidar/event-planner/internal/domain"
	"github.com/aidar/event-planner/internal/metrics"
	"github.com/aidar/event-planner/internal/repository"
)

// MeetingEnricher attaches request-time fields to meetings: whether a note
// exists and the resolved attendee projections.
type MeetingEnricher struct {
	noteRepo repository.MeetingNoteRepository
	userRepo repository.UserRepository
}

// NewMeetingEnricher creates a new MeetingEnricher
func NewMeetingEnricher(noteRepo repository.MeetingNoteRepository, userRepo repository.UserRepository) *MeetingEnricher {
	return &MeetingEnricher{
		noteRepo: noteRepo,
		userRepo: userRepo,
	}
}

// Enrich resolves notes and attendees for every meeting concurrently.
// The output has the same length and order as the input, and each attendee
// list is aligned with the meeting's AttendeeIDs (nil for unknown users).
// Any failed lookup fails the whole batch and no partial result is returned.
func (e *MeetingEnricher) Enrich(ctx context.Context, meetings []*domain.Meeting) (enriched []*domain.EnrichedMeeting, err error) {
	start := time.Now()
	defer func() {
		metrics.ObserveEnrichment(start, err)
	}()

	out := make([]*domain.EnrichedMeeting, len(meetings))

	g, gctx := errgroup.WithContext(ctx)
	for i, meeting := range meetings {
		g.Go(func() error {
			em, err := e.enrichMeeting(gctx, meeting)
			if err != nil {
				return fmt.Errorf("enrich meeting %s: %w", meeting.ID, err)
			}
			out[i] = em
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// EnrichOne is Enrich for a single meeting.
func (e *MeetingEnricher) EnrichOne(ctx context.Context, meeting *domain.Meeting) (*domain.EnrichedMeeting, error) {
	enriched, err := e.Enrich(ctx, []*domain.Meeting{meeting})
	if err != nil {
		return nil, err
	}
	return enriched[0], nil
}

// enrichMeeting runs the note lookup and all attendee lookups of one meeting concurrently
func (e *MeetingEnricher) enrichMeeting(ctx context.Context, meeting *domain.Meeting) (*domain.EnrichedMeeting, error) {
	attendees := make([]*domain.UserSummary, len(meeting.AttendeeIDs))
	var hasNotes bool

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		found, err := e.hasNote(gctx, meeting.ID)
		if err != nil {
			return err
		}
		hasNotes = found
		return nil
	})

	for i, userID := range meeting.AttendeeIDs {
		g.Go(func() error {
			summary, err := e.lookupUser(gctx, userID)
			if err != nil {
				return err
			}
			attendees[i] = summary
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.EnrichedMeeting{
		Meeting:   *meeting,
		HasNotes:  hasNotes,
		Attendees: attendees,
	}, nil
}

func (e *MeetingEnricher) hasNote(ctx context.Context, meetingID string) (bool, error) {
	note, err := e.noteRepo.GetByMeetingID(ctx, meetingID)
	switch {
	case errors.Is(err, domain.ErrNoteNotFound):
		metrics.RecordLookup(metrics.LookupNote, metrics.OutcomeMissing)
		return false, nil
	case err != nil:
		metrics.RecordLookup(metrics.LookupNote, metrics.OutcomeError)
		return false, fmt.Errorf("note lookup: %w", err)
	}

	metrics.RecordLookup(metrics.LookupNote, metrics.OutcomeFound)
	return note != nil, nil
}

func (e *MeetingEnricher) lookupUser(ctx context.Context, userID string) (*domain.UserSummary, error) {
	user, err := e.userRepo.GetByID(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		metrics.RecordLookup(metrics.LookupUser, metrics.OutcomeMissing)
		return nil, nil
	case err != nil:
		metrics.RecordLookup(metrics.LookupUser, metrics.OutcomeError)
		return nil, fmt.Errorf("user %s lookup: %w", userID, err)
	}

	metrics.RecordLookup(metrics.LookupUser, metrics.OutcomeFound)
	if user == nil {
		return nil, nil
	}
	return user.Summary(), nil
}
