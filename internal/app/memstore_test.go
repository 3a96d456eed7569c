package app

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/aidar/event-planner/internal/domain"
	"github.com/aidar/event-planner/internal/seed"
)

// memStore реализует все репозитории в памяти для тестов роутера
type memStore struct {
	mu       sync.Mutex
	users    map[string]*domain.User
	events   map[string]*domain.Event
	tracks   map[string]*domain.Track
	tasks    map[string]*domain.Task
	meetings []*domain.Meeting
	notes    map[string]*domain.MeetingNote

	failTrackCreate error
	failUserLookup  error
	migrated        bool
}

func newMemStore() *memStore {
	return &memStore{
		users:  map[string]*domain.User{},
		events: map[string]*domain.Event{},
		tracks: map[string]*domain.Track{},
		tasks:  map[string]*domain.Task{},
		notes:  map[string]*domain.MeetingNote{},
	}
}

type memUsers struct{ *memStore }
type memEvents struct{ *memStore }
type memTracks struct{ *memStore }
type memTasks struct{ *memStore }
type memMeetings struct{ *memStore }
type memNotes struct{ *memStore }
type memStats struct{ *memStore }
type memSeed struct{ *memStore }

func (s memUsers) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failUserLookup != nil {
		return nil, s.failUserLookup
	}
	user, ok := s.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s memEvents) GetByID(ctx context.Context, eventID string) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events[eventID]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}

func (s memEvents) Exists(ctx context.Context, eventID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.events[eventID]
	return ok, nil
}

func (s memTracks) Create(ctx context.Context, track *domain.Track) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failTrackCreate != nil {
		return s.failTrackCreate
	}
	if _, ok := s.tracks[track.ID]; ok {
		return domain.ErrAlreadyExists
	}
	s.tracks[track.ID] = track
	return nil
}

func (s memTracks) GetByID(ctx context.Context, trackID string) (*domain.Track, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	track, ok := s.tracks[trackID]
	if !ok {
		return nil, domain.ErrTrackNotFound
	}
	return track, nil
}

func (s memTracks) ListByEvent(ctx context.Context, eventID string) ([]*domain.Track, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*domain.Track{}
	for _, track := range s.tracks {
		if track.EventID == eventID {
			out = append(out, track)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s memTasks) Create(ctx context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if task.AssigneeID != nil {
		if _, ok := s.users[*task.AssigneeID]; !ok {
			return domain.ErrUserNotFound
		}
		track := s.tracks[task.TrackID]
		if !track.HasParticipant(*task.AssigneeID) {
			track.ParticipantIDs = append(track.ParticipantIDs, *task.AssigneeID)
		}
	}
	s.tasks[task.ID] = task
	return nil
}

func (s memTasks) GetByID(ctx context.Context, taskID string) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[taskID]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (s memTasks) ListByTrack(ctx context.Context, trackID string) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*domain.Task{}
	for _, task := range s.tasks {
		if task.TrackID == trackID {
			out = append(out, task)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s memTasks) UpdateStatus(ctx context.Context, taskID string, status domain.TaskStatus) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[taskID]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	task.Status = status
	return task, nil
}

func (s memMeetings) GetByID(ctx context.Context, meetingID string) (*domain.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.meetings {
		if m.ID == meetingID {
			return m, nil
		}
	}
	return nil, domain.ErrMeetingNotFound
}

func (s memMeetings) ListByEvent(ctx context.Context, eventID string) ([]*domain.Meeting, error) {
	return s.filter(func(m *domain.Meeting) bool { return m.EventID == eventID }), nil
}

func (s memMeetings) ListByAttendee(ctx context.Context, userID string) ([]*domain.Meeting, error) {
	return s.filter(func(m *domain.Meeting) bool {
		for _, id := range m.AttendeeIDs {
			if id == userID {
				return true
			}
		}
		return false
	}), nil
}

func (s memMeetings) filter(keep func(*domain.Meeting) bool) []*domain.Meeting {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*domain.Meeting{}
	for _, m := range s.meetings {
		if keep(m) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	return out
}

func (s memNotes) GetByMeetingID(ctx context.Context, meetingID string) (*domain.MeetingNote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	note, ok := s.notes[meetingID]
	if !ok {
		return nil, domain.ErrNoteNotFound
	}
	return note, nil
}

func (s memStats) EventStats(ctx context.Context, eventID string) (*domain.EventStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[eventID]; !ok {
		return nil, domain.ErrEventNotFound
	}
	stats := &domain.EventStats{EventID: eventID, TasksByStatus: map[string]int{}}
	participants := map[string]bool{}
	for _, track := range s.tracks {
		if track.EventID != eventID {
			continue
		}
		stats.Tracks++
		for _, id := range track.ParticipantIDs {
			participants[id] = true
		}
		for _, task := range s.tasks {
			if task.TrackID == track.ID {
				stats.TasksByStatus[string(task.Status)]++
			}
		}
	}
	stats.Participants = len(participants)
	for _, m := range s.meetings {
		if m.EventID == eventID {
			stats.Meetings++
			if _, ok := s.notes[m.ID]; ok {
				stats.MeetingsWithNotes++
			}
		}
	}
	return stats, nil
}

func (s memSeed) Import(ctx context.Context, data *seed.Data) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.migrated {
		return domain.ErrAlreadyMigrated
	}
	if data == nil {
		return errors.New("no data")
	}
	for _, u := range data.Users {
		s.users[u.ID] = &domain.User{ID: u.ID, Name: u.Name}
	}
	s.migrated = true
	return nil
}
