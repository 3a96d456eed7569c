package service

import (
	"context"
	"sort"
	"sync"

	"github.com/aidar/event-planner/internal/domain"
	"github.com/aidar/event-planner/internal/seed"
)

type fakeUserRepo struct {
	users map[string]*domain.User
	errs  map[string]error

	mu    sync.Mutex
	calls []string
}

func (r *fakeUserRepo) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	r.mu.Lock()
	r.calls = append(r.calls, userID)
	r.mu.Unlock()

	if err, ok := r.errs[userID]; ok {
		return nil, err
	}
	user, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

type fakeNoteRepo struct {
	notes map[string]*domain.MeetingNote
	err   error
}

func (r *fakeNoteRepo) GetByMeetingID(ctx context.Context, meetingID string) (*domain.MeetingNote, error) {
	if r.err != nil {
		return nil, r.err
	}
	note, ok := r.notes[meetingID]
	if !ok {
		return nil, domain.ErrNoteNotFound
	}
	return note, nil
}

type fakeEventRepo struct {
	events map[string]*domain.Event
}

func (r *fakeEventRepo) GetByID(ctx context.Context, eventID string) (*domain.Event, error) {
	event, ok := r.events[eventID]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}

func (r *fakeEventRepo) Exists(ctx context.Context, eventID string) (bool, error) {
	_, ok := r.events[eventID]
	return ok, nil
}

type fakeTrackRepo struct {
	tracks    map[string]*domain.Track
	createErr error
}

func (r *fakeTrackRepo) Create(ctx context.Context, track *domain.Track) error {
	if r.createErr != nil {
		return r.createErr
	}
	if r.tracks == nil {
		r.tracks = map[string]*domain.Track{}
	}
	r.tracks[track.ID] = track
	return nil
}

func (r *fakeTrackRepo) GetByID(ctx context.Context, trackID string) (*domain.Track, error) {
	track, ok := r.tracks[trackID]
	if !ok {
		return nil, domain.ErrTrackNotFound
	}
	return track, nil
}

func (r *fakeTrackRepo) ListByEvent(ctx context.Context, eventID string) ([]*domain.Track, error) {
	out := []*domain.Track{}
	for _, track := range r.tracks {
		if track.EventID == eventID {
			out = append(out, track)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeTaskRepo struct {
	tasks map[string]*domain.Task
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *domain.Task) error {
	if r.tasks == nil {
		r.tasks = map[string]*domain.Task{}
	}
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, taskID string) (*domain.Task, error) {
	task, ok := r.tasks[taskID]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (r *fakeTaskRepo) ListByTrack(ctx context.Context, trackID string) ([]*domain.Task, error) {
	out := []*domain.Task{}
	for _, task := range r.tasks {
		if task.TrackID == trackID {
			out = append(out, task)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) UpdateStatus(ctx context.Context, taskID string, status domain.TaskStatus) (*domain.Task, error) {
	task, ok := r.tasks[taskID]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	task.Status = status
	return task, nil
}

type fakeMeetingRepo struct {
	meetings []*domain.Meeting
}

func (r *fakeMeetingRepo) GetByID(ctx context.Context, meetingID string) (*domain.Meeting, error) {
	for _, m := range r.meetings {
		if m.ID == meetingID {
			return m, nil
		}
	}
	return nil, domain.ErrMeetingNotFound
}

func (r *fakeMeetingRepo) ListByEvent(ctx context.Context, eventID string) ([]*domain.Meeting, error) {
	out := []*domain.Meeting{}
	for _, m := range r.meetings {
		if m.EventID == eventID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMeetingRepo) ListByAttendee(ctx context.Context, userID string) ([]*domain.Meeting, error) {
	out := []*domain.Meeting{}
	for _, m := range r.meetings {
		for _, id := range m.AttendeeIDs {
			if id == userID {
				out = append(out, m)
				break
			}
		}
	}
	return out, nil
}

type fakeStatsRepo struct {
	stats map[string]*domain.EventStats
}

func (r *fakeStatsRepo) EventStats(ctx context.Context, eventID string) (*domain.EventStats, error) {
	stats, ok := r.stats[eventID]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return stats, nil
}

type fakeSeedRepo struct {
	imported *seed.Data
	err      error
}

func (r *fakeSeedRepo) Import(ctx context.Context, data *seed.Data) error {
	if r.err != nil {
		return r.err
	}
	r.imported = data
	return nil
}

func strPtr(s string) *string {
	return &s
}
