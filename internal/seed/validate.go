package seed

import (
	"errors"
	"fmt"
	"strings"
)

var validTaskStatuses = map[string]bool{
	"":            true,
	"todo":        true,
	"in_progress": true,
	"done":        true,
}

// Validate checks identifiers and references between tables.
// Meeting attendees are not checked: unknown attendees are allowed and
// surface as missing users.
func (d *Data) Validate() error {
	var errs []error

	users, err := collectIDs("user", d.Users, func(u User) string { return u.ID })
	errs = append(errs, err...)
	events, err := collectIDs("event", d.Events, func(e Event) string { return e.ID })
	errs = append(errs, err...)
	tracks, err := collectIDs("track", d.Tracks, func(t Track) string { return t.ID })
	errs = append(errs, err...)
	_, err = collectIDs("task", d.Tasks, func(t Task) string { return t.ID })
	errs = append(errs, err...)
	meetings, err := collectIDs("meeting", d.Meetings, func(m Meeting) string { return m.ID })
	errs = append(errs, err...)
	_, err = collectIDs("note", d.Notes, func(n Note) string { return n.ID })
	errs = append(errs, err...)

	for _, u := range d.Users {
		if strings.TrimSpace(u.Name) == "" {
			errs = append(errs, fmt.Errorf("user %s: name is required", u.ID))
		}
	}

	for _, e := range d.Events {
		if e.EndsAt.Before(e.StartsAt) {
			errs = append(errs, fmt.Errorf("event %s: ends before it starts", e.ID))
		}
	}

	for _, t := range d.Tracks {
		if !events[t.EventID] {
			errs = append(errs, fmt.Errorf("track %s: unknown event %q", t.ID, t.EventID))
		}
		if strings.TrimSpace(t.Name) == "" {
			errs = append(errs, fmt.Errorf("track %s: name is required", t.ID))
		}
	}

	for _, t := range d.Tasks {
		if !tracks[t.TrackID] {
			errs = append(errs, fmt.Errorf("task %s: unknown track %q", t.ID, t.TrackID))
		}
		if t.AssigneeID != nil && !users[*t.AssigneeID] {
			errs = append(errs, fmt.Errorf("task %s: unknown assignee %q", t.ID, *t.AssigneeID))
		}
		if !validTaskStatuses[t.Status] {
			errs = append(errs, fmt.Errorf("task %s: invalid status %q", t.ID, t.Status))
		}
	}

	for _, m := range d.Meetings {
		if !events[m.EventID] {
			errs = append(errs, fmt.Errorf("meeting %s: unknown event %q", m.ID, m.EventID))
		}
		if m.EndsAt.Before(m.StartsAt) {
			errs = append(errs, fmt.Errorf("meeting %s: ends before it starts", m.ID))
		}
	}

	noted := make(map[string]bool, len(d.Notes))
	for _, n := range d.Notes {
		if !meetings[n.MeetingID] {
			errs = append(errs, fmt.Errorf("note %s: unknown meeting %q", n.ID, n.MeetingID))
		}
		if noted[n.MeetingID] {
			errs = append(errs, fmt.Errorf("note %s: meeting %q already has a note", n.ID, n.MeetingID))
		}
		noted[n.MeetingID] = true
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid seed data: %w", err)
	}
	return nil
}

func collectIDs[T any](kind string, rows []T, id func(T) string) (map[string]bool, []error) {
	seen := make(map[string]bool, len(rows))
	var errs []error
	for _, row := range rows {
		key := id(row)
		switch {
		case key == "":
			errs = append(errs, fmt.Errorf("%s: empty id", kind))
		case seen[key]:
			errs = append(errs, fmt.Errorf("%s %s: duplicate id", kind, key))
		}
		seen[key] = true
	}
	return seen, errs
}
