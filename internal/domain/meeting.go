package domain

import "time"

// Meeting представляет запланированную встречу с участниками
type Meeting struct {
	ID          string    `json:"id"`
	EventID     string    `json:"eventId"`
	Title       string    `json:"title"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
	Location    *string   `json:"location,omitempty"`
	AttendeeIDs []string  `json:"attendeeIds"`
}

// MeetingNote представляет заметку к встрече (не более одной на встречу)
type MeetingNote struct {
	ID        string    `json:"id"`
	MeetingID string    `json:"meetingId"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EnrichedMeeting представляет встречу с вычисленными на момент запроса полями.
// Attendees совпадает по длине и порядку с AttendeeIDs; nil означает, что
// пользователь с таким идентификатором не найден.
type EnrichedMeeting struct {
	Meeting
	HasNotes  bool           `json:"hasNotes"`
	Attendees []*UserSummary `json:"attendees"`
}
