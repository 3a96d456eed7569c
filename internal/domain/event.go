package domain

import "time"

// Event представляет мероприятие, к которому относятся треки и встречи
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
}

// EventStats содержит агрегированные показатели мероприятия
type EventStats struct {
	EventID           string         `json:"eventId"`
	Tracks            int            `json:"tracks"`
	Participants      int            `json:"participants"`
	TasksByStatus     map[string]int `json:"tasksByStatus"`
	Meetings          int            `json:"meetings"`
	MeetingsWithNotes int            `json:"meetingsWithNotes"`
}
