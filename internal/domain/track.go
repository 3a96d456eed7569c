package domain

import "time"

// Track представляет направление работы внутри мероприятия
type Track struct {
	ID             string     `json:"id"`
	EventID        string     `json:"eventId"`
	Name           string     `json:"name"`
	Description    *string    `json:"description,omitempty"`
	LeadID         string     `json:"leadId"`
	ParticipantIDs []string   `json:"participantIds"` // Пополняется по мере назначения задач
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
}

// HasParticipant проверяет, входит ли пользователь в участники трека
func (t *Track) HasParticipant(userID string) bool {
	for _, id := range t.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}
