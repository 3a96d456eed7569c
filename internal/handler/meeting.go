package handler

import (
	"bytes"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/event-planner/internal/calendar"
	"github.com/aidar/event-planner/internal/service"
)

// MeetingHandler обрабатывает эндпоинты встреч
type MeetingHandler struct {
	meetingService *service.MeetingService
	now            func() time.Time
}

// NewMeetingHandler создает новый MeetingHandler
func NewMeetingHandler(meetingService *service.MeetingService) *MeetingHandler {
	return &MeetingHandler{
		meetingService: meetingService,
		now:            time.Now,
	}
}

// ListEventMeetings обрабатывает GET /api/events/{eventID}/meetings
func (h *MeetingHandler) ListEventMeetings(w http.ResponseWriter, r *http.Request) {
	_, meetings, err := h.meetingService.ListByEvent(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, meetings)
}

// GetMeeting обрабатывает GET /api/meetings/{meetingID}
func (h *MeetingHandler) GetMeeting(w http.ResponseWriter, r *http.Request) {
	meeting, err := h.meetingService.Get(r.Context(), chi.URLParam(r, "meetingID"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, meeting)
}

// ExportEventCalendar обрабатывает GET /api/events/{eventID}/meetings.ics
func (h *MeetingHandler) ExportEventCalendar(w http.ResponseWriter, r *http.Request) {
	event, meetings, err := h.meetingService.ListByEvent(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	// Кодируем в буфер, чтобы ошибка не оборвала уже начатый ответ
	var buf bytes.Buffer
	if err := calendar.Write(&buf, calendar.Build(event, meetings, h.now())); err != nil {
		HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", calendar.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
