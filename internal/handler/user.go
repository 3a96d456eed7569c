package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/event-planner/internal/middleware"
	"github.com/aidar/event-planner/internal/service"
)

// UserHandler обрабатывает эндпоинты пользователей
type UserHandler struct {
	userService    *service.UserService
	meetingService *service.MeetingService
}

// NewUserHandler создает новый UserHandler
func NewUserHandler(userService *service.UserService, meetingService *service.MeetingService) *UserHandler {
	return &UserHandler{
		userService:    userService,
		meetingService: meetingService,
	}
}

// GetUser обрабатывает GET /api/users/{userID}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetByID(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, user)
}

// GetMe обрабатывает GET /api/me
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetByID(r.Context(), middleware.GetUserIDFromContext(r.Context()))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, user)
}

// GetMyMeetings обрабатывает GET /api/me/meetings
func (h *UserHandler) GetMyMeetings(w http.ResponseWriter, r *http.Request) {
	meetings, err := h.meetingService.ListForAttendee(r.Context(), middleware.GetUserIDFromContext(r.Context()))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, meetings)
}
