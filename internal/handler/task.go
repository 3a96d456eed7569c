package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aidar/event-planner/internal/domain"
	"github.com/aidar/event-planner/internal/service"
)

// dateLayout формат поля dueDate
const dateLayout = "2006-01-02"

// TaskHandler обрабатывает эндпоинты задач
type TaskHandler struct {
	taskService *service.TaskService
}

// NewTaskHandler создает новый TaskHandler
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTaskRequest представляет тело запроса на создание задачи
type CreateTaskRequest struct {
	Title      string  `json:"title"`
	AssigneeID *string `json:"assigneeId"`
	DueDate    *string `json:"dueDate"` // YYYY-MM-DD
}

// UpdateStatusRequest представляет тело запроса на смену статуса
type UpdateStatusRequest struct {
	Status domain.TaskStatus `json:"status"`
}

// CreateTask обрабатывает POST /api/tracks/{trackID}/tasks
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := service.CreateTaskInput{
		TrackID:    chi.URLParam(r, "trackID"),
		Title:      req.Title,
		AssigneeID: req.AssigneeID,
	}
	if req.DueDate != nil && *req.DueDate != "" {
		due, err := time.Parse(dateLayout, *req.DueDate)
		if err != nil {
			RespondWithError(w, r, http.StatusBadRequest, "dueDate must be formatted as YYYY-MM-DD")
			return
		}
		input.DueDate = &due
	}

	task, err := h.taskService.Create(r.Context(), input)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, task)
}

// ListTrackTasks обрабатывает GET /api/tracks/{trackID}/tasks
func (h *TaskHandler) ListTrackTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListByTrack(r.Context(), chi.URLParam(r, "trackID"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, tasks)
}

// UpdateStatus обрабатывает PATCH /api/tasks/{taskID}/status
func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	task, err := h.taskService.UpdateStatus(r.Context(), chi.URLParam(r, "taskID"), req.Status)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, task)
}
