package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aidar/event-planner/internal/domain"
	"github.com/aidar/event-planner/internal/repository"
)

// CreateTaskInput holds the fields accepted when creating a task
type CreateTaskInput struct {
	TrackID    string
	Title      string
	AssigneeID *string
	DueDate    *time.Time
}

// TaskService handles business logic for tasks
type TaskService struct {
	taskRepo  repository.TaskRepository
	trackRepo repository.TrackRepository
	newID     func() string
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, trackRepo repository.TrackRepository) *TaskService {
	return &TaskService{
		taskRepo:  taskRepo,
		trackRepo: trackRepo,
		newID:     uuid.NewString,
	}
}

// Create adds a task to a track. Assigning the task makes the assignee a
// participant of the track.
func (s *TaskService) Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.NewValidationError("Task title is required")
	}

	// Track must exist
	if _, err := s.trackRepo.GetByID(ctx, input.TrackID); err != nil {
		return nil, err
	}

	task := &domain.Task{
		ID:         s.newID(),
		TrackID:    input.TrackID,
		Title:      title,
		AssigneeID: trimmedOrNil(input.AssigneeID),
		Status:     domain.TaskStatusTodo,
		DueDate:    input.DueDate,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// ListByTrack returns the tasks of an existing track
func (s *TaskService) ListByTrack(ctx context.Context, trackID string) ([]*domain.Task, error) {
	if _, err := s.trackRepo.GetByID(ctx, trackID); err != nil {
		return nil, err
	}
	return s.taskRepo.ListByTrack(ctx, trackID)
}

// UpdateStatus moves a task to another status
func (s *TaskService) UpdateStatus(ctx context.Context, taskID string, status domain.TaskStatus) (*domain.Task, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError("Task status must be one of todo, in_progress, done")
	}
	return s.taskRepo.UpdateStatus(ctx, taskID, status)
}
