package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/event-planner/internal/domain"
)

func newTaskFixture() (*TaskService, *fakeTaskRepo) {
	tasks := &fakeTaskRepo{}
	tracks := &fakeTrackRepo{tracks: map[string]*domain.Track{
		"tr-1": {ID: "tr-1", EventID: "ev-1", Name: "Logistics"},
	}}
	return NewTaskService(tasks, tracks), tasks
}

func TestTaskService_Create(t *testing.T) {
	svc, repo := newTaskFixture()
	due := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	task, err := svc.Create(context.Background(), CreateTaskInput{
		TrackID:    "tr-1",
		Title:      " Book venue ",
		AssigneeID: strPtr("u-1"),
		DueDate:    &due,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Book venue", task.Title)
	assert.Equal(t, domain.TaskStatusTodo, task.Status)
	require.NotNil(t, task.AssigneeID)
	assert.Equal(t, "u-1", *task.AssigneeID)
	assert.Contains(t, repo.tasks, task.ID)
}

func TestTaskService_CreateErrors(t *testing.T) {
	svc, _ := newTaskFixture()

	_, err := svc.Create(context.Background(), CreateTaskInput{TrackID: "tr-1", Title: " "})
	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = svc.Create(context.Background(), CreateTaskInput{TrackID: "tr-missing", Title: "x"})
	assert.ErrorIs(t, err, domain.ErrTrackNotFound)
}

func TestTaskService_UpdateStatus(t *testing.T) {
	svc, repo := newTaskFixture()
	repo.tasks = map[string]*domain.Task{"tk-1": {ID: "tk-1", TrackID: "tr-1", Status: domain.TaskStatusTodo}}

	task, err := svc.UpdateStatus(context.Background(), "tk-1", domain.TaskStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusInProgress, task.Status)

	_, err = svc.UpdateStatus(context.Background(), "tk-1", "blocked")
	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = svc.UpdateStatus(context.Background(), "tk-missing", domain.TaskStatusDone)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskService_ListByTrack(t *testing.T) {
	svc, repo := newTaskFixture()
	repo.tasks = map[string]*domain.Task{
		"tk-1": {ID: "tk-1", TrackID: "tr-1"},
		"tk-2": {ID: "tk-2", TrackID: "tr-2"},
	}

	tasks, err := svc.ListByTrack(context.Background(), "tr-1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "tk-1", tasks[0].ID)

	_, err = svc.ListByTrack(context.Background(), "tr-missing")
	assert.ErrorIs(t, err, domain.ErrTrackNotFound)
}
