package domain

import "time"

// TaskStatus представляет статус задачи
type TaskStatus string

// Возможные статусы задачи
const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// IsValid возвращает true для известных статусов
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}

// Task представляет задачу внутри трека
type Task struct {
	ID         string     `json:"id"`
	TrackID    string     `json:"trackId"`
	Title      string     `json:"title"`
	AssigneeID *string    `json:"assigneeId,omitempty"`
	Status     TaskStatus `json:"status"`
	DueDate    *time.Time `json:"dueDate,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
}
