package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/event-planner/internal/domain"
)

const taskColumns = `id, track_id, title, assignee_id, status, due_date, created_at`

// TaskRepository реализует repository.TaskRepository для PostgreSQL
type TaskRepository struct {
	db *pgxpool.Pool
}

// NewTaskRepository создает новый экземпляр TaskRepository
func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create сохраняет задачу и, если указан исполнитель, добавляет его в участники трека
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	// Start transaction
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore error as it will fail if transaction was committed
	}()

	query := `
		INSERT INTO tasks (id, track_id, title, assignee_id, status, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err = tx.QueryRow(ctx, query,
		task.ID, task.TrackID, task.Title, task.AssigneeID, task.Status, task.DueDate,
	).Scan(&task.CreatedAt)
	if err != nil {
		switch pgErrorCode(err) {
		case codeUniqueViolation:
			return domain.ErrAlreadyExists
		case codeForeignKeyViolation:
			// track_id проверяется сервисом заранее, остается assignee_id
			return domain.ErrUserNotFound
		}
		return err
	}

	// Add assignee to track participants (set semantics)
	if task.AssigneeID != nil {
		participantQuery := `
			UPDATE tracks
			SET participant_ids = array_append(participant_ids, $1)
			WHERE id = $2 AND NOT ($1 = ANY(participant_ids))
		`
		if _, err := tx.Exec(ctx, participantQuery, *task.AssigneeID, task.TrackID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetByID получает задачу по ID
func (r *TaskRepository) GetByID(ctx context.Context, taskID string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(r.db.QueryRow(ctx, query, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	return task, nil
}

// ListByTrack возвращает задачи трека в порядке создания
func (r *TaskRepository) ListByTrack(ctx context.Context, trackID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE track_id = $1 ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, trackID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// UpdateStatus меняет статус задачи
func (r *TaskRepository) UpdateStatus(ctx context.Context, taskID string, status domain.TaskStatus) (*domain.Task, error) {
	query := `
		UPDATE tasks
		SET status = $1
		WHERE id = $2
		RETURNING ` + taskColumns

	task, err := scanTask(r.db.QueryRow(ctx, query, status, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	return task, nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID,
		&task.TrackID,
		&task.Title,
		&task.AssigneeID,
		&task.Status,
		&task.DueDate,
		&task.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &task, nil
}
