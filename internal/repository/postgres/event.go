package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/event-planner/internal/domain"
)

// EventRepository реализует repository.EventRepository для PostgreSQL
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository создает новый экземпляр EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// GetByID получает мероприятие по ID
func (r *EventRepository) GetByID(ctx context.Context, eventID string) (*domain.Event, error) {
	query := `
		SELECT id, name, description, starts_at, ends_at
		FROM events
		WHERE id = $1
	`

	var event domain.Event
	err := r.db.QueryRow(ctx, query, eventID).Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.StartsAt,
		&event.EndsAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}

// Exists проверяет существование мероприятия
func (r *EventRepository) Exists(ctx context.Context, eventID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, eventID).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
