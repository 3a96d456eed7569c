package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/event-planner/internal/domain"
)

// StatsRepository реализует repository.StatsRepository для PostgreSQL
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository создает новый экземпляр StatsRepository
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// eventStatsQuery считает все показатели одним запросом.
// Статусы задач ограничены CHECK constraint, поэтому перечислены явно.
const eventStatsQuery = `
	WITH event_tracks AS (
		SELECT id, participant_ids FROM tracks WHERE event_id = $1
	),
	event_tasks AS (
		SELECT tk.status FROM tasks tk JOIN event_tracks t ON t.id = tk.track_id
	),
	event_meetings AS (
		SELECT m.id, n.id AS note_id
		FROM meetings m
		LEFT JOIN meeting_notes n ON n.meeting_id = m.id
		WHERE m.event_id = $1
	)
	SELECT
		EXISTS (SELECT 1 FROM events WHERE id = $1),
		(SELECT COUNT(*) FROM event_tracks),
		(SELECT COUNT(DISTINCT p) FROM event_tracks t, unnest(t.participant_ids) AS p),
		(SELECT COUNT(*) FROM event_tasks WHERE status = 'todo'),
		(SELECT COUNT(*) FROM event_tasks WHERE status = 'in_progress'),
		(SELECT COUNT(*) FROM event_tasks WHERE status = 'done'),
		(SELECT COUNT(*) FROM event_meetings),
		(SELECT COUNT(note_id) FROM event_meetings)
`

// EventStats считает треки, участников, задачи по статусам и встречи мероприятия.
// Возвращает ErrEventNotFound, если мероприятия нет.
func (r *StatsRepository) EventStats(ctx context.Context, eventID string) (*domain.EventStats, error) {
	var (
		exists                 bool
		todo, inProgress, done int
	)
	stats := &domain.EventStats{EventID: eventID}

	err := r.db.QueryRow(ctx, eventStatsQuery, eventID).Scan(
		&exists,
		&stats.Tracks,
		&stats.Participants,
		&todo,
		&inProgress,
		&done,
		&stats.Meetings,
		&stats.MeetingsWithNotes,
	)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrEventNotFound
	}

	stats.TasksByStatus = map[string]int{
		string(domain.TaskStatusTodo):       todo,
		string(domain.TaskStatusInProgress): inProgress,
		string(domain.TaskStatusDone):       done,
	}
	return stats, nil
}
