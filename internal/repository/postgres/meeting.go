package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/event-planner/internal/domain"
)

const meetingColumns = `id, event_id, title, starts_at, ends_at, location, attendee_ids`

// MeetingRepository реализует repository.MeetingRepository для PostgreSQL
type MeetingRepository struct {
	db *pgxpool.Pool
}

// NewMeetingRepository создает новый экземпляр MeetingRepository
func NewMeetingRepository(db *pgxpool.Pool) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// GetByID получает встречу по ID
func (r *MeetingRepository) GetByID(ctx context.Context, meetingID string) (*domain.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE id = $1`

	meeting, err := scanMeeting(r.db.QueryRow(ctx, query, meetingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMeetingNotFound
		}
		return nil, err
	}

	return meeting, nil
}

// ListByEvent возвращает встречи мероприятия по времени начала
func (r *MeetingRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE event_id = $1 ORDER BY starts_at, id`
	return r.list(ctx, query, eventID)
}

// ListByAttendee возвращает встречи, где пользователь указан среди участников
func (r *MeetingRepository) ListByAttendee(ctx context.Context, userID string) ([]*domain.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE attendee_ids @> ARRAY[$1]::text[] ORDER BY starts_at, id`
	return r.list(ctx, query, userID)
}

func (r *MeetingRepository) list(ctx context.Context, query string, arg string) ([]*domain.Meeting, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meetings := make([]*domain.Meeting, 0)
	for rows.Next() {
		meeting, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, meeting)
	}

	return meetings, rows.Err()
}

func scanMeeting(row pgx.Row) (*domain.Meeting, error) {
	var meeting domain.Meeting
	err := row.Scan(
		&meeting.ID,
		&meeting.EventID,
		&meeting.Title,
		&meeting.StartsAt,
		&meeting.EndsAt,
		&meeting.Location,
		&meeting.AttendeeIDs,
	)
	if err != nil {
		return nil, err
	}
	if meeting.AttendeeIDs == nil {
		meeting.AttendeeIDs = []string{}
	}
	return &meeting, nil
}
