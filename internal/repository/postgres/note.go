package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/event-planner/internal/domain"
)

// MeetingNoteRepository реализует repository.MeetingNoteRepository для PostgreSQL
type MeetingNoteRepository struct {
	db *pgxpool.Pool
}

// NewMeetingNoteRepository создает новый экземпляр MeetingNoteRepository
func NewMeetingNoteRepository(db *pgxpool.Pool) *MeetingNoteRepository {
	return &MeetingNoteRepository{db: db}
}

// GetByMeetingID получает заметку встречи
func (r *MeetingNoteRepository) GetByMeetingID(ctx context.Context, meetingID string) (*domain.MeetingNote, error) {
	query := `
		SELECT id, meeting_id, content, updated_at
		FROM meeting_notes
		WHERE meeting_id = $1
	`

	var note domain.MeetingNote
	err := r.db.QueryRow(ctx, query, meetingID).Scan(
		&note.ID,
		&note.MeetingID,
		&note.Content,
		&note.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, err
	}

	return &note, nil
}
