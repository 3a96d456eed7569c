package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/event-planner/internal/domain"
)

const trackColumns = `id, event_id, name, description, lead_id, participant_ids, created_at`

// TrackRepository реализует repository.TrackRepository для PostgreSQL
type TrackRepository struct {
	db *pgxpool.Pool
}

// NewTrackRepository создает новый экземпляр TrackRepository
func NewTrackRepository(db *pgxpool.Pool) *TrackRepository {
	return &TrackRepository{db: db}
}

// Create сохраняет новый трек и заполняет CreatedAt
func (r *TrackRepository) Create(ctx context.Context, track *domain.Track) error {
	query := `
		INSERT INTO tracks (id, event_id, name, description, lead_id, participant_ids)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	participants := track.ParticipantIDs
	if participants == nil {
		participants = []string{}
	}

	err := r.db.QueryRow(ctx, query,
		track.ID, track.EventID, track.Name, track.Description, track.LeadID, participants,
	).Scan(&track.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == codeUniqueViolation {
			return domain.ErrAlreadyExists
		}
		return err
	}

	track.ParticipantIDs = participants
	return nil
}

// GetByID получает трек по ID
func (r *TrackRepository) GetByID(ctx context.Context, trackID string) (*domain.Track, error) {
	query := `SELECT ` + trackColumns + ` FROM tracks WHERE id = $1`

	track, err := scanTrack(r.db.QueryRow(ctx, query, trackID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTrackNotFound
		}
		return nil, err
	}

	return track, nil
}

// ListByEvent возвращает все треки мероприятия
func (r *TrackRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Track, error) {
	query := `SELECT ` + trackColumns + ` FROM tracks WHERE event_id = $1 ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tracks := make([]*domain.Track, 0)
	for rows.Next() {
		track, err := scanTrack(rows)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, track)
	}

	return tracks, rows.Err()
}

func scanTrack(row pgx.Row) (*domain.Track, error) {
	var track domain.Track
	err := row.Scan(
		&track.ID,
		&track.EventID,
		&track.Name,
		&track.Description,
		&track.LeadID,
		&track.ParticipantIDs,
		&track.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if track.ParticipantIDs == nil {
		track.ParticipantIDs = []string{}
	}
	return &track, nil
}
