package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/event-planner/internal/domain"
	"github.com/aidar/event-planner/internal/seed"
)

// SeedRepository реализует repository.SeedRepository через COPY
type SeedRepository struct {
	db *pgxpool.Pool
}

// NewSeedRepository создает новый экземпляр SeedRepository
func NewSeedRepository(db *pgxpool.Pool) *SeedRepository {
	return &SeedRepository{db: db}
}

// copyTable описывает одну таблицу для массовой загрузки
type copyTable struct {
	name    string
	columns []string
	rows    [][]any
}

// Import копирует набор данных в одной транзакции в порядке зависимостей.
// Повторный импорт тех же строк завершается ErrAlreadyMigrated.
func (r *SeedRepository) Import(ctx context.Context, data *seed.Data) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore error as it will fail if transaction was committed
	}()

	for _, table := range seedTables(data) {
		if len(table.rows) == 0 {
			continue
		}

		_, err := tx.CopyFrom(ctx, pgx.Identifier{table.name}, table.columns, pgx.CopyFromRows(table.rows))
		if err != nil {
			if pgErrorCode(err) == codeUniqueViolation {
				return fmt.Errorf("copy %s: %w", table.name, domain.ErrAlreadyMigrated)
			}
			return fmt.Errorf("copy %s: %w", table.name, err)
		}
	}

	return tx.Commit(ctx)
}

func seedTables(data *seed.Data) []copyTable {
	users := make([][]any, 0, len(data.Users))
	for _, u := range data.Users {
		initials := u.Initials
		if initials == "" {
			initials = domain.DeriveInitials(u.Name)
		}
		users = append(users, []any{u.ID, u.Name, initials, u.Email, u.AvatarURL})
	}

	events := make([][]any, 0, len(data.Events))
	for _, e := range data.Events {
		events = append(events, []any{e.ID, e.Name, e.Description, e.StartsAt, e.EndsAt})
	}

	tracks := make([][]any, 0, len(data.Tracks))
	for _, t := range data.Tracks {
		participants := t.ParticipantIDs
		if participants == nil {
			participants = []string{}
		}
		tracks = append(tracks, []any{t.ID, t.EventID, t.Name, t.Description, t.LeadID, participants})
	}

	tasks := make([][]any, 0, len(data.Tasks))
	for _, t := range data.Tasks {
		status := t.Status
		if status == "" {
			status = string(domain.TaskStatusTodo)
		}
		tasks = append(tasks, []any{t.ID, t.TrackID, t.Title, t.AssigneeID, status, t.DueDate})
	}

	meetings := make([][]any, 0, len(data.Meetings))
	for _, m := range data.Meetings {
		attendees := m.AttendeeIDs
		if attendees == nil {
			attendees = []string{}
		}
		meetings = append(meetings, []any{m.ID, m.EventID, m.Title, m.StartsAt, m.EndsAt, m.Location, attendees})
	}

	notes := make([][]any, 0, len(data.Notes))
	for _, n := range data.Notes {
		notes = append(notes, []any{n.ID, n.MeetingID, n.Content})
	}

	return []copyTable{
		{name: "users", columns: []string{"id", "name", "initials", "email", "avatar_url"}, rows: users},
		{name: "events", columns: []string{"id", "name", "description", "starts_at", "ends_at"}, rows: events},
		{name: "tracks", columns: []string{"id", "event_id", "name", "description", "lead_id", "participant_ids"}, rows: tracks},
		{name: "tasks", columns: []string{"id", "track_id", "title", "assignee_id", "status", "due_date"}, rows: tasks},
		{name: "meetings", columns: []string{"id", "event_id", "title", "starts_at", "ends_at", "location", "attendee_ids"}, rows: meetings},
		{name: "meeting_notes", columns: []string{"id", "meeting_id", "content"}, rows: notes},
	}
}
