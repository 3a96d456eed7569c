package repository

import (
	"context"

	"github.com/aidar/event-planner/internal/domain"
	"github.com/aidar/event-planner/internal/seed"
)

// UserRepository определяет методы для работы с данными пользователей
type UserRepository interface {
	// GetByID получает пользователя по ID
	GetByID(ctx context.Context, userID string) (*domain.User, error)
}

// EventRepository определяет методы для работы с мероприятиями
type EventRepository interface {
	// GetByID получает мероприятие по ID
	GetByID(ctx context.Context, eventID string) (*domain.Event, error)

	// Exists проверяет существование мероприятия
	Exists(ctx context.Context, eventID string) (bool, error)
}

// TrackRepository определяет методы для работы с треками
type TrackRepository interface {
	// Create сохраняет новый трек
	Create(ctx context.Context, track *domain.Track) error

	// GetByID получает трек по ID
	GetByID(ctx context.Context, trackID string) (*domain.Track, error)

	// ListByEvent возвращает все треки мероприятия
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Track, error)
}

// TaskRepository определяет методы для работы с задачами
type TaskRepository interface {
	// Create сохраняет задачу и добавляет исполнителя в участники трека
	Create(ctx context.Context, task *domain.Task) error

	// GetByID получает задачу по ID
	GetByID(ctx context.Context, taskID string) (*domain.Task, error)

	// ListByTrack возвращает задачи трека
	ListByTrack(ctx context.Context, trackID string) ([]*domain.Task, error)

	// UpdateStatus меняет статус задачи и возвращает обновленную запись
	UpdateStatus(ctx context.Context, taskID string, status domain.TaskStatus) (*domain.Task, error)
}

// MeetingRepository определяет методы для чтения встреч
type MeetingRepository interface {
	// GetByID получает встречу по ID
	GetByID(ctx context.Context, meetingID string) (*domain.Meeting, error)

	// ListByEvent возвращает встречи мероприятия, упорядоченные по времени начала
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Meeting, error)

	// ListByAttendee возвращает встречи, в которых участвует пользователь
	ListByAttendee(ctx context.Context, userID string) ([]*domain.Meeting, error)
}

// MeetingNoteRepository определяет методы для работы с заметками встреч
type MeetingNoteRepository interface {
	// GetByMeetingID получает заметку встречи (ErrNoteNotFound если ее нет)
	GetByMeetingID(ctx context.Context, meetingID string) (*domain.MeetingNote, error)
}

// StatsRepository определяет агрегирующие запросы
type StatsRepository interface {
	// EventStats считает показатели мероприятия
	EventStats(ctx context.Context, eventID string) (*domain.EventStats, error)
}

// SeedRepository определяет массовую загрузку тестовых данных
type SeedRepository interface {
	// Import копирует весь набор данных в одной транзакции
	Import(ctx context.Context, data *seed.Data) error
}
