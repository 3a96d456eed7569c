package domain

import "errors"

// Доменные ошибки
var (
	// ErrNotFound возвращается когда ресурс не найден
	ErrNotFound = errors.New("resource not found")

	// ErrUserNotFound возвращается когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrEventNotFound возвращается когда мероприятие не найдено
	ErrEventNotFound = errors.New("event not found")

	// ErrTrackNotFound возвращается когда трек не найден
	ErrTrackNotFound = errors.New("track not found")

	// ErrTaskNotFound возвращается когда задача не найдена
	ErrTaskNotFound = errors.New("task not found")

	// ErrMeetingNotFound возвращается когда встреча не найдена
	ErrMeetingNotFound = errors.New("meeting not found")

	// ErrNoteNotFound возвращается когда у встречи нет заметки
	ErrNoteNotFound = errors.New("meeting note not found")

	// ErrAlreadyExists возвращается при нарушении уникальности
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrAlreadyMigrated возвращается при повторном импорте тестовых данных
	ErrAlreadyMigrated = errors.New("seed data has already been migrated")

	// ErrUnauthorized возвращается при неудачной аутентификации
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidToken возвращается когда JWT токен невалиден
	ErrInvalidToken = errors.New("invalid token")
)

// ValidationError описывает ошибку валидации входных данных.
// Message показывается клиенту как есть.
type ValidationError struct {
	Message string
}

// NewValidationError создает ошибку валидации с сообщением для клиента
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsNotFound проверяет, относится ли ошибка к отсутствующему ресурсу
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrEventNotFound) ||
		errors.Is(err, ErrTrackNotFound) ||
		errors.Is(err, ErrTaskNotFound) ||
		errors.Is(err, ErrMeetingNotFound) ||
		errors.Is(err, ErrNoteNotFound)
}
