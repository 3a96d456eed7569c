package handler

import (
	"errors"
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/aidar/event-planner/internal/domain"
)

// ErrorResponse представляет тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondWithError отправляет ответ с ошибкой
func RespondWithError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{Error: message})
}

// HandleError преобразует доменные ошибки в HTTP ответы.
// Неизвестные ошибки логируются, клиенту уходит общее сообщение.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		RespondWithError(w, r, http.StatusBadRequest, validationErr.Message)
	case domain.IsNotFound(err):
		RespondWithError(w, r, http.StatusNotFound, notFoundMessage(err))
	case errors.Is(err, domain.ErrAlreadyExists):
		RespondWithError(w, r, http.StatusConflict, "resource already exists")
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidToken):
		RespondWithError(w, r, http.StatusUnauthorized, "unauthorized")
	default:
		logUnexpected(r, err)
		RespondWithError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// notFoundMessage возвращает текст доменной ошибки без деталей обертки
func notFoundMessage(err error) string {
	for _, target := range []error{
		domain.ErrUserNotFound,
		domain.ErrEventNotFound,
		domain.ErrTrackNotFound,
		domain.ErrTaskNotFound,
		domain.ErrMeetingNotFound,
		domain.ErrNoteNotFound,
	} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return domain.ErrNotFound.Error()
}

// logUnexpected пишет в лог ошибку, которая не должна попасть к клиенту
func logUnexpected(r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "Request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", chimiddleware.GetReqID(r.Context()),
		"error", err,
	)
}
