package handler

import (
	"context"
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

const (
	migrationSucceededMessage = "Migration completed successfully"
	migrationFailedMessage    = "Migration failed"
)

// Migrator выполняет загрузку тестовых данных
type Migrator interface {
	Migrate(ctx context.Context) error
}

// MigrateHandler обрабатывает запуск миграции тестовых данных
type MigrateHandler struct {
	migrator Migrator
}

// NewMigrateHandler создает новый MigrateHandler
func NewMigrateHandler(migrator Migrator) *MigrateHandler {
	return &MigrateHandler{
		migrator: migrator,
	}
}

// MigrateResponse представляет ответ на запуск миграции
type MigrateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Migrate обрабатывает POST /api/migrate
func (h *MigrateHandler) Migrate(w http.ResponseWriter, r *http.Request) {
	if err := h.migrator.Migrate(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Seed migration failed",
			"request_id", chimiddleware.GetReqID(r.Context()),
			"error", err,
		)

		// Здесь клиент получает текст ошибки как есть
		message := err.Error()
		if message == "" {
			message = migrationFailedMessage
		}
		RespondWithJSON(w, r, http.StatusInternalServerError, MigrateResponse{
			Success: false,
			Error:   message,
		})
		return
	}

	RespondWithJSON(w, r, http.StatusOK, MigrateResponse{
		Success: true,
		Message: migrationSucceededMessage,
	})
}
