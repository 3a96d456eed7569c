package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aidar/event-planner/internal/handler"
	"github.com/aidar/event-planner/internal/locale"
	"github.com/aidar/event-planner/internal/metrics"
)

// Handlers содержит все HTTP обработчики приложения
type Handlers struct {
	Auth    *handler.AuthHandler
	Track   *handler.TrackHandler
	Task    *handler.TaskHandler
	Meeting *handler.MeetingHandler
	Migrate *handler.MigrateHandler
	Locale  *handler.LocaleHandler
	User    *handler.UserHandler
	Stats   *handler.StatsHandler
}

// RouterConfig содержит зависимости роутера помимо обработчиков
type RouterConfig struct {
	AuthMiddleware func(http.Handler) http.Handler
	Locale         *locale.Resolver
	RequestTimeout time.Duration
	Logger         *slog.Logger
}

// NewRouter настраивает маршруты и middleware
func NewRouter(h Handlers, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Глобальные middleware (применяются ко всем запросам)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(cfg.RequestTimeout))
	}
	r.Use(metrics.Middleware)
	r.Use(cfg.Locale.Middleware)

	// Health check для мониторинга
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			cfg.Logger.Error("Failed to write health check response", "error", err)
		}
	})
	r.Handle("/metrics", promhttp.Handler())

	// Публичные эндпоинты (без авторизации)
	r.Post("/auth/login", h.Auth.Login)

	r.Route("/api", func(r chi.Router) {
		r.Post("/migrate", h.Migrate.Migrate)

		r.Get("/locale", h.Locale.GetLocale)
		r.Put("/locale", h.Locale.SetLocale)

		r.Post("/tracks", h.Track.CreateTrack)
		r.Get("/tracks/{trackID}", h.Track.GetTrack)
		r.Get("/tracks/{trackID}/tasks", h.Task.ListTrackTasks)
		r.Post("/tracks/{trackID}/tasks", h.Task.CreateTask)
		r.Patch("/tasks/{taskID}/status", h.Task.UpdateStatus)

		r.Route("/events/{eventID}", func(r chi.Router) {
			r.Get("/tracks", h.Track.ListEventTracks)
			r.Get("/meetings", h.Meeting.ListEventMeetings)
			r.Get("/meetings.ics", h.Meeting.ExportEventCalendar)
			r.Get("/stats", h.Stats.GetEventStats)
		})

		r.Get("/meetings/{meetingID}", h.Meeting.GetMeeting)
		r.Get("/users/{userID}", h.User.GetUser)

		// Защищенные эндпоинты (требуют JWT токен в заголовке Authorization)
		r.Group(func(r chi.Router) {
			r.Use(cfg.AuthMiddleware)

			r.Get("/me", h.User.GetMe)
			r.Get("/me/meetings", h.User.GetMyMeetings)
		})
	})

	return r
}
