package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/event-planner/internal/config"
	"github.com/aidar/event-planner/internal/handler"
	"github.com/aidar/event-planner/internal/locale"
	"github.com/aidar/event-planner/internal/logger"
	"github.com/aidar/event-planner/internal/middleware"
	"github.com/aidar/event-planner/internal/repository/postgres"
	"github.com/aidar/event-planner/internal/seed"
	"github.com/aidar/event-planner/internal/service"
	"github.com/aidar/event-planner/migrations"
)

// App представляет приложение со всеми зависимостями
type App struct {
	config    *config.Config
	db        *pgxpool.Pool
	server    *http.Server
	logger    *slog.Logger
	logCloser io.Closer
}

// New создает новый экземпляр приложения
func New(cfg *config.Config) (*App, error) {
	// Инициализируем структурированный логгер
	log, closer, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	slog.SetDefault(log)

	return &App{
		config:    cfg,
		logger:    log,
		logCloser: closer,
	}, nil
}

// Initialize инициализирует все компоненты приложения
func (a *App) Initialize(ctx context.Context) error {
	// Подключаемся к базе данных
	pool, err := postgres.NewPool(ctx, a.config.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.db = pool
	a.logger.Info("Connected to database")

	if a.config.Database.AutoMigrate {
		if err := postgres.ApplySchema(ctx, a.db, migrations.Up); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
		a.logger.Info("Database schema applied")
	}

	// Настраиваем HTTP сервер и роутинг
	if err := a.setupServer(); err != nil {
		return err
	}

	a.logger.Info("Application initialized successfully")
	return nil
}

// setupServer инициализирует HTTP роутер и обработчики
func (a *App) setupServer() error {
	resolver, err := locale.NewResolver(
		a.config.Locale.CookieName,
		a.config.Locale.Default,
		a.config.Locale.Supported,
	)
	if err != nil {
		return fmt.Errorf("failed to configure locales: %w", err)
	}

	// Инициализируем слой репозиториев (работа с БД)
	userRepo := postgres.NewUserRepository(a.db)
	eventRepo := postgres.NewEventRepository(a.db)
	trackRepo := postgres.NewTrackRepository(a.db)
	taskRepo := postgres.NewTaskRepository(a.db)
	meetingRepo := postgres.NewMeetingRepository(a.db)
	noteRepo := postgres.NewMeetingNoteRepository(a.db)
	statsRepo := postgres.NewStatsRepository(a.db)
	seedRepo := postgres.NewSeedRepository(a.db)

	// Инициализируем слой сервисов (бизнес-логика)
	enricher := service.NewMeetingEnricher(noteRepo, userRepo)
	meetingService := service.NewMeetingService(meetingRepo, eventRepo, enricher)
	authService := service.NewAuthService(
		userRepo,
		a.config.JWT.Secret,
		a.config.JWT.GetExpiration(),
	)
	migrationService := service.NewMigrationService(seedRepo, seed.Source(a.config.Seed.File), a.logger)

	handlers := Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Track:   handler.NewTrackHandler(service.NewTrackService(trackRepo)),
		Task:    handler.NewTaskHandler(service.NewTaskService(taskRepo, trackRepo)),
		Meeting: handler.NewMeetingHandler(meetingService),
		Migrate: handler.NewMigrateHandler(migrationService),
		Locale:  handler.NewLocaleHandler(resolver),
		User:    handler.NewUserHandler(service.NewUserService(userRepo), meetingService),
		Stats:   handler.NewStatsHandler(service.NewStatsService(statsRepo)),
	}

	router := NewRouter(handlers, RouterConfig{
		AuthMiddleware: middleware.AuthMiddleware(authService),
		Locale:         resolver,
		RequestTimeout: a.config.Server.RequestTimeout,
		Logger:         a.logger,
	})

	// Создаем HTTP сервер с настройками таймаутов
	addr := fmt.Sprintf("%s:%s", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: a.config.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("HTTP server configured", "addr", addr)
	return nil
}

// Run запускает HTTP сервер
func (a *App) Run() error {
	a.logger.Info("Starting HTTP server", "addr", a.server.Addr)
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown корректно останавливает приложение
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	// Останавливаем HTTP сервер (ждем завершения текущих запросов)
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	// Закрываем подключения к базе данных
	if a.db != nil {
		a.db.Close()
	}

	a.logger.Info("Application stopped gracefully")
	return a.logCloser.Close()
}
