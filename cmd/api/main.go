package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/aidar/event-planner/internal/app"
	"github.com/aidar/event-planner/internal/config"
)

func main() {
	// .env необязателен
	_ = godotenv.Load()

	// Загружаем конфигурацию из переменных окружения
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Не удалось загрузить конфигурацию", "error", err)
		os.Exit(1)
	}

	// Создаем экземпляр приложения
	application, err := app.New(cfg)
	if err != nil {
		slog.Error("Не удалось создать приложение", "error", err)
		os.Exit(1)
	}

	// Инициализируем приложение (подключение к БД, настройка роутинга)
	ctx := context.Background()
	if err := application.Initialize(ctx); err != nil {
		slog.Error("Не удалось инициализировать приложение", "error", err)
		os.Exit(1)
	}

	// Настраиваем graceful shutdown для корректного завершения
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Запускаем HTTP сервер в отдельной горутине
	go func() {
		if err := application.Run(); err != nil {
			slog.Error("Ошибка сервера", "error", err)
			sigChan <- syscall.SIGTERM
		}
	}()

	// Ожидаем сигнал прерывания (Ctrl+C или SIGTERM)
	<-sigChan
	slog.Info("Остановка сервера")

	// Создаем контекст с таймаутом для graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Корректно останавливаем приложение
	if err := application.Shutdown(shutdownCtx); err != nil {
		slog.Error("Не удалось корректно остановить сервер", "error", err)
		os.Exit(1)
	}
}
