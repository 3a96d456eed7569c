package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/event-planner/internal/config"
	"github.com/aidar/event-planner/migrations"
)

// Коды ошибок PostgreSQL, которые репозитории переводят в доменные ошибки
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// NewPool создает connection pool и проверяет подключение к БД
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// Настраиваем размеры connection pool
	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Проверяем подключение к БД
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// ApplySchema выполняет встроенные SQL-миграции в указанном направлении
func ApplySchema(ctx context.Context, db *pgxpool.Pool, dir migrations.Direction) error {
	scripts, err := migrations.Scripts(dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	for _, script := range scripts {
		// Без аргументов pgx использует simple protocol, поэтому несколько statements допустимы
		if _, err := db.Exec(ctx, script.SQL); err != nil {
			return fmt.Errorf("failed to apply %s: %w", script.Name, err)
		}
	}

	return nil
}

// pgErrorCode возвращает код ошибки PostgreSQL или пустую строку
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
