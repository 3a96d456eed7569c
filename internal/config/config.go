package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config содержит всю конфигурацию приложения
type Config struct {
	Server   ServerConfig   // Настройки HTTP сервера
	Database DatabaseConfig // Настройки подключения к БД
	JWT      JWTConfig      // Настройки JWT авторизации
	Log      LogConfig      // Настройки логирования
	Locale   LocaleConfig   // Настройки выбора языка
	Seed     SeedConfig     // Источник тестовых данных для миграции
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port           string        `envconfig:"SERVER_PORT" default:"8080"`
	Host           string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	RequestTimeout time.Duration `envconfig:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// DatabaseConfig содержит настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"planner"`
	Password    string `envconfig:"DB_PASSWORD" default:"planner_pass"`
	Name        string `envconfig:"DB_NAME" default:"planner"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int32  `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"` // Применять схему при старте
}

// JWTConfig содержит настройки JWT авторизации
type JWTConfig struct {
	Secret          string `envconfig:"JWT_SECRET" required:"true"`
	ExpirationHours int    `envconfig:"JWT_EXPIRATION_HOURS" default:"24"`
}

// LogConfig содержит настройки логирования
type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	Format     string `envconfig:"LOG_FORMAT" default:"json"`
	File       string `envconfig:"LOG_FILE"` // Пусто - только stdout
	MaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"100"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"10"`
	MaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"30"`
}

// LocaleConfig содержит настройки выбора языка интерфейса
type LocaleConfig struct {
	CookieName string   `envconfig:"LOCALE_COOKIE" default:"NEXT_LOCALE"`
	Default    string   `envconfig:"LOCALE_DEFAULT" default:"en"`
	Supported  []string `envconfig:"LOCALE_SUPPORTED" default:"en,es,fr,de"`
}

// SeedConfig содержит настройки источника тестовых данных
type SeedConfig struct {
	File string `envconfig:"SEED_FILE"` // Пусто - встроенный набор данных
}

// GetExpiration возвращает срок действия токена как time.Duration
func (j JWTConfig) GetExpiration() time.Duration {
	return time.Duration(j.ExpirationHours) * time.Hour
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// Load читает конфигурацию из переменных окружения
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadDatabase читает только настройки БД и источника данных (для CLI)
func LoadDatabase() (DatabaseConfig, SeedConfig, error) {
	var db DatabaseConfig
	if err := envconfig.Process("", &db); err != nil {
		return DatabaseConfig{}, SeedConfig{}, fmt.Errorf("failed to load database config: %w", err)
	}
	var seed SeedConfig
	if err := envconfig.Process("", &seed); err != nil {
		return DatabaseConfig{}, SeedConfig{}, fmt.Errorf("failed to load seed config: %w", err)
	}
	return db, seed, nil
}
