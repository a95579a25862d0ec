package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Поддерживаемые бэкенды хранилища состояния.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Config описывает настройки запуска витрины.
type Config struct {
	// StorageBackend — memory, file или postgres.
	StorageBackend string
	// StateDir — каталог JSON-файлов для файлового бэкенда.
	StateDir string
	// DatabaseURL — DSN PostgreSQL; обязателен для бэкенда postgres.
	DatabaseURL string
	// KafkaBrokers — пустой список отключает публикацию событий.
	KafkaBrokers []string
	// LogLevel — уровень логирования logrus.
	LogLevel string
}

// Load читает конфигурацию из окружения; .env подхватывается, если есть.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		StorageBackend: getEnv("STORAGE_BACKEND", BackendFile),
		StateDir:       getEnv("STATE_DIR", "./state"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	switch cfg.StorageBackend {
	case BackendMemory, BackendFile:
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
