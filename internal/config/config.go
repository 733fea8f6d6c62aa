package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Port          string
	LogLevel      slog.Level
	LibraryAPIURL string
	PipelineURL   string
	ArchiveDBDSN  string
	Redis         *RedisConfig
	Schedule      *ScheduleConfig
	Snapshot      *SnapshotConfig
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	scheduleConfig, err := LoadScheduleConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:          port,
		LogLevel:      parseLogLevel(os.Getenv("LOG_LEVEL")),
		LibraryAPIURL: os.Getenv("LIBRARY_API_URL"),
		PipelineURL:   os.Getenv("PIPELINE_URL"),
		ArchiveDBDSN:  os.Getenv("ARCHIVE_DB_DSN"),
		Redis:         redisConfig,
		Schedule:      scheduleConfig,
		Snapshot:      LoadSnapshotConfig(),
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
