package cmd

import (
	"fmt"
	"log/slog"
	"strings"
)

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	LogLevel              string
	BacklogReportSchedule string
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode)
}

// SlogLevel maps LOG_LEVEL onto slog; unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
