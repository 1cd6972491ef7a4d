package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// MessageShape selects which of the two deployed message formats is rendered.
type MessageShape string

const (
	ShapeGeneric MessageShape = "generic"
	ShapeLead    MessageShape = "lead"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	DatabaseURL         string
	LogLevel            string
	Environment         string
	CronSpecSweep       string
	DiscordAPIBaseURL   string
	DiscordHTTPTimeout  time.Duration
	MessageShape        MessageShape
	SkipArchivedRecords bool
	AdminListenAddr     string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.CronSpecSweep = os.Getenv("CRON_SPEC_SWEEP")
	if cfg.CronSpecSweep == "" {
		cfg.CronSpecSweep = "0 9 * * *" // Default: 9:00 AM daily
	}

	cfg.DiscordAPIBaseURL = strings.TrimRight(os.Getenv("DISCORD_API_BASE_URL"), "/")
	if cfg.DiscordAPIBaseURL == "" {
		cfg.DiscordAPIBaseURL = "https://discord.com/api/v9"
	}

	timeoutStr := os.Getenv("DISCORD_HTTP_TIMEOUT_SECONDS")
	if timeoutStr == "" {
		cfg.DiscordHTTPTimeout = 10 * time.Second // The source defines no timeout; bound each call anyway.
	} else {
		seconds, err := strconv.Atoi(timeoutStr)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("invalid DISCORD_HTTP_TIMEOUT_SECONDS: %q", timeoutStr)
		}
		cfg.DiscordHTTPTimeout = time.Duration(seconds) * time.Second
	}

	shape := strings.ToLower(os.Getenv("MESSAGE_SHAPE"))
	switch shape {
	case "", string(ShapeGeneric):
		cfg.MessageShape = ShapeGeneric
	case string(ShapeLead):
		cfg.MessageShape = ShapeLead
	default:
		return nil, fmt.Errorf("invalid MESSAGE_SHAPE: %q (want %q or %q)", shape, ShapeGeneric, ShapeLead)
	}

	skipStr := os.Getenv("SKIP_ARCHIVED_RECORDS")
	if skipStr != "" {
		skip, err := strconv.ParseBool(skipStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SKIP_ARCHIVED_RECORDS: %q", skipStr)
		}
		cfg.SkipArchivedRecords = skip
	}

	cfg.AdminListenAddr = os.Getenv("ADMIN_LISTEN_ADDR")
	if cfg.AdminListenAddr == "" {
		cfg.AdminListenAddr = ":8080"
	}

	return cfg, nil
}
