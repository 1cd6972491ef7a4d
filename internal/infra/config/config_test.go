package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/notifier_test?sslmode=disable")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "info" || cfg.Environment != "development" {
		t.Fatalf("unexpected defaults: level=%q env=%q", cfg.LogLevel, cfg.Environment)
	}
	if cfg.CronSpecSweep != "0 9 * * *" {
		t.Fatalf("unexpected default cron spec: %q", cfg.CronSpecSweep)
	}
	if cfg.DiscordAPIBaseURL != "https://discord.com/api/v9" {
		t.Fatalf("unexpected default base URL: %q", cfg.DiscordAPIBaseURL)
	}
	if cfg.DiscordHTTPTimeout != 10*time.Second {
		t.Fatalf("unexpected default timeout: %v", cfg.DiscordHTTPTimeout)
	}
	if cfg.MessageShape != ShapeGeneric {
		t.Fatalf("unexpected default shape: %q", cfg.MessageShape)
	}
	if cfg.SkipArchivedRecords {
		t.Fatal("archived filter must default to off")
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is unset")
	}
}

func TestLoadLeadShapeAndFilters(t *testing.T) {
	setRequired(t)
	t.Setenv("MESSAGE_SHAPE", "lead")
	t.Setenv("SKIP_ARCHIVED_RECORDS", "true")
	t.Setenv("DISCORD_HTTP_TIMEOUT_SECONDS", "5")
	t.Setenv("DISCORD_API_BASE_URL", "https://discord.example.com/api/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MessageShape != ShapeLead {
		t.Fatalf("expected lead shape, got %q", cfg.MessageShape)
	}
	if !cfg.SkipArchivedRecords {
		t.Fatal("expected archived filter on")
	}
	if cfg.DiscordHTTPTimeout != 5*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.DiscordHTTPTimeout)
	}
	if cfg.DiscordAPIBaseURL != "https://discord.example.com/api" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.DiscordAPIBaseURL)
	}
}

func TestLoadRejectsInvalidShape(t *testing.T) {
	setRequired(t)
	t.Setenv("MESSAGE_SHAPE", "fancy")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown message shape")
	}
}

func TestLoadRejectsInvalidTimeout(t *testing.T) {
	setRequired(t)
	t.Setenv("DISCORD_HTTP_TIMEOUT_SECONDS", "zero")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric timeout")
	}
}
