package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// ErrParamNotFound is returned when a configuration parameter is not set.
var ErrParamNotFound = fmt.Errorf("configuration parameter not found")

// PostgresSettingsRepository stores process-wide string parameters in the
// config_parameters table, read fresh on every sweep.
type PostgresSettingsRepository struct {
	db *sql.DB
}

func NewPostgresSettingsRepository(db *sql.DB) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

func (r *PostgresSettingsRepository) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM config_parameters WHERE key = $1`
	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", ErrParamNotFound
		}
		return "", fmt.Errorf("error getting parameter %q: %w", key, err)
	}
	return value, nil
}

func (r *PostgresSettingsRepository) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO config_parameters (key, value) VALUES ($1, $2)
               ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("error setting parameter %q: %w", key, err)
	}
	return nil
}
