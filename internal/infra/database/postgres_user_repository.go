package database

import (
	"context"
	"database/sql"
	"fmt"

	"activity_notification_bot/internal/domain/user"

	"github.com/lib/pq"
)

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) ListByIDs(ctx context.Context, ids []int64) ([]*user.User, error) {
	if len(ids) == 0 {
		return []*user.User{}, nil
	}

	query := `SELECT id, name, discord_handle, created_at, updated_at
               FROM users WHERE id = ANY($1)`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("error listing users by IDs: %w", err)
	}
	defer rows.Close()

	users := make([]*user.User, 0, len(ids))
	for rows.Next() {
		u := &user.User{}
		if err := rows.Scan(&u.ID, &u.Name, &u.DiscordHandle, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

// MapDiscordHandles builds the per-sweep handle map in one query. Users with no
// handle configured are left out of the map entirely.
func (r *PostgresUserRepository) MapDiscordHandles(ctx context.Context, ids []int64) (map[int64]string, error) {
	handles := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return handles, nil
	}

	query := `SELECT id, discord_handle FROM users
               WHERE id = ANY($1) AND discord_handle IS NOT NULL AND discord_handle <> ''`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("error fetching discord handles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var handle string
		if err := rows.Scan(&id, &handle); err != nil {
			return nil, fmt.Errorf("error scanning discord handle: %w", err)
		}
		handles[id] = handle
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating discord handles: %w", err)
	}
	return handles, nil
}
