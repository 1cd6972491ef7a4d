package user

import (
	"database/sql"
	"time"
)

// User represents a person in the host system.
type User struct {
	ID            int64
	Name          string
	DiscordHandle sql.NullString // Optional; free-text handle configured per user
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
