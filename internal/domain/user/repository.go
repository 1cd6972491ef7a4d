package user

import (
	"context"
)

// Repository defines the read operations the sweep needs from the host system's
// user storage.
type Repository interface {
	// ListByIDs fetches the users with the given IDs in a single round trip.
	// Unknown IDs are silently absent from the result.
	ListByIDs(ctx context.Context, ids []int64) ([]*User, error)

	// MapDiscordHandles returns a map from user ID to configured Discord handle
	// for the given IDs, in a single round trip. Users without a handle are
	// absent from the map.
	MapDiscordHandles(ctx context.Context, ids []int64) (map[int64]string, error)
}
