package discord

import (
	"context"
	"errors"
)

// ErrUserNotFound is returned by LookupUserID when the handle does not resolve
// to a Discord user.
var ErrUserNotFound = errors.New("discord user not found")

// Client defines an interface for the Discord delivery operations the sweep
// performs. This decouples the application logic from the HTTP transport.
// Every call is independent and best-effort; callers log failures and move on.
type Client interface {
	// PostMessage posts a plain-text message to the given channel.
	PostMessage(ctx context.Context, token, channelID, content string) error
	// LookupUserID resolves a stored handle to a Discord user ID.
	LookupUserID(ctx context.Context, token, handle string) (string, error)
	// CreateDMChannel opens (or reuses) a direct-message channel with the given
	// Discord user and returns its channel ID.
	CreateDMChannel(ctx context.Context, token, recipientID string) (string, error)
}
