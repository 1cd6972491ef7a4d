package settings

import "context"

// Well-known parameter keys. These match the keys the admin settings screen
// writes, so deployments migrating from the original module keep working.
const (
	KeyDiscordBotToken  = "discord.bot.token"
	KeyDiscordChannelID = "discord.channel.id"
	KeyWebBaseURL       = "web.base.url"
)

// Store is the configuration-provider capability the sweep depends on.
// Values are read fresh on every sweep; an absent key is not an error for the
// caller to escalate, it simply disables the dependent behavior.
type Store interface {
	// Get returns the value for key, or ErrParamNotFound from the
	// implementation when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	// Set creates or replaces the value for key.
	Set(ctx context.Context, key, value string) error
}
