package command

import "context"

type ctxKey int

const guildIDKey ctxKey = iota

// WithGuildID attaches the invoking guild's ID to the context. Adapters set
// it for guild messages; guild-scoped commands read it back.
func WithGuildID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, guildIDKey, id)
}

// GuildIDFrom returns the guild ID attached to the context, if any. A direct
// message carries none.
func GuildIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(guildIDKey).(string)
	return id, ok && id != ""
}
