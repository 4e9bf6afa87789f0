// Package command implements the bot's command core: named handlers that map
// raw argument text to typed responses. The package knows nothing about
// Discord; adapters (internal/discord, cmd/cli) decide how each response kind
// is rendered, so commands can be invoked and tested without a live
// connection.
package command

import "context"

// Command is the contract every handler satisfies: identity plus execution.
// Run must be safe for concurrent use; handlers hold no shared mutable state
// beyond what they guard themselves.
type Command interface {
	Name() string
	Aliases() []string
	Description() string
	Run(ctx context.Context, input string) (Response, error)
}
