package command

import (
	"context"
	"time"

	"hatysa/internal/version"
)

// InfoCommand reports the bot version and uptime. The start time is injected
// at startup rather than read from a hidden global.
type InfoCommand struct {
	Start time.Time
}

func NewInfo(start time.Time) *InfoCommand {
	return &InfoCommand{Start: start}
}

func (*InfoCommand) Name() string      { return "info" }
func (*InfoCommand) Aliases() []string { return nil }
func (*InfoCommand) Description() string {
	return "Request info about the currently running bot instance"
}

func (c *InfoCommand) Run(_ context.Context, _ string) (Response, error) {
	return Info{
		Version:  version.Version,
		Uptime:   time.Since(c.Start),
		Homepage: version.Homepage,
	}, nil
}
