package command

import "context"

// PongReply is the fixed liveness acknowledgment.
const PongReply = "Pong!"

type PingCommand struct{}

func (PingCommand) Name() string      { return "ping" }
func (PingCommand) Aliases() []string { return nil }
func (PingCommand) Description() string {
	return "Ping the bot, to check if it's alive"
}

func (PingCommand) Run(_ context.Context, _ string) (Response, error) {
	return Text{Content: PongReply}, nil
}

func init() {
	Register(PingCommand{})
}
