package command

import (
	"context"
	"strings"
)

const clapEmoji = "\U0001f44f"

type ClapCommand struct{}

func (ClapCommand) Name() string      { return "clap" }
func (ClapCommand) Aliases() []string { return nil }
func (ClapCommand) Description() string {
	return "Put 👏 clap 👏 emojis 👏 after 👏 each 👏 word"
}

// Run inserts a clap emoji between every word of the input and appends a
// trailing one. Empty input yields a single emoji.
func (ClapCommand) Run(_ context.Context, input string) (Response, error) {
	words := strings.Fields(input)
	if len(words) == 0 {
		return Text{Content: clapEmoji}, nil
	}
	return Text{Content: strings.Join(words, " "+clapEmoji+" ") + " " + clapEmoji}, nil
}

func init() {
	Register(ClapCommand{})
}
