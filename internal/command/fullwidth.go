package command

import (
	"context"
	"strings"
)

const (
	fullwidthSpace  = 0x3000
	fullwidthOffset = 0xfee0 // distance from ASCII 0x21..0x7e to the fullwidth block
)

type FullwidthCommand struct{}

func (FullwidthCommand) Name() string      { return "fullwidth" }
func (FullwidthCommand) Aliases() []string { return []string{"vape", "wavy"} }
func (FullwidthCommand) Description() string {
	return "Convert text to ｖａｐｏｒｗａｖｅ text"
}

// Run maps every printable ASCII rune to its fullwidth equivalent and the
// space to the ideographic space. Runes without a fullwidth form pass through
// unchanged, so input and output have the same rune count.
func (FullwidthCommand) Run(_ context.Context, input string) (Response, error) {
	out := strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return fullwidthSpace
		case r >= '!' && r <= '~':
			return r + fullwidthOffset
		default:
			return r
		}
	}, input)

	return Text{Content: out}, nil
}

func init() {
	Register(FullwidthCommand{})
}
