package command

import (
	"context"
	"strings"
	"unicode"
)

type SpongebobCommand struct{}

func (SpongebobCommand) Name() string      { return "spongebob" }
func (SpongebobCommand) Aliases() []string { return nil }
func (SpongebobCommand) Description() string {
	return "Convert text to sPoNgEbOb-case text"
}

// Run alternates letter case by position, starting lowercase. Non-letter
// runes are copied through without advancing the alternation, so digits and
// punctuation do not break the pattern of the surrounding letters.
func (SpongebobCommand) Run(_ context.Context, input string) (Response, error) {
	var b strings.Builder
	b.Grow(len(input))

	upper := false
	for _, r := range input {
		if !unicode.IsLetter(r) {
			b.WriteRune(r)
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		upper = !upper
	}

	return Text{Content: b.String()}, nil
}

func init() {
	Register(SpongebobCommand{})
}
