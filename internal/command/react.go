package command

import (
	"context"
	"strings"
	"unicode"
)

const (
	regionalIndicatorUpper = 0x1f1a5 // 'A' + offset = 🇦
	regionalIndicatorLower = 0x1f185 // 'a' + offset = 🇦
	variationSelector16    = 0xfe0f
	combiningKeycap        = 0x20e3
)

type ReactCommand struct{}

func (ReactCommand) Name() string      { return "react" }
func (ReactCommand) Aliases() []string { return nil }
func (ReactCommand) Description() string {
	return "React to the previous message with emojis spelling out a word"
}

// Run converts a word into reaction emoji: letters become regional
// indicators, digits become keycap sequences. The input must be a single
// word of ASCII alphanumerics. Discord only allows each emoji once per
// message, so repeated characters (ignoring case) collapse to a single
// reaction at their first position.
func (ReactCommand) Run(_ context.Context, input string) (Response, error) {
	if input == "" {
		return nil, Validationf("nothing to react with")
	}
	if strings.ContainsFunc(input, unicode.IsSpace) {
		return nil, Validationf("string **%s** contains whitespace", input)
	}

	for _, r := range input {
		if !isASCIIAlphanumeric(r) {
			return nil, Validationf("string **%s** contains non-alphanumeric characters", strings.ToUpper(input))
		}
	}

	seen := map[rune]bool{}
	emojis := make([]string, 0, len(input))
	for _, r := range input {
		u := unicode.ToUpper(r)
		if seen[u] {
			continue
		}
		seen[u] = true
		emojis = append(emojis, reactionEmoji(r))
	}

	return React{Emojis: emojis}, nil
}

func isASCIIAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func reactionEmoji(r rune) string {
	switch {
	case r >= 'A' && r <= 'Z':
		return string(r + regionalIndicatorUpper)
	case r >= 'a' && r <= 'z':
		return string(r + regionalIndicatorLower)
	default:
		// Keycap sequence: digit, VS-16, combining enclosing keycap.
		return string([]rune{r, variationSelector16, combiningKeycap})
	}
}

func init() {
	Register(ReactCommand{})
}
