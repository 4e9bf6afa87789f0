package discord

import (
	"regexp"
	"strings"
	"unicode"
)

// Invocation is a command request extracted from message content.
type Invocation struct {
	Name string
	Arg  string
}

// Interpret decides whether content is a command invocation. Guild messages
// must start with the prefix; direct messages may omit it. The command name
// is the first whitespace-delimited token after the prefix, everything after
// it is the argument.
func Interpret(content, prefix string, direct bool) (Invocation, bool) {
	tail, found := strings.CutPrefix(content, prefix)
	if !found {
		if !direct {
			return Invocation{}, false
		}
		tail = content
	}

	tail = strings.TrimSpace(tail)
	if tail == "" {
		return Invocation{}, false
	}

	name, arg := tail, ""
	if i := strings.IndexFunc(tail, unicode.IsSpace); i >= 0 {
		name, arg = tail[:i], strings.TrimSpace(tail[i:])
	}
	return Invocation{Name: name, Arg: arg}, true
}

var (
	karmaInc = regexp.MustCompile(`^(\w+)\+\+$`)
	karmaDec = regexp.MustCompile(`^(\w+)--$`)
)

// KarmaShorthand matches bare "subject++" and "subject--" messages, which
// adjust karma without going through the command prefix.
func KarmaShorthand(content string) (subject string, delta int64, ok bool) {
	if m := karmaInc.FindStringSubmatch(content); m != nil {
		return m[1], 1, true
	}
	if m := karmaDec.FindStringSubmatch(content); m != nil {
		return m[1], -1, true
	}
	return "", 0, false
}
