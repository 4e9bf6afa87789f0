package command

import (
	"context"
	"strings"
	"unicode"
)

const karmaTopLimit = 10

// KarmaStore is the slice of persistence the karma command reads from.
// Writes happen in the adapter, which handles the "subject++" shorthand.
type KarmaStore interface {
	Karma(ctx context.Context, guildID, subject string) (int64, error)
	TopKarma(ctx context.Context, guildID string, n int) ([]KarmaEntry, error)
}

// KarmaCommand reports karma scores for a guild. Scores are per-guild, so it
// refuses to run in direct messages.
type KarmaCommand struct {
	Store KarmaStore
}

func NewKarma(store KarmaStore) *KarmaCommand {
	return &KarmaCommand{Store: store}
}

func (*KarmaCommand) Name() string      { return "karma" }
func (*KarmaCommand) Aliases() []string { return nil }
func (*KarmaCommand) Description() string {
	return "Show a subject's karma, or the guild's top subjects"
}

func (c *KarmaCommand) Run(ctx context.Context, input string) (Response, error) {
	guildID, ok := GuildIDFrom(ctx)
	if !ok {
		return nil, Validationf("karma is only available in a server")
	}

	subject := strings.TrimSpace(input)
	if subject == "" {
		entries, err := c.Store.TopKarma(ctx, guildID, karmaTopLimit)
		if err != nil {
			return nil, Internalf(err, "an internal error occurred, please try again later")
		}
		return KarmaTop{Entries: entries}, nil
	}

	if strings.ContainsFunc(subject, unicode.IsSpace) {
		return nil, Validationf("karma subjects are a single word")
	}

	score, err := c.Store.Karma(ctx, guildID, subject)
	if err != nil {
		return nil, Internalf(err, "an internal error occurred, please try again later")
	}

	return KarmaReport{Subject: subject, Score: score}, nil
}
