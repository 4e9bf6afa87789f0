// Package discord bridges Discord gateway events to the command core and
// renders command responses back as messages, reactions, and embeds.
package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"hatysa/internal/command"
	"hatysa/internal/config"
	"hatysa/internal/storage"
)

// Bot is the Discord adapter. Each gateway event is handled independently;
// the only state shared between handlers is the storage layer, which
// serializes its own writes.
type Bot struct {
	dg      *discordgo.Session
	cfg     *config.Config
	store   *storage.Storage
	limiter *rate.Limiter
	log     zerolog.Logger
}

// reactionRate paces reaction adds and message deletes so that spelling out
// a word in reactions does not trip Discord's per-channel limit.
var reactionRate = rate.Every(300 * time.Millisecond)

func NewBot(cfg *config.Config, store *storage.Storage, logger zerolog.Logger) *Bot {
	return &Bot{
		cfg:     cfg,
		store:   store,
		limiter: rate.NewLimiter(reactionRate, 1),
		log:     logger,
	}
}

// Run opens the gateway session and blocks until ctx is cancelled. Event
// handling errors are reported per event and never propagate here.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	b.dg = dg

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onGuildCreate)
	dg.AddHandler(b.onGuildUpdate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	b.log.Info().Msg("shutdown signal received, closing session")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.log.Info().Str("user", r.User.Username).Int("guilds", len(r.Guilds)).Msg("connected")

	if err := s.UpdateGameStatus(0, b.cfg.Prefix+"react"); err != nil {
		b.log.Warn().Err(err).Msg("failed to set activity")
	}
}

func (b *Bot) onGuildCreate(_ *discordgo.Session, g *discordgo.GuildCreate) {
	b.log.Info().Str("guild", g.ID).Str("name", g.Name).Msg("joined guild")

	if err := b.store.UpsertGuild(context.Background(), g.ID, g.Name); err != nil {
		b.log.Error().Err(err).Str("guild", g.ID).Msg("failed to record guild")
	}
}

func (b *Bot) onGuildUpdate(_ *discordgo.Session, g *discordgo.GuildUpdate) {
	if err := b.store.UpsertGuild(context.Background(), g.ID, g.Name); err != nil {
		b.log.Error().Err(err).Str("guild", g.ID).Msg("failed to update guild name")
	}
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	direct := m.GuildID == ""

	inv, ok := Interpret(m.Content, b.cfg.Prefix, direct)
	if !ok {
		if !direct {
			if subject, delta, ok := KarmaShorthand(m.Content); ok {
				b.adjustKarma(s, m, subject, delta)
			}
		}
		return
	}

	b.log.Debug().Str("command", inv.Name).Str("channel", m.ChannelID).Msg("message is a command")

	cmd, ok := command.Get(inv.Name)
	if !ok {
		b.reportError(s, m, command.UnknownCommandf(inv.Name))
		return
	}

	ctx := command.WithGuildID(context.Background(), m.GuildID)
	resp, err := cmd.Run(ctx, inv.Arg)
	if err != nil {
		b.reportError(s, m, err)
		return
	}

	if err := b.respond(s, m, resp); err != nil {
		b.log.Error().Err(err).Str("command", inv.Name).Msg("failed to respond")
		b.reportError(s, m, command.Requestf(err, "could not complete request, please try again"))
	}
}

func (b *Bot) adjustKarma(s *discordgo.Session, m *discordgo.MessageCreate, subject string, delta int64) {
	score, err := b.store.AdjustKarma(context.Background(), m.GuildID, subject, delta)
	if err != nil {
		b.log.Error().Err(err).Str("subject", subject).Msg("failed to adjust karma")
		return
	}

	b.log.Debug().Str("subject", subject).Int64("score", score).Msg("karma adjusted")

	if err := s.MessageReactionAdd(m.ChannelID, m.ID, "✅"); err != nil {
		b.log.Warn().Err(err).Msg("failed to acknowledge karma change")
	}
}
