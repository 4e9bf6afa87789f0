package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"hatysa/internal/command"
	"hatysa/internal/version"
)

const embedColor = 0xf4ea3e

// respond renders a command response back to the channel the invocation came
// from. React and Link responses also remove the invoking message.
func (b *Bot) respond(s *discordgo.Session, m *discordgo.MessageCreate, resp command.Response) error {
	switch r := resp.(type) {
	case command.Text:
		_, err := s.ChannelMessageSend(m.ChannelID, r.Content)
		return err

	case command.React:
		return b.applyReactions(s, m, r.Emojis)

	case command.Link:
		content := fmt.Sprintf("%s: <%s>", m.Author.Mention(), r.URL)
		if _, err := s.ChannelMessageSend(m.ChannelID, content); err != nil {
			return err
		}
		return s.ChannelMessageDelete(m.ChannelID, m.ID)

	case command.Info:
		embed := &discordgo.MessageEmbed{
			Author: b.embedAuthor(s),
			Color:  embedColor,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Version", Value: r.Version, Inline: true},
				{Name: "Uptime", Value: FormatUptime(r.Uptime), Inline: true},
				{Name: "Homepage", Value: r.Homepage},
			},
		}
		_, err := s.ChannelMessageSendEmbed(m.ChannelID, embed)
		return err

	case command.KarmaReport:
		_, err := s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("**%s** has %d karma", r.Subject, r.Score))
		return err

	case command.KarmaTop:
		embed := &discordgo.MessageEmbed{
			Title:       "Top karma",
			Color:       embedColor,
			Description: formatKarmaTop(r.Entries),
		}
		_, err := s.ChannelMessageSendEmbed(m.ChannelID, embed)
		return err

	default:
		return fmt.Errorf("unhandled response type %T", resp)
	}
}

// applyReactions attaches each emoji to the message immediately preceding the
// invocation, then deletes the invoking message. Reaction adds go through the
// shared rate limiter.
func (b *Bot) applyReactions(s *discordgo.Session, m *discordgo.MessageCreate, emojis []string) error {
	prev, err := s.ChannelMessages(m.ChannelID, 1, m.ID, "", "")
	if err != nil {
		return fmt.Errorf("find reaction target: %w", err)
	}
	if len(prev) == 0 {
		return errors.New("no previous message to react to")
	}
	target := prev[0]

	for _, emoji := range emojis {
		if err := b.limiter.Wait(context.Background()); err != nil {
			return err
		}
		if err := s.MessageReactionAdd(m.ChannelID, target.ID, emoji); err != nil {
			return fmt.Errorf("add reaction %s: %w", emoji, err)
		}
	}

	return s.ChannelMessageDelete(m.ChannelID, m.ID)
}

// reportError renders a command failure as an embed. Reporting failures are
// only logged; nothing here is fatal to the event loop.
func (b *Bot) reportError(s *discordgo.Session, m *discordgo.MessageCreate, err error) {
	var cmdErr *command.CommandError
	if !errors.As(err, &cmdErr) {
		cmdErr = command.Internalf(err, "an internal error occurred, please try again later")
	}

	b.log.Warn().Err(err).Str("channel", m.ChannelID).Msg("reporting command error to user")

	embed := &discordgo.MessageEmbed{
		Author: b.embedAuthor(s),
		Color:  embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Error", Value: cmdErr.Message},
		},
	}
	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		b.log.Error().Err(err).Msg("failed to report error to user")
	}
}

func (b *Bot) embedAuthor(s *discordgo.Session) *discordgo.MessageEmbedAuthor {
	author := &discordgo.MessageEmbedAuthor{
		Name: version.AppName,
		URL:  version.Homepage,
	}
	if s.State.User != nil {
		author.IconURL = s.State.User.AvatarURL("")
	}
	return author
}

// FormatUptime renders a duration the way the info embed shows it, e.g.
// "1d 2h 3m 4s".
func FormatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
}

func formatKarmaTop(entries []command.KarmaEntry) string {
	if len(entries) == 0 {
		return "No karma has been given yet."
	}

	var b strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&b, "%d. **%s**: %d\n", i+1, e.Subject, e.Score)
	}
	return b.String()
}
