package command

import "time"

// Response is the outcome of a successful command. Each kind carries enough
// information for an adapter to render it without reference to the transport.
type Response interface {
	response()
}

// Text is a plain message reply.
type Text struct {
	Content string
}

// React is a sequence of unicode emoji to attach to the message immediately
// preceding the invocation. The invoking message is removed afterwards.
type React struct {
	Emojis []string
}

// Link is a rewritten URL. Adapters address it back to the invoking author
// and remove the invoking message.
type Link struct {
	URL string
}

// Info describes the running bot instance.
type Info struct {
	Version  string
	Uptime   time.Duration
	Homepage string
}

// KarmaReport is the score of a single subject.
type KarmaReport struct {
	Subject string
	Score   int64
}

// KarmaEntry is one row of a karma leaderboard.
type KarmaEntry struct {
	Subject string
	Score   int64
}

// KarmaTop is a leaderboard of the highest-scoring subjects in a guild.
type KarmaTop struct {
	Entries []KarmaEntry
}

func (Text) response()        {}
func (React) response()       {}
func (Link) response()        {}
func (Info) response()        {}
func (KarmaReport) response() {}
func (KarmaTop) response()    {}
