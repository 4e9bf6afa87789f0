// Package version holds identity information about this build of the bot.
package version

var (
	AppName  = "hatysa"
	Version  = "0.6.0"
	Homepage = "https://sr.ht/~nerosnm/hatysa"
)
