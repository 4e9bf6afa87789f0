// Package config reads the process-wide runtime configuration from the
// environment. The configuration is read once at startup and never mutated.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// DiscordToken authenticates the bot against the Discord gateway.
	DiscordToken string `env:"DISCORD_TOKEN,required,notEmpty"`
	// Prefix marks a message as a command invocation. Optional in DMs.
	Prefix string `env:"HATYSA_PREFIX" envDefault:","`
	// DatabasePath is the SQLite file holding guild and karma records.
	DatabasePath string `env:"HATYSA_DATABASE" envDefault:"hatysa.db"`
	// LogFilter is the minimum level for diagnostic output (zerolog levels).
	LogFilter string `env:"HATYSA_LOG" envDefault:"info"`
}

// Load reads .env if one exists, then parses the environment. A missing
// DISCORD_TOKEN is an error; the caller treats it as fatal before the event
// loop starts.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}
