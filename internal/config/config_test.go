package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unset clears a variable for the duration of the test, using t.Setenv for
// its cleanup behavior.
func unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	unset(t, "HATYSA_PREFIX")
	unset(t, "HATYSA_DATABASE")
	unset(t, "HATYSA_LOG")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test-token", cfg.DiscordToken)
	assert.Equal(t, ",", cfg.Prefix)
	assert.Equal(t, "hatysa.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogFilter)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("HATYSA_PREFIX", "!")
	t.Setenv("HATYSA_DATABASE", "/tmp/bot.db")
	t.Setenv("HATYSA_LOG", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "!", cfg.Prefix)
	assert.Equal(t, "/tmp/bot.db", cfg.DatabasePath)
	assert.Equal(t, "debug", cfg.LogFilter)
}

func TestLoadRequiresToken(t *testing.T) {
	unset(t, "DISCORD_TOKEN")

	_, err := Load()
	require.Error(t, err)
}
