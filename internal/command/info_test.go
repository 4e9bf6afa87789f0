package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hatysa/internal/version"
)

func TestInfoReportsVersionAndUptime(t *testing.T) {
	start := time.Now().Add(-90 * time.Second)

	resp, err := NewInfo(start).Run(context.Background(), "")
	require.NoError(t, err)

	info, ok := resp.(Info)
	require.True(t, ok)
	require.Equal(t, version.Version, info.Version)
	require.Equal(t, version.Homepage, info.Homepage)
	require.GreaterOrEqual(t, info.Uptime, 90*time.Second)
	require.Less(t, info.Uptime, 2*time.Minute)
}

func TestPing(t *testing.T) {
	resp, err := PingCommand{}.Run(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, Text{Content: PongReply}, resp)
}
