package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClap(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"three words", "a b c", "a 👏 b 👏 c 👏"},
		{"single word", "hello", "hello 👏"},
		{"empty input", "", "👏"},
		{"collapses runs of whitespace", "a  b\tc", "a 👏 b 👏 c 👏"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := ClapCommand{}.Run(context.Background(), tt.input)
			require.NoError(t, err)
			require.Equal(t, Text{Content: tt.want}, resp)
		})
	}
}
