package command

import (
	"context"
	"math/rand"
	"strings"
	"sync"
)

const (
	zalgoMarkLo = 0x0300 // combining diacritical marks block
	zalgoMarkHi = 0x036f
	zalgoMarks  = 10 // marks appended per input rune
)

// ZalgoCommand corrupts text with random combining diacritical marks. The
// random source is injected so tests can fix the seed; a mutex guards it
// because handlers run concurrently.
type ZalgoCommand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewZalgo(seed int64) *ZalgoCommand {
	return &ZalgoCommand{rng: rand.New(rand.NewSource(seed))}
}

func (*ZalgoCommand) Name() string      { return "zalgo" }
func (*ZalgoCommand) Aliases() []string { return nil }
func (*ZalgoCommand) Description() string {
	return "H̛̹͝e̳̼͙ ̤̎͝c͓̺̎ȏ͇ͤm̨͡͠e͚ͫ͡s͗ͭ͢"
}

// Run keeps every input rune in order and appends zalgoMarks random combining
// marks after each one, so the output is never shorter than the input. Empty
// input is rejected rather than sent as an empty message.
func (z *ZalgoCommand) Run(_ context.Context, input string) (Response, error) {
	if input == "" {
		return nil, Validationf("no text provided")
	}

	z.mu.Lock()
	defer z.mu.Unlock()

	var b strings.Builder
	for _, r := range input {
		b.WriteRune(r)
		for i := 0; i < zalgoMarks; i++ {
			b.WriteRune(rune(zalgoMarkLo + z.rng.Intn(zalgoMarkHi-zalgoMarkLo)))
		}
	}

	return Text{Content: b.String()}, nil
}
