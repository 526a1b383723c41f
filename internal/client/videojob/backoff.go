package videojob

import (
	"math/rand/v2"
	"time"
)

// Default polling schedule
const (
	DefaultInitialDelay = 2 * time.Second
	DefaultMaxDelay     = 15 * time.Second
	DefaultFactor       = 1.5
	DefaultMaxJitter    = 500 * time.Millisecond
)

// Backoff is a capped multiplicative delay with additive jitter.
// It is not safe for concurrent use.
type Backoff struct {
	Initial   time.Duration
	Max       time.Duration
	Factor    float64
	MaxJitter time.Duration

	current time.Duration
	// jitter returns a value in [0, n); replaced in tests
	jitter func(n int64) int64
}

// NewBackoff returns the default schedule: 2s growing x1.5 up to 15s, plus up to 500ms jitter
func NewBackoff() *Backoff {
	return &Backoff{
		Initial:   DefaultInitialDelay,
		Max:       DefaultMaxDelay,
		Factor:    DefaultFactor,
		MaxJitter: DefaultMaxJitter,
	}
}

// Current is the delay used after a failed poll
func (b *Backoff) Current() time.Duration {
	if b.current == 0 {
		b.current = b.Initial
	}
	return b.current
}

// Next grows the delay and returns it with jitter added
func (b *Backoff) Next() time.Duration {
	grown := time.Duration(float64(b.Current()) * b.Factor)
	if grown > b.Max {
		grown = b.Max
	}
	b.current = grown
	return grown + b.randomJitter()
}

// Reset goes back to the initial delay
func (b *Backoff) Reset() {
	b.current = b.Initial
}

func (b *Backoff) randomJitter() time.Duration {
	if b.MaxJitter <= 0 {
		return 0
	}
	draw := rand.Int64N
	if b.jitter != nil {
		draw = b.jitter
	}
	return time.Duration(draw(int64(b.MaxJitter)))
}
