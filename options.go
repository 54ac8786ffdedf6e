package cubesim

import (
	"io"
	"log/slog"

	"github.com/SeamusWaldron/cubesim/internal/cube"
)

// Rand is a source of scramble draws. *math/rand/v2.Rand satisfies it.
type Rand = cube.Rand

// Option configures Scramble and Session behavior.
type Option func(*config)

type config struct {
	logger      *slog.Logger
	rng         Rand
	seed        uint64
	seeded      bool
	strict      bool
	moveHistory bool
}

func defaultConfig() *config {
	return &config{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		strict:      false,
		moveHistory: true,
	}
}

func newConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *config) scrambler() *cube.Scrambler {
	if c.rng != nil {
		return cube.NewScrambler(c.rng)
	}
	if c.seeded {
		return cube.NewSeededScrambler(c.seed)
	}
	return cube.NewScrambler(nil)
}

// WithLogger sets the logger a Session reports to. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRand sets the source of scramble draws. It takes precedence over
// WithSeed.
func WithRand(r Rand) Option {
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed makes scrambles reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithStrict makes Session.Move reject unknown tokens with ErrInvalidMove.
// When disabled (default), unknown tokens are ignored.
func WithStrict(enabled bool) Option {
	return func(c *config) {
		c.strict = enabled
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), all moves are stored and accessible via History().
// Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}
