package engine

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/field"
)

// Option customizes an Engine at construction.
type Option func(*Engine)

// WithSeed makes the piece sequence reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand supplies the random source for the piece sequence.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithOnGameOver registers a callback fired once when the game ends.
func WithOnGameOver(fn func()) Option {
	return func(e *Engine) {
		e.onGameOver = fn
	}
}

// WithOnScoreChanged registers a callback fired once per lock that clears
// at least one row, with the new total and the points just added.
func WithOnScoreChanged(fn func(total, delta int)) Option {
	return func(e *Engine) {
		e.onScoreChanged = fn
	}
}

// WithField starts the game on a copy of f instead of an empty field. The
// dimensions must match the configuration.
func WithField(f *field.Field) Option {
	return func(e *Engine) {
		e.initial = f
	}
}
