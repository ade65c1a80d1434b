package driver

import (
	"github.com/plus3/blockfall/engine"
)

// Option customizes a Driver at construction.
type Option func(*Driver)

// WithSeed makes every game reproducible. Game n (counting from zero) is
// seeded with seed+n.
func WithSeed(seed uint64) Option {
	return func(d *Driver) {
		d.seed = seed
		d.seeded = true
	}
}

// WithEngineOptions passes extra options to every engine the driver builds.
// Callback options are overridden by the driver's own hooks.
func WithEngineOptions(opts ...engine.Option) Option {
	return func(d *Driver) {
		d.engineOpts = append(d.engineOpts, opts...)
	}
}

// WithOnGameOver registers a hook that receives the final snapshot of each
// game. Hooks run after the driver lock is released.
func WithOnGameOver(fn func(engine.Snapshot)) Option {
	return func(d *Driver) {
		d.onGameOver = fn
	}
}

// WithOnScoreChanged registers a hook fired on every scoring lock.
func WithOnScoreChanged(fn func(total, delta int)) Option {
	return func(d *Driver) {
		d.onScoreChanged = fn
	}
}
