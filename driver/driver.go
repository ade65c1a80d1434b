// Package driver runs an engine in real time. A Driver serializes commands
// from input handlers with gravity ticks from its own timer, restarts games,
// and collects timing and input statistics. All methods are safe for
// concurrent use.
package driver

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/piece"
)

// Driver owns one engine at a time and replaces it on restart.
type Driver struct {
	mu     sync.Mutex
	cfg    engine.Config
	logger *slog.Logger

	seed       uint64
	seeded     bool
	engineOpts []engine.Option

	engine *engine.Engine
	game   int
	stats  *statsInternal

	// reset restarts the gravity period. Buffered so senders never block.
	reset chan struct{}

	// pending holds hook calls raised under the lock.
	pending []func()

	onGameOver     func(engine.Snapshot)
	onScoreChanged func(total, delta int)
}

// New validates cfg, builds the first engine, and starts its game. Gravity
// does not advance until Run is called or Tick is called directly.
func New(cfg engine.Config, logger *slog.Logger, opts ...Option) (*Driver, error) {
	if logger == nil {
		logger = slog.Default()
	}

	d := &Driver{
		cfg:    cfg,
		logger: logger.With("component", "driver"),
		stats:  newStatsInternal(),
		reset:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(d)
	}

	if err := d.newGame(); err != nil {
		return nil, err
	}
	d.flushPending()

	return d, nil
}

// newGame replaces the engine and starts it. Callers hold d.mu, except New.
func (d *Driver) newGame() error {
	seed := rand.Uint64()
	if d.seeded {
		seed = d.seed + uint64(d.game)
	}

	opts := append([]engine.Option{}, d.engineOpts...)
	opts = append(opts,
		engine.WithSeed(seed),
		engine.WithOnGameOver(d.handleGameOver),
		engine.WithOnScoreChanged(d.handleScoreChanged),
	)

	e, err := engine.New(d.cfg, opts...)
	if err != nil {
		return err
	}

	d.engine = e
	d.logger.Info("game started", "game", d.game, "seed", seed,
		"rows", d.cfg.Rows, "columns", d.cfg.Columns)
	e.Start()

	return nil
}

func (d *Driver) handleGameOver() {
	snap := d.engine.Snapshot()
	d.logger.Info("game over", "game", d.game, "score", snap.Score,
		"lines", snap.Lines, "pieces", snap.Stats.Pieces)

	if d.onGameOver != nil {
		d.pending = append(d.pending, func() { d.onGameOver(snap) })
	}
}

func (d *Driver) handleScoreChanged(total, delta int) {
	d.logger.Debug("rows cleared", "game", d.game, "points", delta, "score", total)

	if d.onScoreChanged != nil {
		d.pending = append(d.pending, func() { d.onScoreChanged(total, delta) })
	}
}

// Run fires gravity ticks every cfg.TickInterval() until ctx is cancelled.
// The period restarts after a resume, hard drop, hold, or restart so the
// new piece always gets a full interval before it falls.
func (d *Driver) Run(ctx context.Context) {
	interval := d.cfg.TickInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.logger.Info("driver running", "interval", interval)

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("driver stopped", "reason", context.Cause(ctx))
			return
		case <-d.reset:
			ticker.Reset(interval)
		case <-ticker.C:
			d.Tick()
		}
	}
}

// Tick applies one gravity step. It reports whether the piece descended.
// Ticks while paused or after game over are ignored and not timed.
func (d *Driver) Tick() bool {
	d.mu.Lock()

	var moved bool
	if d.engine.State() == engine.StateRunning {
		start := time.Now()
		moved = d.engine.Tick()
		d.stats.recordTick(time.Since(start))
	}

	d.mu.Unlock()
	d.flushPending()

	return moved
}

// Apply routes one command to the engine and reports whether it was
// accepted.
func (d *Driver) Apply(cmd Command) bool {
	return d.applyAll([]Command{cmd}) == 1
}

// Restart abandons the current game and starts a new one.
func (d *Driver) Restart() {
	d.Apply(CommandRestart)
}

func (d *Driver) applyAll(cmds []Command) int {
	if len(cmds) == 0 {
		return 0
	}

	d.mu.Lock()
	accepted := 0
	for _, cmd := range cmds {
		ok := d.apply(cmd)
		d.stats.recordCommand(cmd, ok)
		if ok {
			accepted++
		}
	}
	d.mu.Unlock()
	d.flushPending()

	return accepted
}

func (d *Driver) apply(cmd Command) bool {
	e := d.engine

	switch cmd {
	case CommandMoveLeft:
		return e.MoveLeft()
	case CommandMoveRight:
		return e.MoveRight()
	case CommandSoftDrop:
		return e.SoftDrop()
	case CommandRotateCW:
		return e.Rotate(piece.Clockwise)
	case CommandRotateCCW:
		return e.Rotate(piece.CounterClockwise)
	case CommandHardDrop:
		_, ok := e.HardDrop()
		if ok {
			d.resetGravity()
		}
		return ok
	case CommandHold:
		ok := e.Hold()
		if ok {
			d.resetGravity()
		}
		return ok
	case CommandPause:
		if !e.TogglePause() {
			return false
		}
		if e.Paused() {
			d.logger.Info("game paused", "game", d.game)
		} else {
			d.logger.Info("game resumed", "game", d.game)
			d.resetGravity()
		}
		return true
	case CommandRestart:
		d.logger.Info("game restarting", "game", d.game, "score", e.Score())
		d.game++
		if err := d.newGame(); err != nil {
			// the config was validated by New
			panic(err)
		}
		d.resetGravity()
		return true
	default:
		return false
	}
}

func (d *Driver) resetGravity() {
	select {
	case d.reset <- struct{}{}:
	default:
	}
}

func (d *Driver) flushPending() {
	d.mu.Lock()
	pending := d.pending
	d.pending = nil
	d.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
}

// Snapshot returns a deep copy of the current game.
func (d *Driver) Snapshot() engine.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.engine.Snapshot()
}

// Stats returns driver statistics with the current game's engine stats.
func (d *Driver) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := d.stats.snapshot()
	s.Game = d.game
	s.Engine = d.engine.Stats()
	return s
}

// Game returns the zero-based index of the current game.
func (d *Driver) Game() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.game
}

// Config returns the engine configuration every game is built with.
func (d *Driver) Config() engine.Config {
	return d.cfg
}
