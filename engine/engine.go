// Package engine is the authoritative rules model of a falling-block game.
// An Engine owns the field, the active piece, the piece sequencer, the hold
// slot, and the score, and exposes a synchronous command API. It has no
// internal locking; callers must apply commands one at a time.
package engine

import (
	"fmt"
	"math/rand/v2"

	"github.com/plus3/blockfall/bag"
	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/piece"
)

// State is the engine lifecycle stage.
type State int

const (
	StateReady State = iota
	StateRunning
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ScoreFor returns the points awarded for clearing n rows with one lock:
// 2^n * 100, so 200, 400, 800 and 1600 for one to four rows.
func ScoreFor(n int) int {
	if n <= 0 {
		return 0
	}
	return 100 << n
}

// Engine runs a single game. Once the game is over it cannot be resumed;
// construct a new Engine to play again.
type Engine struct {
	cfg     Config
	catalog *piece.Catalog
	rng     *rand.Rand

	field   *field.Field
	initial *field.Field
	seq     *bag.Sequencer
	active  ActivePiece
	held    piece.Kind

	holdUsed bool
	score    int
	lines    int
	state    State
	stats    *stats

	onGameOver     func()
	onScoreChanged func(total, delta int)
}

// New validates cfg and returns an engine in StateReady. Call Start to spawn
// the first piece.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	cfg.Catalog = cfg.catalog()

	f, err := field.New(cfg.Rows, cfg.Columns)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:     cfg,
		catalog: cfg.Catalog,
		field:   f,
		state:   StateReady,
		stats:   newStats(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.initial != nil {
		if e.initial.Rows() != cfg.Rows || e.initial.Cols() != cfg.Columns {
			return nil, fmt.Errorf("%w: got %dx%d, want %dx%d", ErrFieldMismatch,
				e.initial.Rows(), e.initial.Cols(), cfg.Rows, cfg.Columns)
		}
		e.field = e.initial.Clone()
		e.initial = nil
	}

	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	e.seq = bag.New(e.rng)

	return e, nil
}

// Start spawns the first piece and enters StateRunning. It is a no-op
// unless the engine is in StateReady.
func (e *Engine) Start() {
	if e.state != StateReady {
		return
	}
	e.state = StateRunning
	e.spawn(e.seq.Next())
}

// MoveLeft shifts the active piece one column left if the field allows it.
func (e *Engine) MoveLeft() bool {
	return e.shift(0, -1)
}

// MoveRight shifts the active piece one column right if the field allows it.
func (e *Engine) MoveRight() bool {
	return e.shift(0, 1)
}

// SoftDrop moves the active piece down one row. When the piece cannot
// descend it settles: it is locked, full rows are cleared, and the next
// piece spawns. It returns true only if the piece moved.
func (e *Engine) SoftDrop() bool {
	if e.state != StateRunning {
		return false
	}
	if e.shift(1, 0) {
		return true
	}
	e.settle()
	return false
}

// Tick is the gravity step. It behaves like SoftDrop and is inert while
// paused.
func (e *Engine) Tick() bool {
	if e.state != StateRunning {
		return false
	}
	e.stats.ticks++
	return e.SoftDrop()
}

// HardDrop drops the active piece as far as it can fall and settles it
// immediately. It returns the number of rows descended and whether the
// command was applied.
func (e *Engine) HardDrop() (int, bool) {
	if e.state != StateRunning {
		return 0, false
	}

	target := e.active.dropRow(e.field)
	rows := target - e.active.Position.Row
	e.active.Position.Row = target
	e.settle()

	return rows, true
}

// Rotate turns the active piece a quarter in dir. See ActivePiece for the
// clamp-and-test placement rule.
func (e *Engine) Rotate(dir piece.Direction) bool {
	if e.state != StateRunning {
		return false
	}

	next, ok := e.active.rotated(e.field, dir)
	if ok {
		e.active = next
	}
	return ok
}

// Hold sets the active kind aside. With an empty slot the next kind from the
// sequencer spawns; otherwise the held kind comes back in its spawn
// orientation at the spawn position.
func (e *Engine) Hold() bool {
	if e.state != StateRunning {
		return false
	}
	if e.cfg.HoldOncePerLock && e.holdUsed {
		return false
	}

	current := e.active.Kind
	next := e.held
	if next == piece.KindNone {
		next = e.seq.Next()
	}

	e.held = current
	e.holdUsed = true
	e.stats.holds++
	e.spawn(next)

	return true
}

// Pause suspends the game. Commands and ticks are inert until Resume.
func (e *Engine) Pause() bool {
	if e.state != StateRunning {
		return false
	}
	e.state = StatePaused
	return true
}

// Resume continues a paused game.
func (e *Engine) Resume() bool {
	if e.state != StatePaused {
		return false
	}
	e.state = StateRunning
	return true
}

// TogglePause pauses a running game or resumes a paused one.
func (e *Engine) TogglePause() bool {
	if e.state == StatePaused {
		return e.Resume()
	}
	return e.Pause()
}

func (e *Engine) shift(dRow, dCol int) bool {
	if e.state != StateRunning {
		return false
	}

	next, ok := e.active.moved(e.field, dRow, dCol)
	if ok {
		e.active = next
	}
	return ok
}

// settle resolves a piece that can no longer fall. A piece stuck on the
// spawn row ends the game without being written to the field.
func (e *Engine) settle() {
	if e.active.Position.Row == SpawnRow {
		e.endGame()
		return
	}

	e.field.Lock(e.active.Shape, e.active.Position, e.active.Kind)
	e.stats.locks++

	compacted, cleared := e.field.ClearFullRows()
	e.field = compacted
	if cleared > 0 {
		delta := ScoreFor(cleared)
		e.score += delta
		e.lines += cleared
		e.stats.recordClear(cleared)
		if e.onScoreChanged != nil {
			e.onScoreChanged(e.score, delta)
		}
	}

	e.holdUsed = false
	e.spawn(e.seq.Next())
}

func (e *Engine) spawn(kind piece.Kind) {
	e.active = newActivePiece(kind, e.catalog.Shape(kind), e.cfg.Columns)
	e.stats.recordSpawn(kind)

	if e.cfg.StrictSpawn && !e.field.CanPlace(e.active.Shape, e.active.Position) {
		e.endGame()
	}
}

func (e *Engine) endGame() {
	if e.state == StateGameOver {
		return
	}
	e.state = StateGameOver
	if e.onGameOver != nil {
		e.onGameOver()
	}
}

// State returns the lifecycle stage.
func (e *Engine) State() State { return e.state }

// Paused reports whether the game is paused.
func (e *Engine) Paused() bool { return e.state == StatePaused }

// GameOver reports whether the game has ended.
func (e *Engine) GameOver() bool { return e.state == StateGameOver }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Lines returns the total number of rows cleared.
func (e *Engine) Lines() int { return e.lines }

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Catalog returns the piece catalog in use.
func (e *Engine) Catalog() *piece.Catalog { return e.catalog }

// Active returns the falling piece. The second result is false before
// Start.
func (e *Engine) Active() (ActivePiece, bool) {
	return e.active, e.state != StateReady
}

// Held returns the kind in the hold slot, or KindNone when it is empty.
func (e *Engine) Held() piece.Kind { return e.held }

// Next returns up to n upcoming kinds without consuming them.
func (e *Engine) Next(n int) []piece.Kind { return e.seq.Peek(n) }

// Field returns a copy of the settled-cell grid.
func (e *Engine) Field() *field.Field { return e.field.Clone() }

// GhostRow returns the row a hard drop would land the active piece on, or
// SpawnRow before Start.
func (e *Engine) GhostRow() int {
	if e.state == StateReady {
		return SpawnRow
	}
	return e.active.dropRow(e.field)
}
