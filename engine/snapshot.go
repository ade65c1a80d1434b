package engine

import (
	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/piece"
)

// Snapshot is a deep copy of everything a renderer needs. It shares nothing
// mutable with the engine and may be read from another goroutine.
type Snapshot struct {
	State  State
	Rows   int
	Cols   int
	Field  [][]piece.Kind
	Active ActivePiece

	// HasActive is false before Start.
	HasActive bool
	Ghost     field.Position

	Held  piece.Kind
	Next  []piece.Kind
	Score int
	Lines int
	Stats Stats
}

// Paused reports whether the snapshot was taken while paused.
func (s Snapshot) Paused() bool { return s.State == StatePaused }

// GameOver reports whether the snapshot was taken after the game ended.
func (s Snapshot) GameOver() bool { return s.State == StateGameOver }

// Snapshot captures the current read surface.
func (e *Engine) Snapshot() Snapshot {
	active, ok := e.Active()

	return Snapshot{
		State:     e.state,
		Rows:      e.cfg.Rows,
		Cols:      e.cfg.Columns,
		Field:     e.field.Grid(),
		Active:    active,
		HasActive: ok,
		Ghost:     field.Position{Row: e.GhostRow(), Col: active.Position.Col},
		Held:      e.held,
		Next:      e.seq.Peek(e.cfg.Preview),
		Score:     e.score,
		Lines:     e.lines,
		Stats:     e.Stats(),
	}
}
