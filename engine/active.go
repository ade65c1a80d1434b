package engine

import (
	"iter"

	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/piece"
)

// SpawnRow is the row every new piece starts on.
const SpawnRow = 0

// ActivePiece is the falling piece: its kind, current orientation, and
// position. Rotation counts clockwise quarter turns from the spawn
// orientation, modulo 4.
type ActivePiece struct {
	Kind     piece.Kind
	Shape    piece.Shape
	Position field.Position
	Rotation int
}

// SpawnPosition centres shape horizontally on the spawn row.
func SpawnPosition(shape piece.Shape, cols int) field.Position {
	return field.Position{Row: SpawnRow, Col: (cols - shape.Cols()) / 2}
}

func newActivePiece(kind piece.Kind, shape piece.Shape, cols int) ActivePiece {
	return ActivePiece{
		Kind:     kind,
		Shape:    shape,
		Position: SpawnPosition(shape, cols),
	}
}

// Cells iterates the absolute field coordinates covered by the piece.
func (a ActivePiece) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for r, c := range a.Shape.Cells() {
			if !yield(a.Position.Row+r, a.Position.Col+c) {
				return
			}
		}
	}
}

// moved returns the piece shifted by the deltas if the field accepts it.
func (a ActivePiece) moved(f *field.Field, dRow, dCol int) (ActivePiece, bool) {
	pos := a.Position.Add(dRow, dCol)
	if !f.CanPlace(a.Shape, pos) {
		return a, false
	}
	a.Position = pos
	return a, true
}

// rotated turns the piece a quarter and clamps its position so the new
// bounding box lies inside the field. If the clamped placement collides the
// rotation is rejected and the piece is returned unchanged; no other offsets
// are tried.
func (a ActivePiece) rotated(f *field.Field, dir piece.Direction) (ActivePiece, bool) {
	shape := a.Shape.Rotate(dir)
	pos := clampPosition(a.Position, shape, f)
	if !f.CanPlace(shape, pos) {
		return a, false
	}

	turn := 1
	if dir == piece.CounterClockwise {
		turn = 3
	}

	return ActivePiece{
		Kind:     a.Kind,
		Shape:    shape,
		Position: pos,
		Rotation: (a.Rotation + turn) % 4,
	}, true
}

// dropRow returns the lowest row the piece can reach by falling straight
// down from its current position.
func (a ActivePiece) dropRow(f *field.Field) int {
	pos := a.Position
	for f.CanPlace(a.Shape, pos.Add(1, 0)) {
		pos.Row++
	}
	return pos.Row
}

func clampPosition(pos field.Position, shape piece.Shape, f *field.Field) field.Position {
	pos.Col = min(max(pos.Col, 0), f.Cols()-shape.Cols())
	pos.Row = min(max(pos.Row, 0), f.Rows()-shape.Rows())
	return pos
}
