// Package field implements the settled-cell grid of a falling-block game:
// placement testing, locking a piece into the grid, and clearing full rows.
package field

import (
	"errors"
	"fmt"
	"strings"

	"github.com/plus3/blockfall/piece"
)

var ErrInvalidDimensions = errors.New("invalid field dimensions")

// Position is the grid offset of a shape's bounding-box top-left corner.
type Position struct {
	Row int
	Col int
}

// Add returns p shifted by the given row and column deltas.
func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Field is a fixed-size grid of cells, each empty (piece.KindNone) or holding
// the kind of the piece that settled there. Dimensions never change.
type Field struct {
	rows  int
	cols  int
	cells []piece.Kind
}

// New creates an empty field with the given dimensions.
func New(rows, cols int) (*Field, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Field{
		rows:  rows,
		cols:  cols,
		cells: make([]piece.Kind, rows*cols),
	}, nil
}

// Rows returns the field height.
func (f *Field) Rows() int { return f.rows }

// Cols returns the field width.
func (f *Field) Cols() int { return f.cols }

// InBounds reports whether (row, col) lies inside the grid.
func (f *Field) InBounds(row, col int) bool {
	return row >= 0 && row < f.rows && col >= 0 && col < f.cols
}

// At returns the cell at (row, col), or KindNone when out of bounds.
func (f *Field) At(row, col int) piece.Kind {
	if !f.InBounds(row, col) {
		return piece.KindNone
	}
	return f.cells[row*f.cols+col]
}

// Set writes a single cell. Out-of-bounds writes are ignored.
func (f *Field) Set(row, col int, k piece.Kind) {
	if !f.InBounds(row, col) {
		return
	}
	f.cells[row*f.cols+col] = k
}

// CanPlace reports whether every occupied cell of shape, offset by pos, lies
// inside the grid on an empty cell.
func (f *Field) CanPlace(shape piece.Shape, pos Position) bool {
	for r, c := range shape.Cells() {
		row, col := pos.Row+r, pos.Col+c
		if !f.InBounds(row, col) {
			return false
		}
		if f.cells[row*f.cols+col] != piece.KindNone {
			return false
		}
	}
	return true
}

// Lock writes kind into every cell covered by shape at pos. It does not
// re-check placement; callers must have verified CanPlace.
func (f *Field) Lock(shape piece.Shape, pos Position, kind piece.Kind) {
	for r, c := range shape.Cells() {
		f.cells[(pos.Row+r)*f.cols+pos.Col+c] = kind
	}
}

// IsRowFull reports whether every cell of row is occupied.
func (f *Field) IsRowFull(row int) bool {
	if row < 0 || row >= f.rows {
		return false
	}
	for _, k := range f.cells[row*f.cols : (row+1)*f.cols] {
		if k == piece.KindNone {
			return false
		}
	}
	return true
}

// FullRows returns the indices of full rows, bottom first.
func (f *Field) FullRows() []int {
	var rows []int
	for row := f.rows - 1; row >= 0; row-- {
		if f.IsRowFull(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

// ClearFullRows returns a compacted copy of the field with every full row
// removed and the number of rows removed. Surviving rows keep their order and
// settle to the bottom; vacated rows at the top are empty. The receiver is
// left unchanged.
func (f *Field) ClearFullRows() (*Field, int) {
	out := &Field{
		rows:  f.rows,
		cols:  f.cols,
		cells: make([]piece.Kind, len(f.cells)),
	}

	cleared := 0
	dst := f.rows - 1
	for row := f.rows - 1; row >= 0; row-- {
		if f.IsRowFull(row) {
			cleared++
			continue
		}
		copy(out.cells[dst*f.cols:(dst+1)*f.cols], f.cells[row*f.cols:(row+1)*f.cols])
		dst--
	}

	return out, cleared
}

// Clone returns an independent copy of the field.
func (f *Field) Clone() *Field {
	out := &Field{rows: f.rows, cols: f.cols, cells: make([]piece.Kind, len(f.cells))}
	copy(out.cells, f.cells)
	return out
}

// Grid returns a row-major copy of the cells.
func (f *Field) Grid() [][]piece.Kind {
	grid := make([][]piece.Kind, f.rows)
	for row := range grid {
		grid[row] = make([]piece.Kind, f.cols)
		copy(grid[row], f.cells[row*f.cols:(row+1)*f.cols])
	}
	return grid
}

// Count returns the number of occupied cells.
func (f *Field) Count() int {
	n := 0
	for _, k := range f.cells {
		if k != piece.KindNone {
			n++
		}
	}
	return n
}

// String renders occupied cells by kind letter and empty cells as '.'.
func (f *Field) String() string {
	var b strings.Builder
	for row := 0; row < f.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, k := range f.cells[row*f.cols : (row+1)*f.cols] {
			if k == piece.KindNone {
				b.WriteByte('.')
			} else {
				b.WriteString(k.String())
			}
		}
	}
	return b.String()
}
