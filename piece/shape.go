package piece

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var ErrInvalidShape = errors.New("invalid shape")

// Direction selects the sense of a quarter turn.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// Shape is an immutable rectangular occupancy matrix describing which cells
// of a piece's bounding box are filled. Methods never modify the receiver.
type Shape struct {
	rows  int
	cols  int
	cells []bool
}

// NewShape builds a Shape from a row-major matrix. The matrix must be
// non-empty, rectangular, and contain at least one filled cell.
func NewShape(matrix [][]bool) (Shape, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return Shape{}, fmt.Errorf("%w: empty matrix", ErrInvalidShape)
	}

	rows, cols := len(matrix), len(matrix[0])
	cells := make([]bool, 0, rows*cols)
	filled := 0
	for r, row := range matrix {
		if len(row) != cols {
			return Shape{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidShape, r, len(row), cols)
		}
		for _, v := range row {
			if v {
				filled++
			}
			cells = append(cells, v)
		}
	}

	if filled == 0 {
		return Shape{}, fmt.Errorf("%w: no filled cells", ErrInvalidShape)
	}

	return Shape{rows: rows, cols: cols, cells: cells}, nil
}

// MustShape is like NewShape but takes rows of '#' (filled) and '.' (empty)
// and panics on invalid input. It exists for built-in literal data.
func MustShape(rows ...string) Shape {
	matrix := make([][]bool, len(rows))
	for i, row := range rows {
		matrix[i] = make([]bool, len(row))
		for j, ch := range row {
			matrix[i][j] = ch == '#'
		}
	}

	s, err := NewShape(matrix)
	if err != nil {
		panic(err)
	}
	return s
}

// Rows returns the bounding box height.
func (s Shape) Rows() int { return s.rows }

// Cols returns the bounding box width.
func (s Shape) Cols() int { return s.cols }

// Filled reports whether the cell at (r, c) is occupied. Out-of-range
// coordinates report false.
func (s Shape) Filled(r, c int) bool {
	if r < 0 || r >= s.rows || c < 0 || c >= s.cols {
		return false
	}
	return s.cells[r*s.cols+c]
}

// Count returns the number of occupied cells.
func (s Shape) Count() int {
	n := 0
	for _, v := range s.cells {
		if v {
			n++
		}
	}
	return n
}

// Cells iterates the (row, col) offsets of occupied cells in row-major order.
func (s Shape) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i, v := range s.cells {
			if !v {
				continue
			}
			if !yield(i/s.cols, i%s.cols) {
				return
			}
		}
	}
}

// Matrix returns a fresh row-major copy of the occupancy matrix.
func (s Shape) Matrix() [][]bool {
	matrix := make([][]bool, s.rows)
	for r := range matrix {
		matrix[r] = make([]bool, s.cols)
		copy(matrix[r], s.cells[r*s.cols:(r+1)*s.cols])
	}
	return matrix
}

// Equal reports whether both shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.rows != other.rows || s.cols != other.cols {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Rotate returns the shape turned a quarter in the given direction. An R x C
// shape becomes C x R; four turns in one direction restore the original.
func (s Shape) Rotate(dir Direction) Shape {
	rotated := Shape{
		rows:  s.cols,
		cols:  s.rows,
		cells: make([]bool, len(s.cells)),
	}

	for r := 0; r < rotated.rows; r++ {
		for c := 0; c < rotated.cols; c++ {
			var v bool
			if dir == Clockwise {
				// source columns become rows, read bottom-up
				v = s.cells[(s.rows-1-c)*s.cols+r]
			} else {
				v = s.cells[c*s.cols+(s.cols-1-r)]
			}
			rotated.cells[r*rotated.cols+c] = v
		}
	}

	return rotated
}

// String renders the shape as rows of '#' and '.' separated by newlines.
func (s Shape) String() string {
	var b strings.Builder
	for r := 0; r < s.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < s.cols; c++ {
			if s.cells[r*s.cols+c] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
