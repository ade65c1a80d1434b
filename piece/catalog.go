// Package piece defines the seven standard falling-block pieces, their
// shapes, and the rotation rule that turns one shape into the next.
package piece

import (
	"errors"
	"fmt"
	"image/color"
)

var ErrInvalidCatalog = errors.New("invalid piece catalog")

// CellsPerPiece is the occupied-cell count every catalog shape must have.
const CellsPerPiece = 4

// Definition is an immutable catalog entry.
type Definition struct {
	Kind  Kind
	Name  string
	Shape Shape
	Color color.RGBA
}

// Catalog holds exactly one Definition per playable kind.
type Catalog struct {
	defs [KindCount]Definition
}

// NewCatalog validates the definitions and builds a Catalog from them. Every
// playable kind must appear exactly once with a four-cell shape.
func NewCatalog(defs ...Definition) (*Catalog, error) {
	if len(defs) != KindCount {
		return nil, fmt.Errorf("%w: got %d definitions, want %d", ErrInvalidCatalog, len(defs), KindCount)
	}

	c := &Catalog{}
	var seen [KindCount]bool
	for _, def := range defs {
		if !def.Kind.Valid() {
			return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidCatalog, def.Kind)
		}
		idx := def.Kind - KindI
		if seen[idx] {
			return nil, fmt.Errorf("%w: duplicate kind %s", ErrInvalidCatalog, def.Kind)
		}
		if def.Shape.rows == 0 {
			return nil, fmt.Errorf("%w: kind %s has no shape", ErrInvalidCatalog, def.Kind)
		}
		if n := def.Shape.Count(); n != CellsPerPiece {
			return nil, fmt.Errorf("%w: kind %s has %d cells, want %d", ErrInvalidCatalog, def.Kind, n, CellsPerPiece)
		}
		seen[idx] = true
		c.defs[idx] = def
	}

	return c, nil
}

// Get returns the definition for k. It panics if k is not a playable kind.
func (c *Catalog) Get(k Kind) Definition {
	if !k.Valid() {
		panic("piece: no definition for kind " + k.String())
	}
	return c.defs[k-KindI]
}

// Shape returns the canonical (spawn) orientation of k.
func (c *Catalog) Shape(k Kind) Shape {
	return c.Get(k).Shape
}

// Color returns the display color of k, or transparent black for KindNone.
func (c *Catalog) Color(k Kind) color.RGBA {
	if !k.Valid() {
		return color.RGBA{}
	}
	return c.defs[k-KindI].Color
}

// Definitions returns all entries in catalog order.
func (c *Catalog) Definitions() []Definition {
	out := make([]Definition, KindCount)
	copy(out, c.defs[:])
	return out
}

// MaxExtent returns the largest bounding-box dimension across all kinds.
// Since rotation swaps width and height, a field must be at least this large
// in both directions to host every orientation.
func (c *Catalog) MaxExtent() int {
	extent := 0
	for _, def := range c.defs {
		extent = max(extent, def.Shape.rows, def.Shape.cols)
	}
	return extent
}

var standard = func() *Catalog {
	c, err := NewCatalog(
		Definition{Kind: KindI, Name: "I", Shape: MustShape("####"), Color: color.RGBA{0x00, 0xff, 0xff, 0xff}},
		Definition{Kind: KindJ, Name: "J", Shape: MustShape("#..", "###"), Color: color.RGBA{0x00, 0x00, 0xff, 0xff}},
		Definition{Kind: KindL, Name: "L", Shape: MustShape("..#", "###"), Color: color.RGBA{0xff, 0xa5, 0x00, 0xff}},
		Definition{Kind: KindO, Name: "O", Shape: MustShape("##", "##"), Color: color.RGBA{0xff, 0xff, 0x00, 0xff}},
		Definition{Kind: KindS, Name: "S", Shape: MustShape(".##", "##."), Color: color.RGBA{0x00, 0x80, 0x00, 0xff}},
		Definition{Kind: KindT, Name: "T", Shape: MustShape(".#.", "###"), Color: color.RGBA{0x80, 0x00, 0x80, 0xff}},
		Definition{Kind: KindZ, Name: "Z", Shape: MustShape("##.", ".##"), Color: color.RGBA{0xff, 0x00, 0x00, 0xff}},
	)
	if err != nil {
		panic(err)
	}
	return c
}()

// Standard returns the built-in catalog. It is shared and never modified.
func Standard() *Catalog {
	return standard
}
