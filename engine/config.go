package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/piece"
)

var (
	ErrInvalidDropSpeed = errors.New("drop speed must be positive")
	ErrInvalidPreview   = errors.New("preview length out of range")
	ErrShapeTooLarge    = errors.New("piece shape does not fit the field")
	ErrFieldMismatch    = errors.New("field dimensions do not match config")
)

// Config is fixed for the lifetime of an Engine.
type Config struct {
	Rows    int
	Columns int

	// DropSpeed is the number of gravity ticks per second.
	DropSpeed float64

	// Preview is how many upcoming kinds Snapshot reports.
	Preview int

	// Catalog defaults to piece.Standard() when nil.
	Catalog *piece.Catalog

	// StrictSpawn ends the game as soon as a new piece spawns onto occupied
	// cells. When false, game over is detected on the first failed downward
	// step from the spawn row.
	StrictSpawn bool

	// HoldOncePerLock allows at most one hold between two locks.
	HoldOncePerLock bool
}

// DefaultConfig returns a 20x10 field with two gravity ticks per second.
func DefaultConfig() Config {
	return Config{
		Rows:      20,
		Columns:   10,
		DropSpeed: 2,
		Preview:   5,
		Catalog:   piece.Standard(),
	}
}

// Validate reports configuration errors. Every piece must fit the field in
// every orientation.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Columns <= 0 {
		return fmt.Errorf("%w: %dx%d", field.ErrInvalidDimensions, c.Rows, c.Columns)
	}
	if c.DropSpeed <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDropSpeed, c.DropSpeed)
	}
	if c.Preview < 0 || c.Preview > piece.KindCount {
		return fmt.Errorf("%w: %d (max %d)", ErrInvalidPreview, c.Preview, piece.KindCount)
	}

	extent := c.catalog().MaxExtent()
	if extent > c.Rows || extent > c.Columns {
		return fmt.Errorf("%w: largest piece spans %d cells, field is %dx%d", ErrShapeTooLarge, extent, c.Rows, c.Columns)
	}

	return nil
}

// TickInterval is the gravity period, 1/DropSpeed seconds.
func (c Config) TickInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.DropSpeed)
}

func (c Config) catalog() *piece.Catalog {
	if c.Catalog == nil {
		return piece.Standard()
	}
	return c.Catalog
}
