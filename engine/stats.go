package engine

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/piece"
)

// Stats summarizes a game so far.
type Stats struct {
	Ticks  int64
	Locks  int
	Holds  int
	Pieces int

	// Spawned counts pieces entering play per kind, including holds.
	Spawned map[piece.Kind]int

	// Clears maps rows-cleared-at-once to the number of such locks.
	Clears map[int]int
}

type stats struct {
	ticks   int64
	locks   int
	holds   int
	pieces  int
	spawned *intmap.Map[piece.Kind, int]
	clears  *intmap.Map[int, int]
}

func newStats() *stats {
	return &stats{
		spawned: intmap.New[piece.Kind, int](piece.KindCount),
		clears:  intmap.New[int, int](4),
	}
}

func (s *stats) recordSpawn(k piece.Kind) {
	s.pieces++
	n, _ := s.spawned.Get(k)
	s.spawned.Put(k, n+1)
}

func (s *stats) recordClear(rows int) {
	n, _ := s.clears.Get(rows)
	s.clears.Put(rows, n+1)
}

func (s *stats) snapshot(maxClear int) Stats {
	out := Stats{
		Ticks:   s.ticks,
		Locks:   s.locks,
		Holds:   s.holds,
		Pieces:  s.pieces,
		Spawned: make(map[piece.Kind]int, piece.KindCount),
		Clears:  make(map[int]int),
	}

	for _, k := range piece.Kinds() {
		if n, ok := s.spawned.Get(k); ok {
			out.Spawned[k] = n
		}
	}
	for rows := 1; rows <= maxClear; rows++ {
		if n, ok := s.clears.Get(rows); ok {
			out.Clears[rows] = n
		}
	}

	return out
}

// Stats returns a copy of the game statistics.
func (e *Engine) Stats() Stats {
	return e.stats.snapshot(e.catalog.MaxExtent())
}
