// Package bag implements the 7-bag piece randomizer: each run of seven draws
// that starts on a bag boundary contains every kind exactly once.
package bag

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/piece"
)

// Sequencer produces an unending sequence of piece kinds. It keeps at least
// one full bag queued so callers can always peek seven kinds ahead.
type Sequencer struct {
	rng   *rand.Rand
	queue []piece.Kind
	bags  int
}

// New creates a sequencer drawing randomness from rng and seeds it with two
// shuffled bags.
func New(rng *rand.Rand) *Sequencer {
	s := &Sequencer{
		rng:   rng,
		queue: make([]piece.Kind, 0, 2*piece.KindCount),
	}
	s.refill()
	s.refill()
	return s
}

// Next removes and returns the front of the queue, appending a fresh bag
// once fewer than seven kinds remain.
func (s *Sequencer) Next() piece.Kind {
	k := s.queue[0]
	s.queue = s.queue[1:]
	if len(s.queue) < piece.KindCount {
		s.refill()
	}
	return k
}

// Peek returns a copy of the next n kinds without consuming them. n is
// clamped to the queued supply, which is never less than seven.
func (s *Sequencer) Peek(n int) []piece.Kind {
	n = max(0, min(n, len(s.queue)))
	out := make([]piece.Kind, n)
	copy(out, s.queue)
	return out
}

// Len returns the number of queued kinds.
func (s *Sequencer) Len() int {
	return len(s.queue)
}

// Bags returns how many bags have been generated so far.
func (s *Sequencer) Bags() int {
	return s.bags
}

func (s *Sequencer) refill() {
	s.queue = append(s.queue, Shuffle(s.rng, piece.Kinds())...)
	s.bags++
}

// Shuffle permutes kinds in place with Fisher-Yates and returns it.
func Shuffle(rng *rand.Rand, kinds []piece.Kind) []piece.Kind {
	for i := len(kinds) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		kinds[i], kinds[j] = kinds[j], kinds[i]
	}
	return kinds
}
