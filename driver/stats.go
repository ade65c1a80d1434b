package driver

import (
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/engine"
)

// Stats provides statistics about driver execution across all games.
type Stats struct {
	// Game is the zero-based index of the current game.
	Game int

	Ticks        int64
	MinDuration  time.Duration
	MaxDuration  time.Duration
	AvgDuration  time.Duration
	LastDuration time.Duration

	// Commands counts accepted commands by type.
	Commands map[Command]int64
	Rejected int64

	// Engine holds the statistics of the current game only.
	Engine engine.Stats
}

type statsInternal struct {
	ticks         int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
	accepted      *intmap.Map[Command, int64]
	rejected      int64
}

func newStatsInternal() *statsInternal {
	return &statsInternal{
		minDuration: time.Duration(1<<63 - 1),
		accepted:    intmap.New[Command, int64](commandCount),
	}
}

func (s *statsInternal) recordTick(d time.Duration) {
	s.ticks++
	s.lastDuration = d
	s.totalDuration += d
	if d < s.minDuration {
		s.minDuration = d
	}
	if d > s.maxDuration {
		s.maxDuration = d
	}
}

func (s *statsInternal) recordCommand(cmd Command, ok bool) {
	if !ok {
		s.rejected++
		return
	}
	n, _ := s.accepted.Get(cmd)
	s.accepted.Put(cmd, n+1)
}

func (s *statsInternal) snapshot() Stats {
	out := Stats{
		Ticks:        s.ticks,
		MaxDuration:  s.maxDuration,
		LastDuration: s.lastDuration,
		Commands:     make(map[Command]int64, s.accepted.Len()),
		Rejected:     s.rejected,
	}
	if s.ticks > 0 {
		out.MinDuration = s.minDuration
		out.AvgDuration = s.totalDuration / time.Duration(s.ticks)
	}
	for _, cmd := range AllCommands() {
		if n, ok := s.accepted.Get(cmd); ok {
			out.Commands[cmd] = n
		}
	}
	return out
}
