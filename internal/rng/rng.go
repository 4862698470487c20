// Package rng is the randomness capability shared by the assemblers.
// Every random decision (template pick, slot fill, ability replacement,
// tier draw, final shuffle) routes through a Source so tests can pin a
// seed or script the draws.
package rng

import (
	"math/rand"
	"time"
)

// Source supplies the two operations the assemblers need.
type Source interface {
	// Intn returns a uniform value in [0, n). n must be > 0.
	Intn(n int) int
	// Shuffle applies a uniform permutation via the swap function.
	Shuffle(n int, swap func(i, j int))
}

// New returns a seeded Source. Useful for reproducing a generation.
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewTime returns a Source seeded from the wall clock.
func NewTime() Source {
	return New(time.Now().UnixNano())
}

// Scripted is a Source that replays a fixed queue of Intn results and
// performs no shuffling. Once the queue is exhausted, every Intn
// returns 0 (the first option).
type Scripted struct {
	picks []int
	pos   int
}

// NewScripted builds a scripted source from the given Intn results.
func NewScripted(picks ...int) *Scripted {
	return &Scripted{picks: picks}
}

func (s *Scripted) Intn(n int) int {
	if s.pos >= len(s.picks) {
		return 0
	}
	v := s.picks[s.pos]
	s.pos++
	if v >= n {
		v = n - 1
	}
	return v
}

// Shuffle is a no-op, preserving input order for assertions.
func (s *Scripted) Shuffle(n int, swap func(i, j int)) {}
