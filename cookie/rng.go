package cookie

import (
	"math/rand/v2"
	"time"
)

// RNG draws integers for fortune selection and lucky numbers.
type RNG interface {
	// IntRange returns a uniform integer in [lo, hi], inclusive on both ends.
	IntRange(lo, hi int) int
}

// RandSource is a thin wrapper around math/rand/v2 for deterministic seeding.
type RandSource struct {
	r *rand.Rand
}

// NewRandSource creates a deterministic source from seed.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewTimeSource creates a source seeded from the wall clock.
func NewTimeSource() *RandSource {
	return NewRandSource(time.Now().UnixNano())
}

func (s *RandSource) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.IntN(hi-lo+1)
}
