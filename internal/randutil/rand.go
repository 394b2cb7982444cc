// Package randutil builds reproducible random sources.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// A zero seed draws one from the wall clock, so callers can pass an unset
// config value straight through.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Uniform draws integers uniformly from inclusive ranges.
type Uniform struct {
	rng *rand.Rand
}

// NewUniform returns a Uniform seeded like New.
func NewUniform(seed int64) *Uniform {
	return &Uniform{rng: New(seed)}
}

// IntRange returns a uniformly distributed integer in [lo, hi]. If hi is
// below lo it returns lo.
func (u *Uniform) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + u.rng.IntN(hi-lo+1)
}
