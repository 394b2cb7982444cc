// Package sampler picks one action per combo from a mixed strategy, so a
// range can be shown as a single concrete decision per hand.
package sampler

import (
	"maps"
	"math"
	"slices"
)

// NoAction is returned when a draw falls outside every cumulative bucket.
// Display code treats it like action 0.
const NoAction = -1

// IntSource draws uniformly distributed integers from an inclusive range.
// Implementations decide how to seed themselves; tests supply fixed
// sequences.
type IntSource interface {
	IntRange(lo, hi int) int
}

// Resolve selects an action index in proportion to weights.
//
// The draw is an integer in [max(1, ceil(min(weights))), floor(sum(weights))]
// and the result is the first index i with cum[i-1] < draw <= cum[i]. The
// lower bound is the smallest weight rather than 1, which skews selection
// when every weight is above 1; callers depend on that distribution.
//
// weights must hold at least one positive entry and no negative ones.
func Resolve(weights []float64, rng IntSource) int {
	if len(weights) == 0 {
		return NoAction
	}

	cumulative := make([]float64, len(weights))
	total := 0.0
	lowest := weights[0]
	for i, w := range weights {
		total += w
		cumulative[i] = total
		lowest = min(lowest, w)
	}

	lo := max(1, int(math.Ceil(lowest)))
	hi := int(math.Floor(total))
	draw := float64(rng.IntRange(lo, hi))

	prev := 0.0
	for i, c := range cumulative {
		if draw <= c && draw > prev {
			return i
		}
		prev = c
	}
	return NoAction
}

// Sample maps combo labels to the action index chosen for them.
type Sample map[string]int

// Action returns the action to display for combo: the sampled index, or 0
// when the combo was not sampled or matched no bucket.
func (s Sample) Action(combo string) int {
	idx, ok := s[combo]
	if !ok || idx == NoAction {
		return 0
	}
	return idx
}

// ResolveSample resolves every combo independently with a fresh draw.
// Combos are drawn in sorted label order so a seeded source reproduces
// the same sample.
func ResolveSample(combos map[string][]float64, rng IntSource) Sample {
	sample := make(Sample, len(combos))
	for _, combo := range slices.Sorted(maps.Keys(combos)) {
		sample[combo] = Resolve(combos[combo], rng)
	}
	return sample
}
