package notation

import (
	"github.com/lox/rangekit/poker"
)

// minNonPairRun is the shortest run of kickers under one anchor that is
// written as a range. Shorter runs stay as bare combos.
const minNonPairRun = 3

// lowestAnchor is the lowest high card whose kickers are grouped. Anchors
// below it have too few kickers to form a run worth compressing.
const lowestAnchor = poker.Eight

// ComboGroup is a run of combos with adjacent ranks, ordered from the
// highest combo to the lowest. Pair groups hold consecutive pairs; non-pair
// groups hold combos of one suit class sharing the same high card.
type ComboGroup []poker.Combo

// Notation renders the group in shorthand.
//
// Pairs: "TT+" when the run starts at AA, "99-66" otherwise.
// Non-pairs: "ATs+" when the run starts at the anchor's top kicker
// (AKs for aces, KQs for kings), "KJo-K8o" otherwise.
// A single combo renders as its bare label.
func (g ComboGroup) Notation() string {
	if len(g) == 0 {
		return ""
	}
	first, last := g[0], g[len(g)-1]
	if len(g) == 1 {
		return first.String()
	}

	if first.IsPair() {
		if first.High == poker.Ace {
			return last.String() + "+"
		}
		return first.String() + "-" + last.String()
	}

	if first.Low == first.High-1 {
		return last.String() + "+"
	}
	return first.String() + "-" + last.String()
}

// GroupPairs cuts the pairs in the set into maximal runs of consecutive
// ranks, highest run first. Every run is kept, including single pairs.
func GroupPairs(pairs ComboSet) []ComboGroup {
	var slots [poker.NumRanks]*poker.Combo
	for _, r := range poker.RanksDescending {
		c := poker.NewPair(r)
		if pairs.Has(c) {
			slots[r.Position()] = &c
		}
	}
	return runs(slots[:], 1)
}

// GroupNonPairs finds, for every anchor from ace down to eight, the runs of
// at least three consecutive kickers present in the set for the given suit
// class. Groups come back anchor by anchor, highest first. Combos not
// absorbed by a group are returned in matrix order as remaining.
func GroupNonPairs(combos ComboSet, class poker.SuitClass) (groups []ComboGroup, remaining []poker.Combo) {
	absorbed := ComboSet{}

	for anchor := poker.Ace; anchor >= lowestAnchor; anchor-- {
		// Kickers run from just below the anchor down to the deuce.
		slots := make([]*poker.Combo, 0, anchor)
		for kicker := anchor - 1; ; kicker-- {
			c := poker.NewCombo(anchor, kicker, class)
			if combos.Has(c) {
				slots = append(slots, &c)
			} else {
				slots = append(slots, nil)
			}
			if kicker == poker.Two {
				break
			}
		}

		for _, g := range runs(slots, minNonPairRun) {
			groups = append(groups, g)
			for _, c := range g {
				absorbed.Add(c)
			}
		}
	}

	for _, c := range combos.Sorted() {
		if c.Class == class && !absorbed.Has(c) {
			remaining = append(remaining, c)
		}
	}
	return groups, remaining
}

// runs splits slots at nil entries and keeps runs of at least minLen.
func runs(slots []*poker.Combo, minLen int) []ComboGroup {
	var groups []ComboGroup
	var current ComboGroup
	flush := func() {
		if len(current) >= minLen {
			groups = append(groups, current)
		}
		current = nil
	}

	for _, slot := range slots {
		if slot == nil {
			flush()
			continue
		}
		current = append(current, *slot)
	}
	flush()
	return groups
}

// Notations renders every group in order.
func Notations(groups []ComboGroup) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Notation())
	}
	return out
}
