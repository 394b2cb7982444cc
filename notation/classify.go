package notation

import (
	"fmt"
	"slices"

	"github.com/lox/rangekit/poker"
)

// ErrInvalidSuitSuffix reports a non-pair label without a recognised s/o
// suffix, or a pair label that carries one.
var ErrInvalidSuitSuffix = poker.ErrInvalidSuitSuffix

// ComboSet is an unordered set of combos.
type ComboSet map[poker.Combo]struct{}

// NewComboSet returns a set holding the given combos.
func NewComboSet(combos ...poker.Combo) ComboSet {
	s := make(ComboSet, len(combos))
	for _, c := range combos {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts c into the set.
func (s ComboSet) Add(c poker.Combo) {
	s[c] = struct{}{}
}

// Has reports whether c is in the set.
func (s ComboSet) Has(c poker.Combo) bool {
	_, ok := s[c]
	return ok
}

// Sorted returns the set's members in matrix order (see poker.Compare).
func (s ComboSet) Sorted() []poker.Combo {
	out := make([]poker.Combo, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	slices.SortFunc(out, poker.Compare)
	return out
}

// Partition is the result of Classify.
type Partition struct {
	Pairs   ComboSet
	Suited  ComboSet
	Offsuit ComboSet
}

// Classify parses every label and splits the combos by suit class. It
// fails on the first label that is not a valid resolved combo; suffix
// problems wrap ErrInvalidSuitSuffix.
func Classify(labels []string) (Partition, error) {
	combos := make([]poker.Combo, 0, len(labels))
	for _, label := range labels {
		c, err := poker.ParseCombo(label)
		if err != nil {
			return Partition{}, fmt.Errorf("classify %q: %w", label, err)
		}
		combos = append(combos, c)
	}
	return ClassifyCombos(combos), nil
}

// ClassifyCombos splits already parsed combos by suit class.
func ClassifyCombos(combos []poker.Combo) Partition {
	p := Partition{
		Pairs:   ComboSet{},
		Suited:  ComboSet{},
		Offsuit: ComboSet{},
	}
	for _, c := range combos {
		switch c.Class {
		case poker.Pair:
			p.Pairs.Add(c)
		case poker.Suited:
			p.Suited.Add(c)
		case poker.Offsuit:
			p.Offsuit.Add(c)
		}
	}
	return p
}
