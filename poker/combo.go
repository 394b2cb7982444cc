package poker

import (
	"errors"
	"fmt"
)

// SuitClass distinguishes pairs from suited and offsuit non-pairs.
type SuitClass uint8

const (
	Pair SuitClass = iota
	Suited
	Offsuit
)

// Suffix returns the label suffix for the class: "" for pairs, "s" or "o".
func (s SuitClass) Suffix() string {
	switch s {
	case Suited:
		return "s"
	case Offsuit:
		return "o"
	default:
		return ""
	}
}

func (s SuitClass) String() string {
	switch s {
	case Pair:
		return "pair"
	case Suited:
		return "suited"
	case Offsuit:
		return "offsuit"
	default:
		return fmt.Sprintf("SuitClass(%d)", uint8(s))
	}
}

var (
	// ErrInvalidCombo is returned for labels that are not two ranks plus an
	// optional suffix.
	ErrInvalidCombo = errors.New("invalid combo")

	// ErrInvalidSuitSuffix is returned when a non-pair label lacks an s/o
	// suffix, carries some other suffix, or a pair label carries one.
	ErrInvalidSuitSuffix = errors.New("invalid suit suffix")
)

// NumCombos is the size of the canonical starting-hand universe.
const NumCombos = 169

// Combo is one of the 169 canonical starting hands. High is never lower
// than Low; for pairs they are equal and Class is Pair.
type Combo struct {
	High  Rank
	Low   Rank
	Class SuitClass
}

// NewPair returns the pocket pair of rank r.
func NewPair(r Rank) Combo {
	return Combo{High: r, Low: r, Class: Pair}
}

// NewCombo returns the non-pair combo of the two ranks in the given class.
// The ranks may be given in either order.
func NewCombo(a, b Rank, class SuitClass) Combo {
	if a < b {
		a, b = b, a
	}
	return Combo{High: a, Low: b, Class: class}
}

// ParseCombo parses a label such as "AA", "AKs" or "T9o".
func ParseCombo(label string) (Combo, error) {
	if len(label) < 2 || len(label) > 3 {
		return Combo{}, fmt.Errorf("%w: %q", ErrInvalidCombo, label)
	}
	r1, err := ParseRank(label[0])
	if err != nil {
		return Combo{}, fmt.Errorf("%w %q: %w", ErrInvalidCombo, label, err)
	}
	r2, err := ParseRank(label[1])
	if err != nil {
		return Combo{}, fmt.Errorf("%w %q: %w", ErrInvalidCombo, label, err)
	}

	if r1 == r2 {
		if len(label) == 3 {
			return Combo{}, fmt.Errorf("%w: pair %q cannot be suited or offsuit", ErrInvalidSuitSuffix, label)
		}
		return NewPair(r1), nil
	}

	if len(label) == 2 {
		return Combo{}, fmt.Errorf("%w: %q needs an s or o suffix", ErrInvalidSuitSuffix, label)
	}
	switch label[2] {
	case 's':
		return NewCombo(r1, r2, Suited), nil
	case 'o':
		return NewCombo(r1, r2, Offsuit), nil
	default:
		return Combo{}, fmt.Errorf("%w: %q in %q", ErrInvalidSuitSuffix, label[2], label)
	}
}

// MustParseCombo is like ParseCombo but panics on error. Intended for tests
// and static tables.
func MustParseCombo(label string) Combo {
	c, err := ParseCombo(label)
	if err != nil {
		panic(err)
	}
	return c
}

// IsPair reports whether the combo is a pocket pair.
func (c Combo) IsPair() bool {
	return c.Class == Pair
}

// Ranks returns the two-rank label without a suffix, e.g. "AK".
func (c Combo) Ranks() string {
	return string([]byte{c.High.Char(), c.Low.Char()})
}

func (c Combo) String() string {
	return c.Ranks() + c.Class.Suffix()
}

// Combinations returns how many concrete two-card holdings the combo covers.
func (c Combo) Combinations() int {
	switch c.Class {
	case Pair:
		return 6
	case Suited:
		return 4
	default:
		return 12
	}
}

// MatrixPosition returns the combo's row and column in the 13x13 hand
// matrix. Pairs sit on the diagonal, suited combos above it and offsuit
// combos below it.
func (c Combo) MatrixPosition() (row, col int) {
	hi, lo := c.High.Position(), c.Low.Position()
	switch c.Class {
	case Suited:
		return hi, lo
	case Offsuit:
		return lo, hi
	default:
		return hi, hi
	}
}

// ComboAt returns the combo at the given matrix cell.
func ComboAt(row, col int) Combo {
	r, c := RanksDescending[row], RanksDescending[col]
	switch {
	case row == col:
		return NewPair(r)
	case col > row:
		return NewCombo(r, c, Suited)
	default:
		return NewCombo(r, c, Offsuit)
	}
}

// Universe returns all 169 combos in matrix order, row by row: AA, AKs,
// AQs, ..., A2s, AKo, KK, KQs, ...
func Universe() []Combo {
	combos := make([]Combo, 0, NumCombos)
	for row := range NumRanks {
		for col := range NumRanks {
			combos = append(combos, ComboAt(row, col))
		}
	}
	return combos
}

// Compare orders combos by high rank descending, then low rank descending,
// then pair, suited, offsuit. Suitable for slices.SortFunc.
func Compare(a, b Combo) int {
	if a.High != b.High {
		return int(b.High) - int(a.High)
	}
	if a.Low != b.Low {
		return int(b.Low) - int(a.Low)
	}
	return int(a.Class) - int(b.Class)
}
