// Package poker models the preflop hand universe: the 13 ranks and the 169
// canonical starting-hand combos built from them.
package poker

import (
	"errors"
	"fmt"
)

// Rank is a card rank, 0 (deuce) through 12 (ace).
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks in a deck.
const NumRanks = 13

const rankChars = "23456789TJQKA"

// ErrInvalidRank is returned when a rank character is not one of 23456789TJQKA.
var ErrInvalidRank = errors.New("invalid rank")

// RanksDescending lists every rank from ace down to deuce. This is the row
// and column order of the hand matrix.
var RanksDescending = [NumRanks]Rank{Ace, King, Queen, Jack, Ten, Nine, Eight, Seven, Six, Five, Four, Three, Two}

// ParseRank converts a rank character to a Rank.
func ParseRank(c byte) (Rank, error) {
	for i := range len(rankChars) {
		if rankChars[i] == c {
			return Rank(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRank, c)
}

// Char returns the single character used for the rank in combo labels.
func (r Rank) Char() byte {
	if r > Ace {
		return '?'
	}
	return rankChars[r]
}

func (r Rank) String() string {
	return string(r.Char())
}

// Position returns the rank's index in RanksDescending (ace is 0, deuce is 12).
func (r Rank) Position() int {
	return int(Ace - r)
}
