package notation

import (
	"testing"

	"github.com/lox/rangekit/poker"
	"github.com/stretchr/testify/assert"
)

func TestGroupPairs(t *testing.T) {
	tests := []struct {
		name  string
		pairs []string
		want  []string
	}{
		{name: "top run", pairs: []string{"AA", "KK", "QQ", "JJ", "TT"}, want: []string{"TT+"}},
		{name: "middle run", pairs: []string{"99", "88", "77", "66"}, want: []string{"99-66"}},
		{name: "all pairs", pairs: []string{"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44", "33", "22"}, want: []string{"22+"}},
		{name: "gaps", pairs: []string{"AA", "KK", "99", "88", "22"}, want: []string{"KK+", "99-88", "22"}},
		{name: "singles", pairs: []string{"QQ", "55"}, want: []string{"QQ", "55"}},
		{name: "aces only", pairs: []string{"AA"}, want: []string{"AA"}},
		{name: "empty", pairs: nil, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Notations(GroupPairs(setOf(t, tt.pairs...)))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGroupNonPairs(t *testing.T) {
	tests := []struct {
		name          string
		combos        []string
		class         poker.SuitClass
		wantGroups    []string
		wantRemaining []string
	}{
		{
			name:       "top three offsuit aces",
			combos:     []string{"AKo", "AQo", "AJo"},
			class:      poker.Offsuit,
			wantGroups: []string{"AJo+"},
		},
		{
			name:          "run of two stays bare",
			combos:        []string{"A5s", "A4s"},
			class:         poker.Suited,
			wantRemaining: []string{"A5s", "A4s"},
		},
		{
			name:       "middle run uses dash",
			combos:     []string{"AQs", "AJs", "ATs", "A9s"},
			class:      poker.Suited,
			wantGroups: []string{"AQs-A9s"},
		},
		{
			name:       "king anchor top kicker is queen",
			combos:     []string{"KQo", "KJo", "KTo"},
			class:      poker.Offsuit,
			wantGroups: []string{"KTo+"},
		},
		{
			name:       "eight is the lowest anchor",
			combos:     []string{"87s", "86s", "85s"},
			class:      poker.Suited,
			wantGroups: []string{"85s+"},
		},
		{
			name:          "seven anchor is never grouped",
			combos:        []string{"76s", "75s", "74s"},
			class:         poker.Suited,
			wantRemaining: []string{"76s", "75s", "74s"},
		},
		{
			name:          "short and long runs under one anchor",
			combos:        []string{"AKs", "AQs", "ATs", "A9s", "A8s"},
			class:         poker.Suited,
			wantGroups:    []string{"ATs-A8s"},
			wantRemaining: []string{"AKs", "AQs"},
		},
		{
			name:          "anchors processed high to low",
			combos:        []string{"QJo", "QTo", "Q9o", "A4o", "A3o", "A2o", "K2o"},
			class:         poker.Offsuit,
			wantGroups:    []string{"A4o-A2o", "Q9o+"},
			wantRemaining: []string{"K2o"},
		},
		{
			name:          "deuce kicker closes a run",
			combos:        []string{"J4s", "J3s", "J2s", "T3s", "T2s"},
			class:         poker.Suited,
			wantGroups:    []string{"J4s-J2s"},
			wantRemaining: []string{"T3s", "T2s"},
		},
		{
			name:          "other classes ignored",
			combos:        []string{"AKs", "AQs", "AJs", "AKo"},
			class:         poker.Offsuit,
			wantRemaining: []string{"AKo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups, remaining := GroupNonPairs(setOf(t, tt.combos...), tt.class)

			gotGroups := Notations(groups)
			if tt.wantGroups == nil {
				tt.wantGroups = []string{}
			}
			assert.Equal(t, tt.wantGroups, gotGroups)

			if tt.wantRemaining == nil {
				assert.Empty(t, remaining)
			} else {
				assert.Equal(t, tt.wantRemaining, labels(remaining))
			}
		})
	}
}

func TestGroupNonPairsThreshold(t *testing.T) {
	groups, remaining := GroupNonPairs(setOf(t, "K9o", "K8o"), poker.Offsuit)
	assert.Empty(t, groups, "two consecutive combos must not compress")
	assert.Equal(t, []string{"K9o", "K8o"}, labels(remaining))

	groups, remaining = GroupNonPairs(setOf(t, "K9o", "K8o", "K7o"), poker.Offsuit)
	assert.Equal(t, []string{"K9o-K7o"}, Notations(groups), "three consecutive combos must compress")
	assert.Empty(t, remaining)
}

func TestComboGroupNotationSingle(t *testing.T) {
	g := ComboGroup{poker.MustParseCombo("A5s")}
	assert.Equal(t, "A5s", g.Notation())
	assert.Equal(t, "", ComboGroup{}.Notation())
}
