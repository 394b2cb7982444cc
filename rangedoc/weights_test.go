package rangedoc

import (
	"testing"

	"github.com/lox/rangekit/notation"
	"github.com/lox/rangekit/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWeights(t *testing.T) {
	assert.NoError(t, ValidateWeights([]float64{0, 1}))
	assert.ErrorIs(t, ValidateWeights([]float64{0, 0, 0}), ErrDegenerateWeightVector)
	assert.ErrorIs(t, ValidateWeights(nil), ErrDegenerateWeightVector)
	assert.ErrorIs(t, ValidateWeights([]float64{5, -1}), ErrDegenerateWeightVector)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Document)
		wantErr error
	}{
		{name: "valid", mutate: func(*Document) {}},
		{name: "empty title", mutate: func(d *Document) { d.Title = "" }, wantErr: ErrInvalidDocument},
		{name: "long author", mutate: func(d *Document) { d.Author = string(make([]byte, 49)) }, wantErr: ErrInvalidDocument},
		{name: "malformed id", mutate: func(d *Document) { d.ID = "not-a-document-id" }, wantErr: ErrInvalidDocument},
		{name: "no id", mutate: func(d *Document) { d.ID = "" }},
		{name: "no actions", mutate: func(d *Document) { d.Actions = nil }, wantErr: ErrInvalidDocument},
		{name: "unnamed action", mutate: func(d *Document) { d.Actions[1].Name = "" }, wantErr: ErrInvalidDocument},
		{name: "bad label", mutate: func(d *Document) { d.Combos["AK"] = []float64{0, 0, 1} }, wantErr: poker.ErrInvalidSuitSuffix},
		{name: "short vector", mutate: func(d *Document) { d.Combos["JJ"] = []float64{1} }, wantErr: ErrActionMismatch},
		{name: "all zero", mutate: func(d *Document) { d.Combos["JJ"] = []float64{0, 0, 0} }, wantErr: ErrDegenerateWeightVector},
		{name: "negative", mutate: func(d *Document) { d.Combos["JJ"] = []float64{-1, 0, 2} }, wantErr: ErrDegenerateWeightVector},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := sampleDoc()
			tt.mutate(d)
			err := d.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestInclusionPercentage(t *testing.T) {
	actions := DefaultActions()

	pct, ok := InclusionPercentage([]float64{0, 20, 80}, actions)
	assert.True(t, ok)
	assert.Equal(t, 100.0, pct)

	pct, ok = InclusionPercentage([]float64{1, 1, 1}, actions)
	assert.True(t, ok)
	assert.InDelta(t, 66.666, pct, 0.001)

	_, ok = InclusionPercentage([]float64{100, 0, 0}, actions)
	assert.False(t, ok, "fold-only combos are not in range")
}

func TestWeightedCombos(t *testing.T) {
	d := sampleDoc()
	d.Combos["JJ"] = []float64{1, 1, 1}

	got := d.WeightedCombos(2)
	assert.Equal(t, []notation.WeightedCombo{
		{Combo: "AA", Weight: 100},
		{Combo: "AKs", Weight: 100},
		{Combo: "AKo", Weight: 100},
		{Combo: "KK", Weight: 100},
		{Combo: "KQo", Weight: 50},
		{Combo: "QQ", Weight: 100},
		{Combo: "JJ", Weight: 66.67},
	}, got)

	rounded := d.WeightedCombos(0)
	require.Len(t, rounded, 7)
	assert.Equal(t, notation.WeightedCombo{Combo: "JJ", Weight: 67}, rounded[len(rounded)-1])
}

func TestFrequencies(t *testing.T) {
	assert.Equal(t, []float64{25, 25, 50}, Frequencies([]float64{1, 1, 2}))
	assert.Equal(t, []float64{0, 0}, Frequencies([]float64{0, 0}))
}

type firstValue struct{}

func (firstValue) IntRange(lo, _ int) int { return lo }

func TestSample(t *testing.T) {
	d := sampleDoc()
	s := d.Sample(firstValue{})

	require.Len(t, s, len(d.Combos))
	assert.Equal(t, 2, s.Action("AA"))
	assert.Equal(t, 1, s.Action("QQ"), "lowest draw lands in the first non-empty bucket")
	assert.Equal(t, 0, s.Action("72o"))
	assert.Equal(t, 0, s.Action("22"))
}
