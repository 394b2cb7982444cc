package rangedoc

import (
	"bytes"
	"testing"

	"github.com/lox/rangekit/internal/docid"
	"github.com/lox/rangekit/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() *Document {
	return &Document{
		ID:      "01h5n0et5q6mt3v7ms1234abcd",
		Title:   "6 Max Cash UTG RFI",
		Author:  "lox",
		Tags:    []string{"UTG", "RFI", "6max"},
		Actions: DefaultActions(),
		Combos: map[string][]float64{
			"AA":  {0, 0, 100},
			"KK":  {0, 0, 100},
			"QQ":  {0, 50, 50},
			"AKs": {0, 0, 100},
			"AKo": {0, 20, 80},
			"KQo": {50, 0, 50},
			"72o": {100, 0, 0},
		},
	}
}

func TestNewDocument(t *testing.T) {
	d, err := New(nil, "BTN open", "lox", "BTN")
	require.NoError(t, err)

	assert.NoError(t, docid.Validate(d.ID))
	assert.Equal(t, DefaultActions(), d.Actions)
	assert.Equal(t, []string{"BTN"}, d.Tags)
	assert.Empty(t, d.Combos)

	d2, err := New(nil, "SB", "lox")
	require.NoError(t, err)
	assert.NotNil(t, d2.Tags)
	assert.NotEqual(t, d.ID, d2.ID)
}

func TestDefaultActions(t *testing.T) {
	actions := DefaultActions()
	require.Len(t, actions, 3)
	assert.False(t, actions[0].InRange, "fold is not in range")
	assert.True(t, actions[1].InRange)
	assert.True(t, actions[2].InRange)
}

func TestDuplicate(t *testing.T) {
	d := sampleDoc()
	dup, err := d.Duplicate(bytes.NewReader(bytes.Repeat([]byte{0x11}, 16)))
	require.NoError(t, err)

	assert.NotEqual(t, d.ID, dup.ID)
	assert.NoError(t, docid.Validate(dup.ID))
	assert.Equal(t, d.Title, dup.Title)
	assert.Equal(t, d.Combos, dup.Combos)

	dup.Combos["AA"][0] = 1
	dup.Tags[0] = "BTN"
	assert.Equal(t, 0.0, d.Combos["AA"][0], "duplicate must not share weight vectors")
	assert.Equal(t, "UTG", d.Tags[0])
}

func TestSetWeightAndPrune(t *testing.T) {
	d := &Document{Actions: DefaultActions()}
	require.NoError(t, d.SetWeight("AA", 2, 100))
	require.NoError(t, d.SetWeight("KK", 1, 0))
	assert.Equal(t, []float64{0, 0, 100}, d.Combos["AA"])
	assert.Equal(t, []float64{0, 0, 0}, d.Combos["KK"])

	d.Prune()
	assert.Contains(t, d.Combos, "AA")
	assert.NotContains(t, d.Combos, "KK")
}

func TestHasTagsAndSearch(t *testing.T) {
	d := sampleDoc()

	assert.True(t, d.HasTags())
	assert.True(t, d.HasTags("UTG", "RFI"))
	assert.False(t, d.HasTags("UTG", "BTN"))

	assert.True(t, d.MatchesSearch(""))
	assert.True(t, d.MatchesSearch("utg cash"))
	assert.True(t, d.MatchesSearch("  MAX  "))
	assert.False(t, d.MatchesSearch("utg tournament"))
}

func TestFilterAndAllTags(t *testing.T) {
	a := sampleDoc()
	b := sampleDoc()
	b.Title = "BTN vs 3bet"
	b.Tags = []string{"BTN", "vs 3bet", "6max"}

	docs := []*Document{a, b}
	assert.Equal(t, []*Document{a, b}, Filter(docs, []string{"6max"}, ""))
	assert.Equal(t, []*Document{b}, Filter(docs, []string{"6max"}, "3bet"))
	assert.Empty(t, Filter(docs, []string{"BB"}, ""))

	assert.Equal(t, []string{"6max", "BTN", "RFI", "UTG", "vs 3bet"}, AllTags(docs))
}

func TestFileName(t *testing.T) {
	d := &Document{Title: "6 Max  Cash\tUTG RFI"}
	assert.Equal(t, "6-max-cash-utg-rfi.range", d.FileName())
}

func TestRangeStringFromDocument(t *testing.T) {
	d := sampleDoc()
	require.NoError(t, d.Validate())

	got, err := d.RangeString(notation.FormatGTOPlus, 2)
	require.NoError(t, err)
	assert.Equal(t, "QQ+,AK,[50.0]KQo[/50.0]", got)

	got, err = d.RangeString(notation.FormatPio, 2)
	require.NoError(t, err)
	assert.Equal(t, "QQ+:1.00,AK:1.00,KQo:0.50", got)

	_, err = d.RangeString("flopzilla", 2)
	assert.ErrorIs(t, err, notation.ErrUnsupportedFormat)
}

func TestNewWithReaderIsReproducible(t *testing.T) {
	random := bytes.Repeat([]byte{0x42}, 16)
	a, err := New(bytes.NewReader(random), "BTN open", "lox")
	require.NoError(t, err)
	b, err := New(bytes.NewReader(random), "BTN open", "lox")
	require.NoError(t, err)

	assert.Equal(t, a.ID[14:], b.ID[14:], "random bits come from the reader")
	assert.NoError(t, a.Validate())

	_, err = New(bytes.NewReader(nil), "BTN open", "lox")
	assert.Error(t, err, "an exhausted reader cannot supply an ID")
}

func TestSetWeightRejectsMismatch(t *testing.T) {
	d := &Document{Actions: DefaultActions()}

	assert.ErrorIs(t, d.SetWeight("AA", 3, 100), ErrActionMismatch)
	assert.ErrorIs(t, d.SetWeight("AA", -1, 100), ErrActionMismatch)
	assert.NotContains(t, d.Combos, "AA")

	d.Combos = map[string][]float64{"KK": {0, 100}}
	assert.ErrorIs(t, d.SetWeight("KK", 2, 50), ErrActionMismatch)
	assert.Equal(t, []float64{0, 100}, d.Combos["KK"])
}

func TestApplyRange(t *testing.T) {
	d := &Document{Title: "t", Author: "lox", Actions: DefaultActions()}
	combos, err := notation.ParseRangeString("QQ+,[25.0]AKs[/25.0]", notation.FormatGTOPlus)
	require.NoError(t, err)

	require.NoError(t, d.ApplyRange(combos, 2))
	assert.Equal(t, map[string][]float64{
		"AA":  {0, 0, 100},
		"KK":  {0, 0, 100},
		"QQ":  {0, 0, 100},
		"AKs": {75, 0, 25},
	}, d.Combos)
	require.NoError(t, d.Validate())

	out, err := d.RangeString(notation.FormatGTOPlus, 2)
	require.NoError(t, err)
	assert.Equal(t, "QQ+,[25.0]AKs[/25.0]", out)

	assert.ErrorIs(t, d.ApplyRange(combos, 5), ErrActionMismatch)
}
