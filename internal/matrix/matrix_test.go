package matrix

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/rangekit/rangedoc"
	"github.com/lox/rangekit/sampler"
)

func testDoc() *rangedoc.Document {
	return &rangedoc.Document{
		Title:   "test",
		Author:  "lox",
		Actions: rangedoc.DefaultActions(),
		Combos: map[string][]float64{
			"AA":  {0, 0, 100},
			"AKs": {0, 25, 75},
			"72o": {100, 0, 0},
		},
	}
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestSampleGrid(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, false)
	out := r.Sample(testDoc(), sampler.Sample{"AA": 2, "AKs": 1})

	assert.NotContains(t, out, "\x1b")
	rows := lines(out)
	require.Len(t, rows, 13)
	assert.True(t, strings.HasPrefix(rows[0], "AA   AKs  AQs"), rows[0])
	assert.True(t, strings.HasPrefix(rows[1], "AKo  KK   KQs"), rows[1])
	assert.True(t, strings.HasSuffix(rows[12], "22  "), rows[12])
}

func TestInclusionGrid(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, false)
	out := r.Inclusion(testDoc())

	rows := lines(out)
	require.Len(t, rows, 13)
	assert.True(t, strings.HasPrefix(rows[0], "AA  100  AKs 100  AQs     "), rows[0])
	assert.NotContains(t, out, "72o   0", "excluded combos show no percentage")
}

func TestLegend(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, false)
	assert.Equal(t, " Fold   Call   Raise ", r.Legend(rangedoc.DefaultActions()))
}

func TestDominant(t *testing.T) {
	assert.Equal(t, 0, dominant([]float64{50, 0, 50}))
	assert.Equal(t, 2, dominant([]float64{0, 25, 75}))
	assert.Equal(t, 0, dominant(nil))
}
