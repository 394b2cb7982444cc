// Package matrix renders a range document as the 13x13 starting-hand grid.
package matrix

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/rangekit/poker"
	"github.com/lox/rangekit/rangedoc"
	"github.com/lox/rangekit/sampler"
)

const (
	sampleCellWidth    = 4
	inclusionCellWidth = 8
)

var (
	cellText     = lipgloss.Color("#000000")
	emptyCell    = lipgloss.Color("#3a3a3a")
	emptyCellTxt = lipgloss.Color("#8a8a8a")
)

// Renderer draws matrices for one output stream.
type Renderer struct {
	lg *lipgloss.Renderer
}

// NewRenderer returns a renderer writing to w. When color is false every
// style is rendered without escape sequences.
func NewRenderer(w io.Writer, color bool) *Renderer {
	lg := lipgloss.NewRenderer(w)
	if !color {
		lg.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{lg: lg}
}

func (r *Renderer) cell(bg lipgloss.Color) lipgloss.Style {
	return r.lg.NewStyle().Background(bg).Foreground(cellText)
}

// Sample draws every combo in the colour of the action picked for it.
// Combos with no pick use the first action.
func (r *Renderer) Sample(d *rangedoc.Document, s sampler.Sample) string {
	return r.grid(func(c poker.Combo) string {
		label := c.String()
		text := fmt.Sprintf("%-*s", sampleCellWidth, label)
		idx := s.Action(label)
		if idx >= len(d.Actions) {
			return text
		}
		return r.cell(lipgloss.Color(d.Actions[idx].Color)).Render(text)
	})
}

// Inclusion draws every combo with its inclusion percentage, coloured by
// its most frequent action. Combos outside the range are dimmed.
func (r *Renderer) Inclusion(d *rangedoc.Document) string {
	dim := r.lg.NewStyle().Background(emptyCell).Foreground(emptyCellTxt)
	return r.grid(func(c poker.Combo) string {
		label := c.String()
		weights := d.Combos[label]
		pct, ok := rangedoc.InclusionPercentage(weights, d.Actions)
		if !ok {
			return dim.Render(fmt.Sprintf("%-*s", inclusionCellWidth, label))
		}
		text := fmt.Sprintf("%-4s%3.0f ", label, math.Round(pct))
		top := dominant(rangedoc.Frequencies(weights))
		if top >= len(d.Actions) {
			return text
		}
		return r.cell(lipgloss.Color(d.Actions[top].Color)).Render(text)
	})
}

// Legend lists the actions in their colours.
func (r *Renderer) Legend(actions []rangedoc.Action) string {
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = r.cell(lipgloss.Color(a.Color)).Render(" " + a.Name + " ")
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) grid(render func(poker.Combo) string) string {
	var sb strings.Builder
	for row := range poker.NumRanks {
		cells := make([]string, poker.NumRanks)
		for col := range poker.NumRanks {
			cells[col] = render(poker.ComboAt(row, col))
		}
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// dominant returns the index of the largest frequency, the first on ties.
func dominant(freqs []float64) int {
	best := 0
	for i, f := range freqs {
		if f > freqs[best] {
			best = i
		}
	}
	return best
}
