package rangedoc

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"unicode/utf8"

	"github.com/lox/rangekit/internal/docid"
	"github.com/lox/rangekit/notation"
	"github.com/lox/rangekit/poker"
	"github.com/lox/rangekit/sampler"
)

// Title and author length limits.
const (
	MaxTitleLength  = 80
	MaxAuthorLength = 48
)

var (
	// ErrDegenerateWeightVector reports a weight vector that is all zeros or
	// holds a negative weight.
	ErrDegenerateWeightVector = errors.New("degenerate weight vector")

	// ErrActionMismatch reports a weight vector whose length differs from
	// the number of actions.
	ErrActionMismatch = errors.New("weight vector does not match actions")

	// ErrInvalidDocument reports missing or malformed document fields.
	ErrInvalidDocument = errors.New("invalid range document")
)

// ValidateWeights checks the precondition shared by the notation and
// sampling engines: no negative weights and at least one positive one.
func ValidateWeights(weights []float64) error {
	positive := false
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: weight %d is %v", ErrDegenerateWeightVector, i, w)
		}
		if w > 0 {
			positive = true
		}
	}
	if !positive {
		return fmt.Errorf("%w: no positive weight", ErrDegenerateWeightVector)
	}
	return nil
}

// Validate checks the document's fields and every combo's weight vector.
// Combos are checked in matrix order so the reported error is stable.
func (d *Document) Validate() error {
	if n := utf8.RuneCountInString(d.Title); n == 0 || n > MaxTitleLength {
		return fmt.Errorf("%w: title must be 1-%d characters", ErrInvalidDocument, MaxTitleLength)
	}
	if n := utf8.RuneCountInString(d.Author); n == 0 || n > MaxAuthorLength {
		return fmt.Errorf("%w: author must be 1-%d characters", ErrInvalidDocument, MaxAuthorLength)
	}
	if d.ID != "" {
		if err := docid.Validate(d.ID); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
	}
	if len(d.Actions) == 0 {
		return fmt.Errorf("%w: at least one action is required", ErrInvalidDocument)
	}
	for i, a := range d.Actions {
		if a.Name == "" {
			return fmt.Errorf("%w: action %d has no name", ErrInvalidDocument, i)
		}
	}

	for _, label := range d.sortedLabels() {
		if _, err := poker.ParseCombo(label); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
		weights := d.Combos[label]
		if len(weights) != len(d.Actions) {
			return fmt.Errorf("%w: %s has %d weights for %d actions", ErrActionMismatch, label, len(weights), len(d.Actions))
		}
		if err := ValidateWeights(weights); err != nil {
			return fmt.Errorf("%s: %w", label, err)
		}
	}
	return nil
}

// sortedLabels returns the combo labels in matrix order. Labels that do
// not parse sort last, alphabetically.
func (d *Document) sortedLabels() []string {
	labels := make([]string, 0, len(d.Combos))
	for label := range d.Combos {
		labels = append(labels, label)
	}
	slices.SortFunc(labels, func(a, b string) int {
		ca, errA := poker.ParseCombo(a)
		cb, errB := poker.ParseCombo(b)
		switch {
		case errA == nil && errB == nil:
			return poker.Compare(ca, cb)
		case errA == nil:
			return -1
		case errB == nil:
			return 1
		default:
			return cmp.Compare(a, b)
		}
	})
	return labels
}

// InclusionPercentage returns 100 * (weight on in-range actions) / (total
// weight) for one vector, and whether any in-range action has positive
// weight.
func InclusionPercentage(weights []float64, actions []Action) (float64, bool) {
	total, inRange := 0.0, 0.0
	included := false
	for i, w := range weights {
		total += w
		if i < len(actions) && actions[i].InRange {
			inRange += w
			if w > 0 {
				included = true
			}
		}
	}
	if !included || total == 0 {
		return 0, false
	}
	return inRange / total * 100, true
}

// WeightedCombos reduces the document to (combo, inclusion percentage)
// pairs for the notation engine. Combos with no in-range weight are left
// out. Percentages are rounded to precision decimal places; results are in
// matrix order.
func (d *Document) WeightedCombos(precision int) []notation.WeightedCombo {
	scale := math.Pow(10, float64(precision))
	var out []notation.WeightedCombo
	for _, label := range d.sortedLabels() {
		pct, ok := InclusionPercentage(d.Combos[label], d.Actions)
		if !ok {
			continue
		}
		out = append(out, notation.WeightedCombo{
			Combo:  label,
			Weight: math.Round(pct*scale) / scale,
		})
	}
	return out
}

// RangeString renders the document's inclusion percentages in a solver
// format. The document should be validated first.
func (d *Document) RangeString(formatID string, precision int) (string, error) {
	return notation.CombosToRangeString(d.WeightedCombos(precision), formatID)
}

// Frequencies returns each action's share of the total weight, in percent.
// A zero vector yields all zeros.
func Frequencies(weights []float64) []float64 {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	out := make([]float64, len(weights))
	if total == 0 {
		return out
	}
	for i, w := range weights {
		out[i] = w / total * 100
	}
	return out
}

// Sample draws one action per combo.
func (d *Document) Sample(rng sampler.IntSource) sampler.Sample {
	return sampler.ResolveSample(d.Combos, rng)
}
