// Package rangedoc holds the range document: a titled, tagged assignment of
// action weights to each starting hand, and the reductions that feed the
// notation and sampling engines.
package rangedoc

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/lox/rangekit/internal/docid"
	"github.com/lox/rangekit/notation"
)

// Action is one strategic option in a range, such as fold or raise.
// InRange marks actions that count toward a combo's inclusion percentage.
type Action struct {
	Name    string `json:"name" yaml:"name"`
	Color   string `json:"color" yaml:"color"`
	InRange bool   `json:"inRange" yaml:"inRange"`
}

// Document is a range: per-combo weight vectors over an ordered action list.
// Combos[label][i] is the weight of Actions[i] for that combo.
type Document struct {
	ID      string               `json:"_id,omitempty" yaml:"id,omitempty"`
	Title   string               `json:"title" yaml:"title"`
	Author  string               `json:"author" yaml:"author"`
	Tags    []string             `json:"tags" yaml:"tags"`
	Actions []Action             `json:"actions" yaml:"actions"`
	Combos  map[string][]float64 `json:"combos" yaml:"combos"`
}

// DefaultActions returns the action list new documents start with.
func DefaultActions() []Action {
	return []Action{
		{Name: "Fold", Color: "#d3d3d3", InRange: false},
		{Name: "Call", Color: "#d9e90e", InRange: true},
		{Name: "Raise", Color: "#e89679", InRange: true},
	}
}

// DefaultTags is the suggested tag vocabulary: positions, stakes, stack
// depths, spots, table sizes and opponent types.
var DefaultTags = []string{
	"EP", "MP", "UTG", "UTG+1", "UTG+2", "LJ", "HJ", "CO", "BTN", "SB", "BB",
	"vs EP", "vs MP", "vs UTG", "vs UTG+1", "vs UTG+2", "vs LJ", "vs HJ", "vs CO", "vs BTN", "vs SB", "vs BB",
	"micro", "low stakes", "medium stakes", "high stakes",
	"100BB", "200BB", "75BB", "50BB", "30BB",
	"RFI", "Open", "vs limp", "vs open", "vs 3bet", "vs 4bet", "vs 5bet",
	"vs small bet", "vs medium bet", "vs big bet",
	"6max", "full ring", "heads up",
	"GTO", "exploitative", "vs nit", "vs TAG", "vs LAG", "vs fish", "vs whale",
}

// New returns an empty document with the default actions and an ID drawn
// from ids. A nil ids uses a cryptographic source.
func New(ids io.Reader, title, author string, tags ...string) (*Document, error) {
	id, err := docid.GenerateFromReader(ids)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	return &Document{
		ID:      id,
		Title:   title,
		Author:  author,
		Tags:    tags,
		Actions: DefaultActions(),
		Combos:  map[string][]float64{},
	}, nil
}

// Duplicate returns a deep copy of the document under a new ID drawn from
// ids, as New does.
func (d *Document) Duplicate(ids io.Reader) (*Document, error) {
	id, err := docid.GenerateFromReader(ids)
	if err != nil {
		return nil, err
	}

	dup := &Document{
		ID:      id,
		Title:   d.Title,
		Author:  d.Author,
		Tags:    slices.Clone(d.Tags),
		Actions: slices.Clone(d.Actions),
		Combos:  make(map[string][]float64, len(d.Combos)),
	}
	for combo, weights := range d.Combos {
		dup.Combos[combo] = slices.Clone(weights)
	}
	return dup, nil
}

// SetWeight sets the weight of one action for a combo, creating a zero
// vector for combos not yet in the range.
func (d *Document) SetWeight(combo string, action int, weight float64) error {
	if action < 0 || action >= len(d.Actions) {
		return fmt.Errorf("%w: action %d of %d", ErrActionMismatch, action, len(d.Actions))
	}
	if d.Combos == nil {
		d.Combos = map[string][]float64{}
	}
	weights, ok := d.Combos[combo]
	if !ok {
		weights = make([]float64, len(d.Actions))
	} else if len(weights) != len(d.Actions) {
		return fmt.Errorf("%w: %s has %d weights for %d actions", ErrActionMismatch, combo, len(weights), len(d.Actions))
	}
	weights[action] = weight
	d.Combos[combo] = weights
	return nil
}

// ApplyRange assigns each combo its percentage on action and the rest of
// 100 on action 0. It is how a notation string becomes a document.
func (d *Document) ApplyRange(combos []notation.WeightedCombo, action int) error {
	for _, wc := range combos {
		if err := d.SetWeight(wc.Combo, action, wc.Weight); err != nil {
			return err
		}
		if action != 0 {
			if err := d.SetWeight(wc.Combo, 0, notation.FullWeight-wc.Weight); err != nil {
				return err
			}
		}
	}
	return nil
}

// Prune removes combos whose weights are all zero. Such combos are not in
// the range and must not reach the engines.
func (d *Document) Prune() {
	maps.DeleteFunc(d.Combos, func(_ string, weights []float64) bool {
		return !slices.ContainsFunc(weights, func(w float64) bool { return w != 0 })
	})
}
