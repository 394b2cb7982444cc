package notation

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// Supported format identifiers.
const (
	FormatGTOPlus = "gtoplus"
	FormatPio     = "pio"
)

// FullWeight is the inclusion percentage of a combo that is always played.
const FullWeight = 100.0

// ErrUnsupportedFormat is returned for an unknown format identifier.
var ErrUnsupportedFormat = errors.New("unsupported range format")

// Format renders a weight bucket in one solver's syntax.
type Format struct {
	ID    string
	Label string

	annotate func(tokens []string, weight float64) string
}

// Annotate renders the bucket's tokens at the given inclusion percentage.
func (f Format) Annotate(tokens []string, weight float64) string {
	return f.annotate(tokens, weight)
}

var formats = map[string]Format{
	FormatGTOPlus: {
		ID:    FormatGTOPlus,
		Label: "GTO+",
		annotate: func(tokens []string, weight float64) string {
			joined := strings.Join(tokens, ",")
			if weight == FullWeight {
				return joined
			}
			w := roundHalfUp(weight, 1)
			return fmt.Sprintf("[%.1f]%s[/%.1f]", w, joined, w)
		},
	},
	FormatPio: {
		ID:    FormatPio,
		Label: "PioSolver",
		annotate: func(tokens []string, weight float64) string {
			frac := roundHalfUp(weight/100, 2)
			parts := make([]string, len(tokens))
			for i, t := range tokens {
				parts[i] = fmt.Sprintf("%s:%.2f", t, frac)
			}
			return strings.Join(parts, ",")
		},
	},
}

// roundHalfUp rounds a non-negative weight to places decimals with ties
// going up, so 12.25 renders as 12.3 and 0.125 as 0.13.
func roundHalfUp(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// LookupFormat returns the format registered under id.
func LookupFormat(id string) (Format, error) {
	f, ok := formats[id]
	if !ok {
		return Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, id)
	}
	return f, nil
}

// FormatIDs returns every supported format identifier, sorted.
func FormatIDs() []string {
	ids := make([]string, 0, len(formats))
	for id := range formats {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// TokenBucket is the rendered tokens of every combo sharing one weight.
type TokenBucket struct {
	Weight float64
	Tokens []string
}

// FormatBuckets annotates every bucket in the target format and joins them
// with commas. Empty buckets are skipped.
func FormatBuckets(buckets []TokenBucket, formatID string) (string, error) {
	f, err := LookupFormat(formatID)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(buckets))
	for _, b := range buckets {
		if len(b.Tokens) == 0 {
			continue
		}
		parts = append(parts, f.Annotate(b.Tokens, b.Weight))
	}
	return strings.Join(parts, ","), nil
}
