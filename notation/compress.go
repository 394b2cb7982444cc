package notation

import (
	"fmt"

	"github.com/lox/rangekit/poker"
)

// WeightedCombo is a combo label with its inclusion percentage (0-100).
type WeightedCombo struct {
	Combo  string
	Weight float64
}

// Bucket holds every combo sharing one inclusion percentage.
type Bucket struct {
	Weight float64
	Combos []poker.Combo
}

// BucketCombos parses the labels and groups combos by identical weight.
// Buckets are returned in order of first appearance.
func BucketCombos(weighted []WeightedCombo) ([]Bucket, error) {
	var buckets []Bucket
	index := make(map[float64]int)

	for _, wc := range weighted {
		c, err := poker.ParseCombo(wc.Combo)
		if err != nil {
			return nil, fmt.Errorf("classify %q: %w", wc.Combo, err)
		}
		i, ok := index[wc.Weight]
		if !ok {
			i = len(buckets)
			index[wc.Weight] = i
			buckets = append(buckets, Bucket{Weight: wc.Weight})
		}
		buckets[i].Combos = append(buckets[i].Combos, c)
	}
	return buckets, nil
}

// ShortenRange compresses a set of combos into notation tokens: pair
// groups high to low, then the non-pair tokens after suited and offsuit
// forms have been merged.
func ShortenRange(combos []poker.Combo) []string {
	return shorten(ClassifyCombos(combos))
}

// ShortenLabels is ShortenRange over unparsed labels.
func ShortenLabels(labels []string) ([]string, error) {
	p, err := Classify(labels)
	if err != nil {
		return nil, err
	}
	return shorten(p), nil
}

func shorten(p Partition) []string {
	tokens := Notations(GroupPairs(p.Pairs))
	offsuit := nonPairTokens(p.Offsuit, poker.Offsuit)
	suited := nonPairTokens(p.Suited, poker.Suited)
	return append(tokens, MergeSuitClasses(offsuit, suited)...)
}

func nonPairTokens(set ComboSet, class poker.SuitClass) []string {
	groups, remaining := GroupNonPairs(set, class)
	tokens := Notations(groups)
	for _, c := range remaining {
		tokens = append(tokens, c.String())
	}
	return tokens
}

// CombosToRangeString compresses weighted combos into a range string for
// the given solver format. Combos are bucketed by weight, each bucket is
// shortened independently and annotated, and the buckets are joined with
// commas.
func CombosToRangeString(weighted []WeightedCombo, formatID string) (string, error) {
	if _, err := LookupFormat(formatID); err != nil {
		return "", err
	}

	buckets, err := BucketCombos(weighted)
	if err != nil {
		return "", err
	}

	tokenBuckets := make([]TokenBucket, 0, len(buckets))
	for _, b := range buckets {
		tokenBuckets = append(tokenBuckets, TokenBucket{
			Weight: b.Weight,
			Tokens: ShortenRange(b.Combos),
		})
	}
	return FormatBuckets(tokenBuckets, formatID)
}
