package notation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lox/rangekit/poker"
)

// ErrInvalidNotation is returned when a range string cannot be parsed.
var ErrInvalidNotation = errors.New("invalid range notation")

// Expand returns the combos described by a single notation token, highest
// first. It accepts everything the compressor produces: "AA", "AKs", "AK",
// "TT+", "99-66", "ATs+", "AJ+", "KQo-K9o" and "KQ-K9".
func Expand(token string) ([]poker.Combo, error) {
	token = strings.TrimSpace(token)
	switch {
	case strings.HasSuffix(token, "+"):
		return expandPlus(token)
	case strings.Contains(token, "-"):
		return expandDash(token)
	default:
		return expandSingle(token)
	}
}

func expandSingle(token string) ([]poker.Combo, error) {
	r1, r2, classes, err := parseBase(token)
	if err != nil {
		return nil, err
	}
	if r1 == r2 {
		return []poker.Combo{poker.NewPair(r1)}, nil
	}

	combos := make([]poker.Combo, 0, len(classes))
	for _, class := range classes {
		combos = append(combos, poker.NewCombo(r1, r2, class))
	}
	return combos, nil
}

// expandPlus handles "TT+" (TT up to AA) and "ATs+" (AT up to AK).
func expandPlus(token string) ([]poker.Combo, error) {
	base := strings.TrimSuffix(token, "+")
	r1, r2, classes, err := parseBase(base)
	if err != nil {
		return nil, err
	}

	var combos []poker.Combo
	if r1 == r2 {
		for r := poker.Ace; r >= r1; r-- {
			combos = append(combos, poker.NewPair(r))
			if r == poker.Two {
				break
			}
		}
		return combos, nil
	}

	high, low := max(r1, r2), min(r1, r2)
	for kicker := high - 1; kicker >= low; kicker-- {
		for _, class := range classes {
			combos = append(combos, poker.NewCombo(high, kicker, class))
		}
		if kicker == poker.Two {
			break
		}
	}
	return combos, nil
}

// expandDash handles "99-66" and "KQs-K9s".
func expandDash(token string) ([]poker.Combo, error) {
	start, end, ok := strings.Cut(token, "-")
	if !ok || strings.Contains(end, "-") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNotation, token)
	}

	s1, s2, startClasses, err := parseBase(start)
	if err != nil {
		return nil, err
	}
	e1, e2, endClasses, err := parseBase(end)
	if err != nil {
		return nil, err
	}

	if s1 == s2 && e1 == e2 {
		var combos []poker.Combo
		for r := max(s1, e1); r >= min(s1, e1); r-- {
			combos = append(combos, poker.NewPair(r))
			if r == poker.Two {
				break
			}
		}
		return combos, nil
	}

	high := max(s1, s2)
	if s1 == s2 || e1 == e2 || high != max(e1, e2) || len(startClasses) != len(endClasses) || start[2:] != end[2:] {
		return nil, fmt.Errorf("%w: %q mixes anchors or suit classes", ErrInvalidNotation, token)
	}

	from, to := min(s1, s2), min(e1, e2)
	var combos []poker.Combo
	for kicker := max(from, to); kicker >= min(from, to); kicker-- {
		for _, class := range startClasses {
			combos = append(combos, poker.NewCombo(high, kicker, class))
		}
		if kicker == poker.Two {
			break
		}
	}
	return combos, nil
}

// parseBase parses two ranks and an optional suffix. A two-rank non-pair
// base with no suffix stands for both suit classes.
func parseBase(base string) (poker.Rank, poker.Rank, []poker.SuitClass, error) {
	if len(base) < 2 || len(base) > 3 {
		return 0, 0, nil, fmt.Errorf("%w: %q", ErrInvalidNotation, base)
	}
	r1, err := poker.ParseRank(base[0])
	if err != nil {
		return 0, 0, nil, fmt.Errorf("%w %q: %w", ErrInvalidNotation, base, err)
	}
	r2, err := poker.ParseRank(base[1])
	if err != nil {
		return 0, 0, nil, fmt.Errorf("%w %q: %w", ErrInvalidNotation, base, err)
	}

	if r1 == r2 {
		if len(base) == 3 {
			return 0, 0, nil, fmt.Errorf("%w: pair %q cannot be suited or offsuit", ErrInvalidSuitSuffix, base)
		}
		return r1, r2, []poker.SuitClass{poker.Pair}, nil
	}
	if len(base) == 2 {
		return r1, r2, []poker.SuitClass{poker.Suited, poker.Offsuit}, nil
	}
	switch base[2] {
	case 's':
		return r1, r2, []poker.SuitClass{poker.Suited}, nil
	case 'o':
		return r1, r2, []poker.SuitClass{poker.Offsuit}, nil
	default:
		return 0, 0, nil, fmt.Errorf("%w: %q in %q", ErrInvalidSuitSuffix, base[2], base)
	}
}

// ExpandRange expands a comma separated list of tokens. Duplicates are
// dropped, keeping the first occurrence.
func ExpandRange(notation string) ([]poker.Combo, error) {
	seen := ComboSet{}
	var combos []poker.Combo
	for part := range strings.SplitSeq(notation, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		expanded, err := Expand(part)
		if err != nil {
			return nil, fmt.Errorf("invalid range part %q: %w", part, err)
		}
		for _, c := range expanded {
			if !seen.Has(c) {
				seen.Add(c)
				combos = append(combos, c)
			}
		}
	}
	return combos, nil
}

// ParseRangeString reads a range string in the given format back into
// weighted combos. A combo listed twice keeps its first weight.
func ParseRangeString(s, formatID string) ([]WeightedCombo, error) {
	if _, err := LookupFormat(formatID); err != nil {
		return nil, err
	}

	var segments []TokenBucket
	var err error
	switch formatID {
	case FormatPio:
		segments, err = scanPio(s)
	default:
		segments, err = scanGTOPlus(s)
	}
	if err != nil {
		return nil, err
	}

	seen := ComboSet{}
	var out []WeightedCombo
	for _, seg := range segments {
		for _, token := range seg.Tokens {
			combos, err := Expand(token)
			if err != nil {
				return nil, fmt.Errorf("invalid range part %q: %w", token, err)
			}
			for _, c := range combos {
				if seen.Has(c) {
					continue
				}
				seen.Add(c)
				out = append(out, WeightedCombo{Combo: c.String(), Weight: seg.Weight})
			}
		}
	}
	return out, nil
}

// scanGTOPlus splits "AA,[50.0]KK,QQ[/50.0]" into weighted segments.
func scanGTOPlus(s string) ([]TokenBucket, error) {
	s = strings.ReplaceAll(s, " ", "")
	var segments []TokenBucket

	for len(s) > 0 {
		switch s[0] {
		case ',':
			s = s[1:]

		case '[':
			open := strings.IndexByte(s, ']')
			if open < 0 {
				return nil, fmt.Errorf("%w: unterminated weight tag", ErrInvalidNotation)
			}
			label := s[1:open]
			weight, err := strconv.ParseFloat(label, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: weight %q: %w", ErrInvalidNotation, label, err)
			}
			closing := "[/" + label + "]"
			rest := s[open+1:]
			body, after, ok := strings.Cut(rest, closing)
			if !ok {
				return nil, fmt.Errorf("%w: missing %s", ErrInvalidNotation, closing)
			}
			segments = append(segments, TokenBucket{Weight: weight, Tokens: splitTokens(body)})
			s = after

		default:
			end := strings.IndexAny(s, ",[")
			if end < 0 {
				end = len(s)
			}
			segments = append(segments, TokenBucket{Weight: FullWeight, Tokens: []string{s[:end]}})
			s = s[end:]
		}
	}
	return segments, nil
}

// scanPio splits "AA:1.00,KK:0.50" into weighted segments. Tokens without
// a weight are fully included.
func scanPio(s string) ([]TokenBucket, error) {
	var segments []TokenBucket
	for _, part := range splitTokens(s) {
		token, frac, ok := strings.Cut(part, ":")
		weight := FullWeight
		if ok {
			v, err := strconv.ParseFloat(frac, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: weight %q: %w", ErrInvalidNotation, frac, err)
			}
			weight = math.Round(v*10000) / 100
		}
		segments = append(segments, TokenBucket{Weight: weight, Tokens: []string{token}})
	}
	return segments, nil
}

func splitTokens(s string) []string {
	var tokens []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}
