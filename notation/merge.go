package notation

import "strings"

// MergeSuitClasses combines offsuit and suited tokens that describe the same
// ranks. When "AKo" and "AKs" (or "AJo+" and "AJs+") are both present the
// pair is replaced by one suffix-less token, "AK" or "AJ+".
//
// Merged tokens come first in offsuit order, followed by the unmatched
// offsuit tokens and then the unmatched suited tokens, each in input order.
func MergeSuitClasses(offsuit, suited []string) []string {
	suitedSet := make(map[string]bool, len(suited))
	for _, t := range suited {
		suitedSet[t] = true
	}

	merged := make(map[string]bool)
	out := make([]string, 0, len(offsuit)+len(suited))
	for _, t := range offsuit {
		if !suitedSet[strings.ReplaceAll(t, "o", "s")] {
			continue
		}
		bare := strings.ReplaceAll(t, "o", "")
		if merged[bare] {
			continue
		}
		merged[bare] = true
		out = append(out, bare)
	}

	for _, t := range offsuit {
		if !merged[strings.ReplaceAll(t, "o", "")] {
			out = append(out, t)
		}
	}
	for _, t := range suited {
		if !merged[strings.ReplaceAll(t, "s", "")] {
			out = append(out, t)
		}
	}
	return out
}
