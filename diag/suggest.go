package diag

import (
	"github.com/lithammer/fuzzysearch/fuzzy"
)

var builtinTypes = []string{"int", "float", "bool", "str"}

// IsBuiltinType reports whether name is one of the builtin type names.
func IsBuiltinType(name string) bool {
	for _, t := range builtinTypes {
		if name == t {
			return true
		}
	}
	return false
}

// NearestType returns the builtin type name closest to name, or ""
// when nothing is close enough to be worth suggesting. Subsequence
// matches rank first; otherwise small edit distances on names of
// similar length count, so transpositions like "itn" still find "int"
// without longer names collapsing onto their shortest suffix.
func NearestType(name string) string {
	best := ""
	bestScore := -1
	for _, candidate := range builtinTypes {
		score := fuzzy.RankMatchNormalizedFold(name, candidate)
		if score < 0 {
			score = fuzzy.LevenshteinDistance(name, candidate)
			if score > 2 || score >= len(name) || len(name) > len(candidate)+1 {
				continue
			}
		}
		if best == "" || score < bestScore {
			best = candidate
			bestScore = score
		}
	}
	return best
}
