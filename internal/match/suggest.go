package match

import (
	"cmp"
	"slices"
)

// MaxSuggestions caps the number of names returned by Suggest.
const MaxSuggestions = 3

// Suggest returns the candidates whose normalized similarity to name is at
// least minScore, best first. Ties are ordered by name. name itself is never
// suggested.
func Suggest(name string, candidates []string, minScore float64) []string {
	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		if score := NormalizedLevenshteinScore(name, c); score >= minScore {
			ranked = append(ranked, scored{name: c, score: score})
		}
	}

	slices.SortFunc(ranked, func(a, b scored) int {
		if a.score != b.score {
			return cmp.Compare(b.score, a.score)
		}

		return cmp.Compare(a.name, b.name)
	})

	if len(ranked) > MaxSuggestions {
		ranked = ranked[:MaxSuggestions]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.name
	}

	return out
}
