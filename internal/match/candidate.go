package match

import "sort"

// minSuggestionScore is the lowest similarity worth suggesting.
const minSuggestionScore = 0.5

// Candidate is a known name scored against an unknown one.
type Candidate struct {
	Name  string
	Score float64
}

// RankCandidates scores every known name against name after normalisation.
// Returns candidates sorted by score (descending), then by name.
func RankCandidates(name string, known []string) []Candidate {
	norm := NormalizeName(name)

	candidates := make([]Candidate, 0, len(known))
	for _, k := range known {
		candidates = append(candidates, Candidate{
			Name:  k,
			Score: LevenshteinNormalized(norm, NormalizeName(k)),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}

		return candidates[i].Name < candidates[j].Name
	})

	return candidates
}

// Suggest returns up to limit known names that are close to name.
func Suggest(name string, known []string, limit int) []string {
	var out []string

	for _, c := range RankCandidates(name, known) {
		if c.Score < minSuggestionScore || len(out) == limit {
			break
		}

		out = append(out, c.Name)
	}

	return out
}
