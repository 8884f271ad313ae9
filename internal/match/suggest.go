package match

import (
	"sort"
)

// DefaultThreshold is the minimum similarity Suggest accepts by default.
const DefaultThreshold = 0.7

// Candidate is a known name with its similarity to the queried one.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank scores every known name against name. The result is sorted by score,
// best first, with ties broken alphabetically.
func Rank(name string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))
	for _, k := range known {
		candidates = append(candidates, Candidate{Name: k, Score: NormalizedSimilarity(name, k)})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns the known name most similar to name when its score
// reaches threshold. An exact match after normalization is returned too.
func Suggest(name string, known []string, threshold float64) (string, bool) {
	best := Rank(name, known).Top(1)
	if len(best) == 0 || best[0].Score < threshold {
		return "", false
	}

	return best[0].Name, true
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns at most n candidates from the head of the list.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}
