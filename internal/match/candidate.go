package match

import (
	"sort"
)

// DefaultThreshold is the minimal similarity for a name to be suggested.
const DefaultThreshold = 0.6

// Candidate is a property name scored against a wanted name.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is sorted by descending score.
type CandidateList []Candidate

// Rank scores every name against wanted and keeps those reaching threshold.
// Ties are broken alphabetically so results are stable.
func Rank(wanted string, names []string, threshold float64) CandidateList {
	var list CandidateList

	for _, name := range names {
		score := Similarity(wanted, name)
		if score >= threshold {
			list = append(list, Candidate{Name: name, Score: score})
		}
	}

	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Score != list[j].Score {
			return list[i].Score > list[j].Score
		}

		return list[i].Name < list[j].Name
	})

	return list
}

// Top returns at most n candidate names.
func (l CandidateList) Top(n int) []string {
	if n > len(l) {
		n = len(l)
	}

	out := make([]string, 0, n)
	for _, c := range l[:n] {
		out = append(out, c.Name)
	}

	return out
}
