package similarity

import "sort"

// Match pairs a candidate index with its score.
type Match struct {
	Index int     `json:"index"`
	Score float64 `json:"score"`
}

// TopK ranks the scores descending and returns at most k entries. Ties keep
// the original candidate index order, so the ranking is deterministic.
// Entries scoring below threshold are excluded before truncation; pass a
// negative threshold to keep everything. k <= 0 means no truncation.
func TopK(scores []float64, k int, threshold float64) []Match {
	matches := make([]Match, 0, len(scores))
	for i, s := range scores {
		if s < threshold {
			continue
		}
		matches = append(matches, Match{Index: i, Score: s})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if k > 0 && len(matches) > k {
		matches = matches[:k]
	}
	return matches
}

// TopKVectors ranks candidate vectors by cosine similarity against the query.
// Query and candidates must come from the same fitted vectorizer.
func TopKVectors(query []float64, candidates [][]float64, k int, threshold float64) []Match {
	scores := make([]float64, len(candidates))
	for i, c := range candidates {
		scores[i] = Cosine(query, c)
	}
	return TopK(scores, k, threshold)
}
