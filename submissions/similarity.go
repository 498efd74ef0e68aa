package submissions

import (
	"fmt"
	"strings"
)

// similarityLimit is the exclusive Jaccard threshold above which a
// candidate counts as a near-duplicate.
const similarityLimit = 0.8

// JaccardSimilarity computes word-set overlap between two texts:
// |intersection| / |union| of their lowercase whitespace-tokenized word
// sets. Either side being empty yields 0.
func JaccardSimilarity(a, b string) float64 {
	wordsA := wordSet(a)
	wordsB := wordSet(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	var intersection int
	for w := range wordsA {
		if _, ok := wordsB[w]; ok {
			intersection++
		}
	}
	union := len(wordsA) + len(wordsB) - intersection
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = struct{}{}
	}
	return set
}

// CheckSimilarity compares a candidate body against the existing corpus
// and returns a rejection message naming the offending ratio when any
// pairwise similarity exceeds the limit. O(corpus x body length): fine at
// moderation-queue scale, never applied to comments.
func CheckSimilarity(body string, corpus []string) string {
	for _, existing := range corpus {
		if sim := JaccardSimilarity(body, existing); sim > similarityLimit {
			return fmt.Sprintf("rejected: submission is too similar to an existing submission (%.0f%% similarity), please submit original content", sim*100)
		}
	}
	return ""
}
