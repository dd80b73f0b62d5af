package srs

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// MatchThreshold is the minimum similarity for a typed answer to count
// as correct.
const MatchThreshold = 0.8

// AnswerMatches reports whether a typed answer is close enough to the
// expected one. Comparison is case-insensitive on trimmed input; small
// typos are forgiven via edit-distance similarity.
func AnswerMatches(userAnswer, correctAnswer string) bool {
	return Similarity(userAnswer, correctAnswer) >= MatchThreshold
}

// Similarity returns a 0..1 score between two answers, 1 for an exact
// match after normalization.
func Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return 1
	}
	longest := len([]rune(a))
	if n := len([]rune(b)); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
