package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswerMatches(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		correct string
		want    bool
	}{
		{"exact", "makan", "makan", true},
		{"case and whitespace", "  Makan ", "makan", true},
		{"one typo in a long word", "belajr", "belajar", true},
		{"completely different", "minum", "makan", false},
		{"short word typo misses threshold", "abc", "xyz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnswerMatches(tt.user, tt.correct))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("a", "A"))
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Equal(t, 0.0, Similarity("ab", ""))
	assert.InDelta(t, 0.8, Similarity("abcde", "abcdx"), 1e-9)
}
