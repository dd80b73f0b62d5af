package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRating(t *testing.T) {
	tests := []struct {
		in   string
		want Rating
	}{
		{"correct", Correct},
		{"partial", Partial},
		{"wrong", Wrong},
		{"  Correct ", Correct},
		{"WRONG", Wrong},
	}
	for _, tt := range tests {
		got, err := ParseRating(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseRating("meh")
	assert.ErrorIs(t, err, ErrInvalidRating)
	_, err = ParseRating("")
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestRatingQuality(t *testing.T) {
	// Wrong lands below the SM-2 success threshold, the others at or above.
	assert.Equal(t, 0, Wrong.Quality())
	assert.Equal(t, 3, Partial.Quality())
	assert.Equal(t, 5, Correct.Quality())
}

func TestRatingString(t *testing.T) {
	assert.Equal(t, "correct", Correct.String())
	assert.Equal(t, "rating(9)", Rating(9).String())
}
