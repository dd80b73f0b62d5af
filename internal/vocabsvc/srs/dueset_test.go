package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kosakata/vocab-services/internal/vocabsvc/models"
)

func word(id int64, due time.Time, difficulty, ease float64) models.Word {
	return models.Word{ID: id, NextReview: due, DifficultyScore: difficulty, EaseFactor: ease}
}

func ids(words []models.Word) []int64 {
	out := make([]int64, len(words))
	for i, w := range words {
		out[i] = w.ID
	}
	return out
}

func TestSelectDueFiltersFutureWords(t *testing.T) {
	asOf := date(2024, time.January, 10)
	words := []models.Word{
		word(1, date(2024, time.January, 9), 1, 2.5),
		word(2, date(2024, time.January, 10), 1, 2.5),
		word(3, date(2024, time.January, 11), 1, 2.5),
	}

	got := SelectDue(words, asOf, 0)
	assert.Equal(t, []int64{1, 2}, ids(got))
	for _, w := range got {
		assert.False(t, DayOf(w.NextReview).After(asOf))
	}
}

func TestSelectDueThreeKeyOrdering(t *testing.T) {
	asOf := date(2024, time.January, 10)

	// A and B tie on date, B is harder; C is due later but still overdue.
	a := word(1, date(2024, time.January, 1), 5, 2.5)
	b := word(2, date(2024, time.January, 1), 8, 2.5)
	c := word(3, date(2024, time.January, 5), 9, 2.5)

	got := SelectDue([]models.Word{a, b, c}, asOf, 2)
	assert.Equal(t, []int64{2, 1}, ids(got))

	// Same inputs permuted select the same two words in the same order.
	got = SelectDue([]models.Word{c, a, b}, asOf, 2)
	assert.Equal(t, []int64{2, 1}, ids(got))
}

func TestSelectDueEaseBreaksDifficultyTie(t *testing.T) {
	asOf := date(2024, time.January, 10)
	due := date(2024, time.January, 1)

	hardHistory := word(1, due, 5, 1.5)
	easyHistory := word(2, due, 5, 2.8)

	got := SelectDue([]models.Word{easyHistory, hardHistory}, asOf, 0)
	assert.Equal(t, []int64{1, 2}, ids(got))
}

func TestSelectDueStableOnFullTie(t *testing.T) {
	asOf := date(2024, time.January, 10)
	due := date(2024, time.January, 1)

	words := []models.Word{
		word(7, due, 5, 2.5),
		word(3, due, 5, 2.5),
		word(9, due, 5, 2.5),
	}

	got := SelectDue(words, asOf, 0)
	assert.Equal(t, []int64{7, 3, 9}, ids(got))
}

func TestSelectDueTruncation(t *testing.T) {
	asOf := date(2024, time.January, 10)
	var words []models.Word
	for i := int64(1); i <= 5; i++ {
		words = append(words, word(i, date(2024, time.January, int(i)), 1, 2.5))
	}

	got := SelectDue(words, asOf, 3)
	require.Len(t, got, 3)
	assert.Equal(t, []int64{1, 2, 3}, ids(got))

	// Fewer due than requested is fine, not an error.
	got = SelectDue(words[:2], asOf, 10)
	assert.Len(t, got, 2)
}

func TestSelectDueUnreviewedWordIsDueImmediately(t *testing.T) {
	asOf := date(2024, time.January, 10)
	fresh := models.Word{ID: 1, EaseFactor: 2.5} // zero NextReview
	reviewed := word(2, date(2024, time.January, 8), 1, 2.5)

	got := SelectDue([]models.Word{reviewed, fresh}, asOf, 0)
	require.Len(t, got, 2)
	// Epoch due date sorts the unseen word first.
	assert.Equal(t, []int64{1, 2}, ids(got))
}

func TestSelectDueEmptyInput(t *testing.T) {
	got := SelectDue(nil, date(2024, time.January, 10), 5)
	assert.Empty(t, got)
}
