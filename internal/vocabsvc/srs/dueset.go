package srs

import (
	"sort"
	"time"

	"github.com/kosakata/vocab-services/internal/vocabsvc/models"
)

// SelectDue filters words due on or before asOf and orders them for review.
//
// Ordering is a three-key tie-break, each key consulted only when the
// previous one ties: due date ascending (most overdue first), difficulty
// score descending, ease factor ascending. The sort is stable, so words
// equal on all three keys keep their incoming order. The result is
// truncated to max entries; max <= 0 means no limit.
//
// A zero NextReview counts as due immediately.
func SelectDue(words []models.Word, asOf time.Time, max int) []models.Word {
	asOfDay := DayOf(asOf)

	due := make([]models.Word, 0, len(words))
	for _, w := range words {
		if !DayOf(w.NextReview).After(asOfDay) {
			due = append(due, w)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		di, dj := DayOf(due[i].NextReview), DayOf(due[j].NextReview)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		if due[i].DifficultyScore != due[j].DifficultyScore {
			return due[i].DifficultyScore > due[j].DifficultyScore
		}
		return due[i].EaseFactor < due[j].EaseFactor
	})

	if max > 0 && len(due) > max {
		due = due[:max]
	}
	return due
}
