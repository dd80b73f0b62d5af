package srs

import (
	"fmt"
	"math"
	"time"
)

const (
	// MinEase is the SM-2 ease factor floor.
	MinEase = 1.3
	// DefaultEase is the ease factor assigned to words with no review history.
	DefaultEase = 2.5

	minQuality = 0
	maxQuality = 5
)

// Result is the updated scheduling state produced by one review.
type Result struct {
	IntervalDays int       `json:"new_interval"`
	EaseFactor   float64   `json:"new_ease"`
	Repetitions  int       `json:"new_repetition_count"`
	NextReview   time.Time `json:"next_review_date"`
}

// ComputeNext runs one step of the SM-2 schedule.
//
// quality is the 0-5 recall grade; below 3 is a lapse, which resets the
// repetition streak and puts the word back on daily review. On success the
// interval follows the 1, 6, round(interval*ease) ladder. The ease factor
// is adjusted on every call and clamped to MinEase.
//
// today is injected by the caller; the next review lands at day granularity
// (midnight UTC), today + the new interval.
func ComputeNext(quality, intervalDays int, ease float64, repetitions int, today time.Time) (Result, error) {
	if quality < minQuality || quality > maxQuality {
		return Result{}, fmt.Errorf("%w: quality %d out of range 0-5", ErrInvalidRating, quality)
	}

	var newInterval, newReps int
	if quality < 3 {
		newReps = 0
		newInterval = 1
	} else {
		newReps = repetitions + 1
		switch newReps {
		case 1:
			newInterval = 1
		case 2:
			newInterval = 6
		default:
			newInterval = int(math.Round(float64(intervalDays) * ease))
		}
	}

	q := float64(5 - quality)
	newEase := ease + (0.1 - q*(0.08+q*0.02))
	if newEase < MinEase {
		newEase = MinEase
	}

	return Result{
		IntervalDays: newInterval,
		EaseFactor:   newEase,
		Repetitions:  newReps,
		NextReview:   DayOf(today).AddDate(0, 0, newInterval),
	}, nil
}

// DayOf truncates t to midnight UTC. Scheduling works at day granularity;
// time of day never matters.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
