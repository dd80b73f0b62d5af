package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeNextSuccess(t *testing.T) {
	// Third consecutive success multiplies the interval by the ease factor.
	res, err := ComputeNext(4, 6, 2.5, 2, date(2024, time.January, 10))
	require.NoError(t, err)

	assert.Equal(t, 3, res.Repetitions)
	assert.Equal(t, 15, res.IntervalDays) // round(6 * 2.5)
	// 2.5 + (0.1 - 1*(0.08 + 1*0.02)) = 2.5: quality 4 leaves ease unchanged
	assert.InDelta(t, 2.5, res.EaseFactor, 1e-9)
	assert.Equal(t, date(2024, time.January, 25), res.NextReview)
}

func TestComputeNextFailureResets(t *testing.T) {
	res, err := ComputeNext(1, 6, 2.5, 2, date(2024, time.January, 10))
	require.NoError(t, err)

	assert.Equal(t, 0, res.Repetitions)
	assert.Equal(t, 1, res.IntervalDays)
	assert.Equal(t, date(2024, time.January, 11), res.NextReview)
	// 2.5 + (0.1 - 4*(0.08 + 4*0.02)) = 1.96, above the floor
	assert.InDelta(t, 1.96, res.EaseFactor, 1e-9)
}

func TestComputeNextIntervalLadder(t *testing.T) {
	today := date(2024, time.March, 1)

	tests := []struct {
		name         string
		quality      int
		intervalDays int
		ease         float64
		repetitions  int
		wantInterval int
		wantReps     int
	}{
		{"first success after reset", 5, 14, 2.5, 0, 1, 1},
		{"second consecutive success", 4, 1, 2.5, 1, 6, 2},
		{"third success", 3, 6, 2.0, 2, 12, 3},
		{"fourth success", 5, 12, 2.0, 3, 24, 4},
		{"partial counts as success", 3, 20, 1.5, 0, 1, 1},
		{"quality 2 is a lapse", 2, 30, 2.8, 5, 1, 0},
		{"quality 0 is a lapse", 0, 30, 2.8, 5, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ComputeNext(tt.quality, tt.intervalDays, tt.ease, tt.repetitions, today)
			require.NoError(t, err)
			assert.Equal(t, tt.wantInterval, res.IntervalDays)
			assert.Equal(t, tt.wantReps, res.Repetitions)
			assert.Equal(t, today.AddDate(0, 0, tt.wantInterval), res.NextReview)
		})
	}
}

func TestComputeNextEaseFloor(t *testing.T) {
	for q := 0; q <= 5; q++ {
		res, err := ComputeNext(q, 1, MinEase, 0, date(2024, time.June, 1))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.EaseFactor, MinEase, "quality %d", q)
	}
}

func TestComputeNextEaseAdjustment(t *testing.T) {
	today := date(2024, time.June, 1)

	// Quality 5 grows ease, quality 4 leaves it unchanged, quality 3 shrinks it.
	r5, err := ComputeNext(5, 6, 2.5, 2, today)
	require.NoError(t, err)
	r4, err := ComputeNext(4, 6, 2.5, 2, today)
	require.NoError(t, err)
	r3, err := ComputeNext(3, 6, 2.5, 2, today)
	require.NoError(t, err)

	assert.InDelta(t, 2.6, r5.EaseFactor, 1e-9)
	assert.InDelta(t, 2.5, r4.EaseFactor, 1e-9)
	assert.InDelta(t, 2.36, r3.EaseFactor, 1e-9)
}

func TestComputeNextInvalidQuality(t *testing.T) {
	for _, q := range []int{-1, 6, 42} {
		_, err := ComputeNext(q, 1, 2.5, 0, date(2024, time.June, 1))
		assert.ErrorIs(t, err, ErrInvalidRating, "quality %d", q)
	}
}

func TestComputeNextDayGranularity(t *testing.T) {
	// Afternoon local time still schedules at midnight UTC.
	noonish := time.Date(2024, time.January, 10, 17, 45, 12, 0, time.UTC)
	res, err := ComputeNext(5, 1, 2.5, 0, noonish)
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.January, 11), res.NextReview)
}

func TestDayOf(t *testing.T) {
	in := time.Date(2024, time.May, 3, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, date(2024, time.May, 3), DayOf(in))
	assert.Equal(t, DayOf(in), DayOf(date(2024, time.May, 3)))
}
