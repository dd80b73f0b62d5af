package srs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the srs package. Check with errors.Is.
var (
	ErrInvalidRating = errors.New("srs: invalid rating")
)

// Rating is the three-bucket grade the client collects for a review.
type Rating int

const (
	Wrong Rating = iota
	Partial
	Correct
)

var ratingNames = [...]string{Wrong: "wrong", Partial: "partial", Correct: "correct"}

// ParseRating maps the wire value ("wrong", "partial", "correct") to a Rating.
func ParseRating(s string) (Rating, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrong":
		return Wrong, nil
	case "partial":
		return Partial, nil
	case "correct":
		return Correct, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRating, s)
}

func (r Rating) String() string {
	if r >= Wrong && r <= Correct {
		return ratingNames[r]
	}
	return fmt.Sprintf("rating(%d)", int(r))
}

// Quality maps the three buckets onto the 0-5 SM-2 scale.
// Wrong=0 and Partial=3 and Correct=5; anything below 3 counts as a lapse.
func (r Rating) Quality() int {
	switch r {
	case Wrong:
		return 0
	case Partial:
		return 3
	default:
		return 5
	}
}
