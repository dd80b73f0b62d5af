package models

import "time"

// Word represents one row of the words table: a vocabulary entry together
// with its spaced-repetition state. A zero NextReview means the word has
// never been reviewed and is due immediately.
type Word struct {
	ID              int64      `json:"id"`               // Primary key
	English         string     `json:"english"`          // Prompt side
	Indonesian      string     `json:"indonesian"`       // Answer side
	PartOfSpeech    string     `json:"part_of_speech"`   // e.g. 'noun', 'verb'
	ExampleSentence string     `json:"example_sentence"` //
	DifficultyScore float64    `json:"difficulty_score"` // External ranking hint, higher = needs attention
	IntervalDays    int        `json:"interval_days"`    // Days until next review, >= 1
	EaseFactor      float64    `json:"ease_factor"`      // SM-2 multiplier, >= 1.3
	Repetitions     int        `json:"repetition_count"` // Consecutive successes since last lapse
	NextReview      time.Time  `json:"next_review_date"` // Day-granularity due date (UTC)
	LastReviewed    *time.Time `json:"last_reviewed,omitempty"`
	Streak          int        `json:"streak"` // Typing-drill streak, resets on a miss
	AddedAt         time.Time  `json:"added_date"`
}
