package models

import "time"

// Review records one graded answer against a word.
type Review struct {
	ID           int64     `json:"id"`      // Primary key
	WordID       int64     `json:"word_id"` // FK to words(id)
	UserID       int64     `json:"user_id"` // FK to users(user_id)
	Quality      int       `json:"quality"` // 0-5 SM-2 grade
	Correct      bool      `json:"correct"`
	UserAnswer   string    `json:"user_answer,omitempty"`
	ResponseTime float64   `json:"response_time,omitempty"` // Seconds
	ReviewedAt   time.Time `json:"reviewed_at"`
}
