package comm

import (
	"time"
)

// Subjects for vocab events on NATS.
const (
	SubjectReviewRecorded   = "vocab.review.recorded"
	SubjectSessionCompleted = "vocab.session.completed"
)

// ReviewRecorded is published after each persisted answer so the
// analytics consumer can follow along without polling the database.
type ReviewRecorded struct {
	UserID       int64     `json:"user_id"`
	WordID       int64     `json:"word_id"`
	Quality      int       `json:"quality"`
	IntervalDays int       `json:"interval_days"`
	EaseFactor   float64   `json:"ease_factor"`
	NextReview   time.Time `json:"next_review"`
	ReviewedAt   time.Time `json:"reviewed_at"`
}

// SessionCompleted is published once when a session reaches its end.
type SessionCompleted struct {
	Token          string    `json:"token"`
	UserID         int64     `json:"user_id"`
	TotalQuestions int       `json:"total_questions"`
	CorrectAnswers int       `json:"correct_answers"`
	AccuracyRate   float64   `json:"accuracy_rate"`
	CompletedAt    time.Time `json:"completed_at"`
}
