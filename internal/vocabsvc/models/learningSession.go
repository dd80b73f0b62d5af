package models

import "time"

// LearningSession is the analytics row for one review session. The live
// session state itself is in-memory; this row only logs start and outcome.
type LearningSession struct {
	ID             int64      `json:"id"`    // Primary key
	Token          string     `json:"token"` // Unique session token
	UserID         int64      `json:"user_id"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	TotalQuestions int        `json:"total_questions"`
	CorrectAnswers int        `json:"correct_answers"`
	AccuracyRate   float64    `json:"accuracy_rate"`
	Completed      bool       `json:"completed"`
}
