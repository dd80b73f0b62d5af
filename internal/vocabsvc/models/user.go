package models

import (
	"time"
)

// User represents the users table in the database. Learners identify
// themselves with an anonymous class code, no real account needed.
type User struct {
	UserId    int64     `json:"user_id"`
	AnonCode  string    `json:"anon_code"`
	ClassName string    `json:"class_name,omitempty"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
