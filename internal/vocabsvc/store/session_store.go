package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kosakata/vocab-services/internal/vocabsvc/models"
)

type SessionStore struct {
	db *pgxpool.Pool
}

func NewSessionStore(db *pgxpool.Pool) *SessionStore {
	return &SessionStore{db: db}
}

// InsertSession logs the start of a review session.
func (s *SessionStore) InsertSession(ctx context.Context, token string, userID int64, startTime time.Time) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO learning_sessions (session_token, user_id, start_time)
		VALUES ($1, $2, $3)
		ON CONFLICT (session_token) DO NOTHING
	`, token, userID, startTime)
	if err != nil {
		return fmt.Errorf("failed to insert session %s: %w", token, err)
	}
	return nil
}

// CompleteSession closes the analytics row with the final counters.
func (s *SessionStore) CompleteSession(ctx context.Context, token string, totalQuestions, correctAnswers int, accuracyRate float64) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE learning_sessions
		SET end_time = now(), total_questions = $1, correct_answers = $2,
		    accuracy_rate = $3, completed = TRUE
		WHERE session_token = $4
	`, totalQuestions, correctAnswers, accuracyRate, token)
	if err != nil {
		return fmt.Errorf("failed to complete session %s: %w", token, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to complete session %s: no such session", token)
	}
	return nil
}

// SessionOverview is the aggregate block on the admin dashboard.
type SessionOverview struct {
	UniqueUsers    int        `json:"unique_users"`
	TotalSessions  int        `json:"total_sessions"`
	TotalQuestions int        `json:"total_questions"`
	AvgAccuracy    float64    `json:"avg_accuracy"`
	LastActivity   *time.Time `json:"last_activity,omitempty"`
}

// GetOverview aggregates completed sessions.
func (s *SessionStore) GetOverview(ctx context.Context) (*SessionOverview, error) {
	var o SessionOverview
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(DISTINCT user_id),
		       COUNT(*),
		       COALESCE(SUM(total_questions), 0),
		       COALESCE(AVG(accuracy_rate), 0),
		       MAX(end_time)
		FROM learning_sessions
		WHERE completed
	`).Scan(&o.UniqueUsers, &o.TotalSessions, &o.TotalQuestions, &o.AvgAccuracy, &o.LastActivity)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sessions: %w", err)
	}
	return &o, nil
}

// GetRecentSessions returns the most recently completed sessions.
func (s *SessionStore) GetRecentSessions(ctx context.Context, limit int) ([]models.LearningSession, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, session_token, user_id, start_time, end_time,
		       total_questions, correct_answers, accuracy_rate, completed
		FROM learning_sessions
		WHERE completed
		ORDER BY end_time DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.LearningSession
	for rows.Next() {
		var ls models.LearningSession
		if err := rows.Scan(
			&ls.ID,
			&ls.Token,
			&ls.UserID,
			&ls.StartTime,
			&ls.EndTime,
			&ls.TotalQuestions,
			&ls.CorrectAnswers,
			&ls.AccuracyRate,
			&ls.Completed,
		); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		sessions = append(sessions, ls)
	}
	return sessions, rows.Err()
}

// ExportRow is one line of the admin CSV export: a session joined with
// its per-answer review rows.
type ExportRow struct {
	UserID         int64
	StartTime      time.Time
	EndTime        *time.Time
	TotalQuestions int
	CorrectAnswers int
	AccuracyRate   float64
	WordID         *int64
	UserAnswer     *string
	Correct        *bool
	ResponseTime   *float64
}

// GetExportRows joins completed sessions with their review rows by the
// session token, newest session first. Overlapping sessions of one user
// stay disjoint.
func (s *SessionStore) GetExportRows(ctx context.Context) ([]ExportRow, error) {
	rows, err := s.db.Query(ctx, `
		SELECT ls.user_id, ls.start_time, ls.end_time,
		       ls.total_questions, ls.correct_answers, ls.accuracy_rate,
		       r.word_id, r.user_answer, r.correct, r.response_time
		FROM learning_sessions ls
		LEFT JOIN reviews r
		       ON r.session_token = ls.session_token
		WHERE ls.completed
		ORDER BY ls.end_time DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get export rows: %w", err)
	}
	defer rows.Close()

	var out []ExportRow
	for rows.Next() {
		var r ExportRow
		if err := rows.Scan(
			&r.UserID,
			&r.StartTime,
			&r.EndTime,
			&r.TotalQuestions,
			&r.CorrectAnswers,
			&r.AccuracyRate,
			&r.WordID,
			&r.UserAnswer,
			&r.Correct,
			&r.ResponseTime,
		); err != nil {
			return nil, fmt.Errorf("failed to scan export row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
