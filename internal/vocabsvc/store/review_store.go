package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kosakata/vocab-services/internal/vocabsvc/models"
	"github.com/kosakata/vocab-services/internal/vocabsvc/srs"
)

type ReviewStore struct {
	db *pgxpool.Pool
}

func NewReviewStore(db *pgxpool.Pool) *ReviewStore {
	return &ReviewStore{db: db}
}

// SaveSessionAnswer persists one graded review: the word's new schedule
// plus the review row, in a single transaction so a session never advances
// past a half-written answer. The token keys the row to the session that
// produced it.
func (s *ReviewStore) SaveSessionAnswer(ctx context.Context, token string, userID int64, word models.Word, quality int, res srs.Result) error {
	return s.save(ctx, token, userID, word, quality, res, word.Streak, "", 0)
}

// SaveTypingAnswer is SaveSessionAnswer for the typing drill, which runs
// outside any session and additionally tracks the answer text, response
// time and the running streak.
func (s *ReviewStore) SaveTypingAnswer(ctx context.Context, userID int64, word models.Word, quality int, res srs.Result, streak int, userAnswer string, responseTime float64) error {
	return s.save(ctx, "", userID, word, quality, res, streak, userAnswer, responseTime)
}

func (s *ReviewStore) save(ctx context.Context, token string, userID int64, word models.Word, quality int, res srs.Result, streak int, userAnswer string, responseTime float64) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin review tx: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()
	_, err = tx.Exec(ctx, `
		UPDATE words
		SET interval_days = $1, repetition_count = $2, ease_factor = $3,
		    next_review = $4, last_reviewed = $5, streak = $6
		WHERE id = $7
	`, res.IntervalDays, res.Repetitions, res.EaseFactor, res.NextReview, now, streak, word.ID)
	if err != nil {
		return fmt.Errorf("failed to update schedule for word %d: %w", word.ID, err)
	}

	var sessionToken any
	if token != "" {
		sessionToken = token
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO reviews (word_id, user_id, quality, correct, user_answer, response_time, session_token)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, word.ID, userID, quality, quality >= 3, userAnswer, responseTime, sessionToken)
	if err != nil {
		return fmt.Errorf("failed to insert review for word %d: %w", word.ID, err)
	}

	return tx.Commit(ctx)
}

// CountReviewsToday counts review rows recorded since midnight UTC.
func (s *ReviewStore) CountReviewsToday(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM reviews WHERE reviewed_at >= date_trunc('day', now() AT TIME ZONE 'utc')
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count today's reviews: %w", err)
	}
	return count, nil
}
