package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kosakata/vocab-services/internal/vocabsvc/models"
	"github.com/kosakata/vocab-services/internal/vocabsvc/srs"
)

const wordColumns = `id, english, indonesian, part_of_speech, example_sentence,
		difficulty_score, interval_days, repetition_count, ease_factor,
		next_review, last_reviewed, streak, added_date`

type WordStore struct {
	db *pgxpool.Pool
}

func NewWordStore(db *pgxpool.Pool) *WordStore {
	return &WordStore{db: db}
}

func scanWord(row pgx.Row) (*models.Word, error) {
	w := &models.Word{}
	err := row.Scan(
		&w.ID,
		&w.English,
		&w.Indonesian,
		&w.PartOfSpeech,
		&w.ExampleSentence,
		&w.DifficultyScore,
		&w.IntervalDays,
		&w.Repetitions,
		&w.EaseFactor,
		&w.NextReview,
		&w.LastReviewed,
		&w.Streak,
		&w.AddedAt,
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (s *WordStore) GetByID(ctx context.Context, id int64) (*models.Word, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+wordColumns+`
		FROM words
		WHERE id = $1
	`, id)

	w, err := scanWord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get word %d: %w", id, err)
	}
	return w, nil
}

func (s *WordStore) ListWords(ctx context.Context) ([]models.Word, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+wordColumns+`
		FROM words
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}
	defer rows.Close()

	return collectWords(rows)
}

// GetDueWords returns every word due on or before asOf, roughly ordered by
// due date. Final review ordering and truncation is the due-set
// selector's job; this query only narrows the candidate set.
func (s *WordStore) GetDueWords(ctx context.Context, asOf time.Time) ([]models.Word, error) {
	cutoff := srs.DayOf(asOf).AddDate(0, 0, 1)
	rows, err := s.db.Query(ctx, `
		SELECT `+wordColumns+`
		FROM words
		WHERE next_review < $1
		ORDER BY next_review ASC, id ASC
	`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to get due words: %w", err)
	}
	defer rows.Close()

	return collectWords(rows)
}

func (s *WordStore) CountDue(ctx context.Context, asOf time.Time) (int, error) {
	cutoff := srs.DayOf(asOf).AddDate(0, 0, 1)
	var count int
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM words WHERE next_review < $1
	`, cutoff).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count due words: %w", err)
	}
	return count, nil
}

func (s *WordStore) InsertWord(ctx context.Context, w models.Word) (int64, error) {
	var id int64
	err := s.db.QueryRow(ctx, `
		INSERT INTO words (english, indonesian, part_of_speech, example_sentence, difficulty_score)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, w.English, w.Indonesian, w.PartOfSpeech, w.ExampleSentence, w.DifficultyScore).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert word %q: %w", w.English, err)
	}
	return id, nil
}

// VocabStats is the aggregate block for the learner dashboard. A word
// counts as mastered after masteredThreshold consecutive successes.
type VocabStats struct {
	TotalWords    int     `json:"total_words"`
	MasteredWords int     `json:"mastered_words"`
	AvgEase       float64 `json:"avg_ease"`
}

const masteredThreshold = 4

func (s *WordStore) GetStats(ctx context.Context) (*VocabStats, error) {
	var st VocabStats
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE repetition_count >= $1),
		       COALESCE(AVG(ease_factor), 0)
		FROM words
	`, masteredThreshold).Scan(&st.TotalWords, &st.MasteredWords, &st.AvgEase)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate word stats: %w", err)
	}
	return &st, nil
}

func collectWords(rows pgx.Rows) ([]models.Word, error) {
	var words []models.Word
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan word row: %w", err)
		}
		words = append(words, *w)
	}
	return words, rows.Err()
}
