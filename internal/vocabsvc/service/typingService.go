package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kosakata/vocab-services/internal/comm"
	"github.com/kosakata/vocab-services/internal/vocabsvc/broker"
	"github.com/kosakata/vocab-services/internal/vocabsvc/models"
	"github.com/kosakata/vocab-services/internal/vocabsvc/srs"
	"github.com/kosakata/vocab-services/internal/vocabsvc/store"
)

// TypingService runs the typing drill: one due word at a time, graded by
// fuzzy-matching the typed answer instead of self-assessment. It shares
// the scheduler with the review sessions; a match counts as a full
// correct, a miss as a lapse.
type TypingService struct {
	wordStore   *store.WordStore
	reviewStore *store.ReviewStore
	broker      *broker.Broker
	now         func() time.Time
}

func NewTypingService(wordStore *store.WordStore, reviewStore *store.ReviewStore, b *broker.Broker) *TypingService {
	return &TypingService{
		wordStore:   wordStore,
		reviewStore: reviewStore,
		broker:      b,
		now:         time.Now,
	}
}

// NextWord returns the most urgent due word, or ErrWordNotFound when
// nothing is due.
func (s *TypingService) NextWord(ctx context.Context) (*models.Word, error) {
	now := s.now()
	candidates, err := s.wordStore.GetDueWords(ctx, now)
	if err != nil {
		return nil, err
	}
	due := srs.SelectDue(candidates, now, 1)
	if len(due) == 0 {
		return nil, ErrWordNotFound
	}
	return &due[0], nil
}

// TypingResult is the feedback after one typed answer.
type TypingResult struct {
	Correct      bool      `json:"correct"`
	ActualAnswer string    `json:"actual_answer"`
	NextReview   time.Time `json:"next_review"`
	Streak       int       `json:"streak"`
	IntervalNote string    `json:"interval_note"`
}

// SubmitAnswer grades a typed answer against a word and persists the new
// schedule.
func (s *TypingService) SubmitAnswer(ctx context.Context, userID, wordID int64, userAnswer string, responseTime float64) (*TypingResult, error) {
	word, err := s.wordStore.GetByID(ctx, wordID)
	if err != nil {
		return nil, err
	}
	if word == nil {
		return nil, ErrWordNotFound
	}

	matched := srs.AnswerMatches(userAnswer, word.Indonesian)
	rating := srs.Wrong
	if matched {
		rating = srs.Correct
	}

	res, err := srs.ComputeNext(rating.Quality(), word.IntervalDays, word.EaseFactor, word.Repetitions, s.now())
	if err != nil {
		return nil, err
	}

	streak := 0
	if matched {
		streak = word.Streak + 1
	}

	if err := s.reviewStore.SaveTypingAnswer(ctx, userID, *word, rating.Quality(), res, streak, userAnswer, responseTime); err != nil {
		return nil, err
	}

	s.broker.PublishReviewRecorded(comm.ReviewRecorded{
		UserID:       userID,
		WordID:       word.ID,
		Quality:      rating.Quality(),
		IntervalDays: res.IntervalDays,
		EaseFactor:   res.EaseFactor,
		NextReview:   res.NextReview,
		ReviewedAt:   s.now(),
	})

	note := fmt.Sprintf("Reset to %d day(s)", res.IntervalDays)
	if matched {
		if res.IntervalDays > word.IntervalDays {
			note = fmt.Sprintf("+%d day(s)", res.IntervalDays-word.IntervalDays)
		} else {
			note = "Same interval"
		}
	}

	return &TypingResult{
		Correct:      matched,
		ActualAnswer: word.Indonesian,
		NextReview:   res.NextReview,
		Streak:       streak,
		IntervalNote: note,
	}, nil
}
