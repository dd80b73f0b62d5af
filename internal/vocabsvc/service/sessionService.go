package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/kosakata/vocab-services/internal/comm"
	"github.com/kosakata/vocab-services/internal/vocabsvc/broker"
	"github.com/kosakata/vocab-services/internal/vocabsvc/models"
	"github.com/kosakata/vocab-services/internal/vocabsvc/session"
	"github.com/kosakata/vocab-services/internal/vocabsvc/srs"
	"github.com/kosakata/vocab-services/internal/vocabsvc/store"
)

// DefaultSessionSize is used when the client does not ask for a size.
const DefaultSessionSize = 10

// SessionService wires the session coordinator to the stores and keeps
// the live sessions in its manager.
type SessionService struct {
	wordStore    *store.WordStore
	reviewStore  *store.ReviewStore
	sessionStore *store.SessionStore
	manager      *session.Manager
	broker       *broker.Broker
	now          func() time.Time
}

func NewSessionService(wordStore *store.WordStore, reviewStore *store.ReviewStore,
	sessionStore *store.SessionStore, b *broker.Broker) *SessionService {
	return &SessionService{
		wordStore:    wordStore,
		reviewStore:  reviewStore,
		sessionStore: sessionStore,
		manager:      session.NewManager(),
		broker:       b,
		now:          time.Now,
	}
}

// sessionAnswerStore is the slice of the review store a session writes
// through.
type sessionAnswerStore interface {
	SaveSessionAnswer(ctx context.Context, token string, userID int64, word models.Word, quality int, res srs.Result) error
}

// sessionAnswerWriter binds a session token to the review store so every
// answer row records which session produced it.
type sessionAnswerWriter struct {
	store sessionAnswerStore
	token string
}

func (w sessionAnswerWriter) SaveAnswer(ctx context.Context, userID int64, word models.Word, quality int, res srs.Result) error {
	return w.store.SaveSessionAnswer(ctx, w.token, userID, word, quality, res)
}

// StartResult is what the client needs to run a session: the token to
// answer against and the ordered word snapshot.
type StartResult struct {
	Token string        `json:"session_token"`
	Words []models.Word `json:"items"`
}

// StartSession snapshots the due set and opens a session over it.
// Returns session.ErrNoCardsAvailable when nothing is due.
func (s *SessionService) StartSession(ctx context.Context, userID int64, size int) (*StartResult, error) {
	if size <= 0 {
		size = DefaultSessionSize
	}

	now := s.now()
	candidates, err := s.wordStore.GetDueWords(ctx, now)
	if err != nil {
		return nil, err
	}
	due := srs.SelectDue(candidates, now, size)

	token := uuid.NewString()
	coord := session.NewCoordinator(userID, sessionAnswerWriter{store: s.reviewStore, token: token}, s.now)
	if err := coord.Start(due); err != nil {
		return nil, err
	}
	s.manager.Add(token, coord)

	// Analytics row; a failed write must not cost the learner the session.
	if err := s.sessionStore.InsertSession(ctx, token, userID, now); err != nil {
		log.Errorf("Error logging session start %s", err)
	}

	return &StartResult{Token: token, Words: due}, nil
}

// AnswerResult is the outcome of one graded answer.
type AnswerResult struct {
	WordID   int64            `json:"word_id"`
	Schedule srs.Result       `json:"schedule"`
	Progress session.Progress `json:"progress"`
	State    string           `json:"state"`
}

// RecordAnswer grades the session's current word. On a persistence
// failure the session does not advance and the same rating can be
// resubmitted.
func (s *SessionService) RecordAnswer(ctx context.Context, token string, rating srs.Rating) (*AnswerResult, error) {
	coord, err := s.manager.Get(token)
	if err != nil {
		return nil, err
	}

	word, _ := coord.Current()
	res, err := coord.RecordAnswer(ctx, rating)
	if err != nil {
		return nil, err
	}

	s.broker.PublishReviewRecorded(comm.ReviewRecorded{
		UserID:       coord.UserID(),
		WordID:       word.ID,
		Quality:      rating.Quality(),
		IntervalDays: res.IntervalDays,
		EaseFactor:   res.EaseFactor,
		NextReview:   res.NextReview,
		ReviewedAt:   s.now(),
	})

	if coord.State() == session.Completed {
		s.finish(ctx, token, coord)
	}

	return &AnswerResult{
		WordID:   word.ID,
		Schedule: res,
		Progress: coord.Progress(),
		State:    coord.State().String(),
	}, nil
}

// CompleteSession closes a session explicitly and forgets it. Used both
// after the natural end and to abandon a session midway; either way the
// analytics row gets the counters reached so far.
func (s *SessionService) CompleteSession(ctx context.Context, token string) (*session.Progress, error) {
	coord, err := s.manager.Get(token)
	if err != nil {
		return nil, err
	}
	prog := coord.Progress()

	// The natural end already wrote the row and published.
	if coord.State() != session.Completed {
		s.finish(ctx, token, coord)
	}
	s.manager.Remove(token)
	return &prog, nil
}

// Progress reports the counters of a live session.
func (s *SessionService) Progress(token string) (*session.Progress, error) {
	coord, err := s.manager.Get(token)
	if err != nil {
		return nil, err
	}
	prog := coord.Progress()
	return &prog, nil
}

func (s *SessionService) finish(ctx context.Context, token string, coord *session.Coordinator) {
	prog := coord.Progress()
	accuracy := 0.0
	if prog.CurrentIndex > 0 {
		accuracy = float64(prog.Correct) / float64(prog.CurrentIndex) * 100
	}

	if err := s.sessionStore.CompleteSession(ctx, token, prog.CurrentIndex, prog.Correct, accuracy); err != nil {
		log.Errorf("Error logging session completion %s", err)
		return
	}
	s.broker.PublishSessionCompleted(comm.SessionCompleted{
		Token:          token,
		UserID:         coord.UserID(),
		TotalQuestions: prog.CurrentIndex,
		CorrectAnswers: prog.Correct,
		AccuracyRate:   accuracy,
		CompletedAt:    s.now(),
	})
}
