package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kosakata/vocab-services/internal/vocabsvc/models"
	"github.com/kosakata/vocab-services/internal/vocabsvc/srs"
)

// Sentinel errors for the session package. Check with errors.Is.
var (
	ErrNoCardsAvailable = errors.New("session: no words due for review")
	ErrNotStarted       = errors.New("session: session not started")
	ErrSessionComplete  = errors.New("session: session already complete")
)

// State is the lifecycle of one review session.
type State int

const (
	NotStarted State = iota
	InProgress
	Completed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Completed:
		return "completed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Progress holds the per-session counters. The three rating counters
// always sum to CurrentIndex.
type Progress struct {
	CurrentIndex int `json:"current_index"`
	TotalItems   int `json:"total_items"`
	Correct      int `json:"correct"`
	Partial      int `json:"partial"`
	Wrong        int `json:"wrong"`
}

// ReviewStore persists a word's updated scheduling state after one rating.
// The write must land before the session advances; implementations also
// record the review row itself.
type ReviewStore interface {
	SaveAnswer(ctx context.Context, userID int64, word models.Word, quality int, res srs.Result) error
}

// Coordinator drives a bounded sequence of due words through one review
// session. It owns the ephemeral session state; nothing here is persisted
// beyond the per-answer writes that go through the ReviewStore.
//
// Safe for concurrent use: the mutex serializes answers, so two racing
// submissions for the same session grade in order, the loser seeing the
// advanced state.
type Coordinator struct {
	userID int64
	store  ReviewStore
	now    func() time.Time

	mu    sync.Mutex
	state State
	words []models.Word
	prog  Progress
}

// NewCoordinator creates a session in the NotStarted state. now supplies
// the review date; pass nil for time.Now.
func NewCoordinator(userID int64, store ReviewStore, now func() time.Time) *Coordinator {
	if now == nil {
		now = time.Now
	}
	return &Coordinator{userID: userID, store: store, now: now}
}

// Start moves the session to InProgress with the given word snapshot,
// already filtered and ordered by the due-set selection. An empty snapshot
// fails with ErrNoCardsAvailable and the session stays NotStarted. Fewer
// words than the requested session size is fine; the session is just
// shorter.
func (c *Coordinator) Start(words []models.Word) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != NotStarted {
		return fmt.Errorf("session: start called in state %s", c.state)
	}
	if len(words) == 0 {
		return ErrNoCardsAvailable
	}
	c.words = words
	c.prog = Progress{TotalItems: len(words)}
	c.state = InProgress
	return nil
}

// Current returns the word the session is waiting on. ok is false when the
// session is not in progress.
func (c *Coordinator) Current() (models.Word, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != InProgress {
		return models.Word{}, false
	}
	return c.words[c.prog.CurrentIndex], true
}

// RecordAnswer grades the current word, persists the new schedule and
// advances the session.
//
// The schedule computation is pure, so if the store write fails the
// session index and counters stay put and the caller can retry the same
// word; resubmitting produces the identical result.
func (c *Coordinator) RecordAnswer(ctx context.Context, rating srs.Rating) (srs.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case NotStarted:
		return srs.Result{}, ErrNotStarted
	case Completed:
		return srs.Result{}, ErrSessionComplete
	}

	word := c.words[c.prog.CurrentIndex]
	res, err := srs.ComputeNext(rating.Quality(), word.IntervalDays, word.EaseFactor, word.Repetitions, c.now())
	if err != nil {
		return srs.Result{}, err
	}

	if err := c.store.SaveAnswer(ctx, c.userID, word, rating.Quality(), res); err != nil {
		return srs.Result{}, fmt.Errorf("session: persist answer for word %d: %w", word.ID, err)
	}

	switch rating {
	case Wrong:
		c.prog.Wrong++
	case Partial:
		c.prog.Partial++
	default:
		c.prog.Correct++
	}
	c.prog.CurrentIndex++
	if c.prog.CurrentIndex == c.prog.TotalItems {
		c.state = Completed
	}
	return res, nil
}

// State returns the session lifecycle state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Progress returns a copy of the session counters.
func (c *Coordinator) Progress() Progress {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prog
}

// UserID returns the reviewer that owns this session.
func (c *Coordinator) UserID() int64 { return c.userID }

// Rating aliases, so callers grading answers only import this package.
const (
	Wrong   = srs.Wrong
	Partial = srs.Partial
	Correct = srs.Correct
)
