package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kosakata/vocab-services/internal/vocabsvc/models"
	"github.com/kosakata/vocab-services/internal/vocabsvc/srs"
)

// fakeStore records answers in memory and can be told to fail.
type fakeStore struct {
	saved   []srs.Result
	words   []int64
	failing bool
}

var errStoreDown = errors.New("store down")

func (f *fakeStore) SaveAnswer(_ context.Context, _ int64, word models.Word, _ int, res srs.Result) error {
	if f.failing {
		return errStoreDown
	}
	f.saved = append(f.saved, res)
	f.words = append(f.words, word.ID)
	return nil
}

func testWords(n int) []models.Word {
	words := make([]models.Word, n)
	for i := range words {
		words[i] = models.Word{
			ID:           int64(i + 1),
			English:      "word",
			IntervalDays: 1,
			EaseFactor:   srs.DefaultEase,
		}
	}
	return words
}

func fixedNow() time.Time {
	return time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)
}

func TestCoordinatorLifecycle(t *testing.T) {
	store := &fakeStore{}
	c := NewCoordinator(1, store, fixedNow)
	assert.Equal(t, NotStarted, c.State())

	require.NoError(t, c.Start(testWords(3)))
	assert.Equal(t, InProgress, c.State())
	assert.Equal(t, Progress{TotalItems: 3}, c.Progress())

	current, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, int64(1), current.ID)

	_, err := c.RecordAnswer(context.Background(), Correct)
	require.NoError(t, err)
	_, err = c.RecordAnswer(context.Background(), Partial)
	require.NoError(t, err)
	_, err = c.RecordAnswer(context.Background(), Wrong)
	require.NoError(t, err)

	assert.Equal(t, Completed, c.State())
	assert.Equal(t, []int64{1, 2, 3}, store.words)

	prog := c.Progress()
	assert.Equal(t, 3, prog.CurrentIndex)
	assert.Equal(t, 1, prog.Correct)
	assert.Equal(t, 1, prog.Partial)
	assert.Equal(t, 1, prog.Wrong)
}

func TestCoordinatorCountersSumToIndex(t *testing.T) {
	store := &fakeStore{}
	c := NewCoordinator(1, store, fixedNow)
	require.NoError(t, c.Start(testWords(4)))

	ratings := []srs.Rating{Correct, Wrong, Correct, Partial}
	for _, r := range ratings {
		_, err := c.RecordAnswer(context.Background(), r)
		require.NoError(t, err)

		prog := c.Progress()
		assert.Equal(t, prog.CurrentIndex, prog.Correct+prog.Partial+prog.Wrong)
	}
}

func TestCoordinatorStartEmpty(t *testing.T) {
	c := NewCoordinator(1, &fakeStore{}, fixedNow)
	err := c.Start(nil)
	assert.ErrorIs(t, err, ErrNoCardsAvailable)
	assert.Equal(t, NotStarted, c.State())
}

func TestCoordinatorShortSession(t *testing.T) {
	// 3 due words against a requested size of 10: completes after 3.
	store := &fakeStore{}
	c := NewCoordinator(1, store, fixedNow)
	require.NoError(t, c.Start(testWords(3)))

	for i := 0; i < 3; i++ {
		_, err := c.RecordAnswer(context.Background(), Correct)
		require.NoError(t, err)
	}
	assert.Equal(t, Completed, c.State())
}

func TestCoordinatorCompletedIsTerminal(t *testing.T) {
	store := &fakeStore{}
	c := NewCoordinator(1, store, fixedNow)
	require.NoError(t, c.Start(testWords(1)))

	_, err := c.RecordAnswer(context.Background(), Correct)
	require.NoError(t, err)

	_, err = c.RecordAnswer(context.Background(), Correct)
	assert.ErrorIs(t, err, ErrSessionComplete)
	assert.Len(t, store.saved, 1)
}

func TestCoordinatorAnswerBeforeStart(t *testing.T) {
	c := NewCoordinator(1, &fakeStore{}, fixedNow)
	_, err := c.RecordAnswer(context.Background(), Correct)
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestCoordinatorPersistenceFailureDoesNotAdvance(t *testing.T) {
	store := &fakeStore{failing: true}
	c := NewCoordinator(1, store, fixedNow)
	require.NoError(t, c.Start(testWords(2)))

	_, err := c.RecordAnswer(context.Background(), Correct)
	require.ErrorIs(t, err, errStoreDown)

	// Nothing moved: same word, zeroed counters, still in progress.
	assert.Equal(t, Progress{TotalItems: 2}, c.Progress())
	assert.Equal(t, InProgress, c.State())
	current, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, int64(1), current.ID)

	// Retry after the store recovers produces the same schedule.
	store.failing = false
	res, err := c.RecordAnswer(context.Background(), Correct)
	require.NoError(t, err)
	assert.Equal(t, []srs.Result{res}, store.saved)
	assert.Equal(t, 1, c.Progress().CurrentIndex)
}

func TestCoordinatorRetryIsDeterministic(t *testing.T) {
	// Two coordinators over the same snapshot grade the same word
	// identically; a retried submission cannot drift.
	a := NewCoordinator(1, &fakeStore{}, fixedNow)
	b := NewCoordinator(1, &fakeStore{}, fixedNow)
	require.NoError(t, a.Start(testWords(1)))
	require.NoError(t, b.Start(testWords(1)))

	resA, err := a.RecordAnswer(context.Background(), Partial)
	require.NoError(t, err)
	resB, err := b.RecordAnswer(context.Background(), Partial)
	require.NoError(t, err)
	assert.Equal(t, resA, resB)
}

func TestCoordinatorConcurrentAnswers(t *testing.T) {
	// Racing submissions for the same session: exactly TotalItems land,
	// the rest see the completed session, and the index never overruns.
	const total = 5
	store := &fakeStore{}
	c := NewCoordinator(1, store, fixedNow)
	require.NoError(t, c.Start(testWords(total)))

	var wg sync.WaitGroup
	errs := make(chan error, total*4)
	for i := 0; i < total*4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.RecordAnswer(context.Background(), Correct)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, complete int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrSessionComplete):
			complete++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, total, ok)
	assert.Equal(t, total*3, complete)

	prog := c.Progress()
	assert.Equal(t, total, prog.CurrentIndex)
	assert.Equal(t, total, prog.Correct)
	assert.Equal(t, Completed, c.State())
	assert.Len(t, store.saved, total)
}

func TestCoordinatorScheduleFlowsFromRating(t *testing.T) {
	store := &fakeStore{}
	c := NewCoordinator(1, store, fixedNow)

	words := testWords(2)
	words[0].IntervalDays = 6
	words[0].Repetitions = 2
	require.NoError(t, c.Start(words))

	res, err := c.RecordAnswer(context.Background(), Correct)
	require.NoError(t, err)
	assert.Equal(t, 15, res.IntervalDays) // round(6 * 2.5)
	assert.Equal(t, 3, res.Repetitions)
	assert.Equal(t, time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC), res.NextReview)

	res, err = c.RecordAnswer(context.Background(), Wrong)
	require.NoError(t, err)
	assert.Equal(t, 1, res.IntervalDays)
	assert.Equal(t, 0, res.Repetitions)
}
