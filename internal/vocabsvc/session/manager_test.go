package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerAddGetRemove(t *testing.T) {
	m := NewManager()
	c := NewCoordinator(1, &fakeStore{}, fixedNow)

	const token = "tok-1"
	m.Add(token, c)
	assert.Equal(t, 1, m.Active())

	got, err := m.Get(token)
	require.NoError(t, err)
	assert.Same(t, c, got)

	m.Remove(token)
	assert.Equal(t, 0, m.Active())

	_, err = m.Get(token)
	assert.ErrorIs(t, err, ErrUnknownToken)
}

func TestManagerUnknownToken(t *testing.T) {
	m := NewManager()
	_, err := m.Get("nope")
	assert.ErrorIs(t, err, ErrUnknownToken)

	// Removing a token that was never added is fine.
	m.Remove("nope")
}

func TestManagerTracksManySessions(t *testing.T) {
	m := NewManager()
	for i := 0; i < 50; i++ {
		m.Add(fmt.Sprintf("tok-%d", i), NewCoordinator(int64(i), &fakeStore{}, fixedNow))
	}
	assert.Equal(t, 50, m.Active())

	got, err := m.Get("tok-7")
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID())
}
