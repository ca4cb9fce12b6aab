package gate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRace_CompletedTrueWinsImmediately(t *testing.T) {
	a := NewToken()
	b := CompletedToken(true)

	m := Race(a, b)
	require.True(t, m.Completed())
	require.True(t, m.Result())
}

func TestRace_SealedInputDoesNotTerminate(t *testing.T) {
	sealed := CompletedToken(false)
	live := NewToken()

	m := Race(sealed, live)
	require.False(t, m.Completed())

	live.complete(true)
	select {
	case <-m.Done():
		require.True(t, m.Result())
	case <-time.After(time.Second):
		t.Fatal("merged token did not observe live input")
	}
}

func TestRace_AllFalseCompletesFalse(t *testing.T) {
	a := NewToken()
	b := NewToken()

	m := Race(a, b)
	a.complete(false)
	require.False(t, m.Completed())

	b.complete(false)
	select {
	case <-m.Done():
		require.False(t, m.Result())
	case <-time.After(time.Second):
		t.Fatal("merged token did not complete after all inputs sealed")
	}
}

func TestRace_AnyTrueCompletesTrue(t *testing.T) {
	a := NewToken()
	b := NewToken()

	m := Race(a, b)
	b.complete(true)

	select {
	case <-m.Done():
		require.True(t, m.Result())
	case <-time.After(time.Second):
		t.Fatal("merged token did not complete")
	}
}

func TestRace_NoInputs(t *testing.T) {
	m := Race()
	require.True(t, m.Completed())
	require.False(t, m.Result())
}
