package cursor_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cursive-io/cursive/cursor"
	"github.com/cursive-io/cursive/errs"
	"github.com/cursive-io/cursive/series"
	"github.com/stretchr/testify/require"
)

func TestNextCtx_ReadyWithoutWaiting(t *testing.T) {
	s := intSeries(t, [2]int64{1, 10})
	c := s.Cursor()

	ok, err := cursor.NextCtx(context.Background(), c)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(1), c.CurrentKey())
}

func TestNextCtx_WaitsForAppendThenEndsOnSeal(t *testing.T) {
	s := intSeries(t, [2]int64{1, 10})
	c := s.Cursor()

	require.True(t, c.MoveNext())
	require.False(t, c.MoveNext())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		time.Sleep(20 * time.Millisecond)
		_ = s.Append(2, 20)
	}()

	ok, err := cursor.NextCtx(context.Background(), c)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(2), c.CurrentKey())
	wg.Wait()

	s.Seal()

	ok, err = cursor.NextCtx(context.Background(), c)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestNextCtx_DrainsAppendRacingSeal(t *testing.T) {
	s := intSeries(t, [2]int64{1, 10})
	c := s.Cursor()
	require.True(t, c.MoveNext())

	done := make(chan struct{})
	go func() {
		defer close(done)
		time.Sleep(20 * time.Millisecond)
		_ = s.Append(2, 20)
		s.Seal()
	}()

	// The append lands together with the seal; the element must still be
	// observed before the terminal end.
	ok, err := cursor.NextCtx(context.Background(), c)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(2), c.CurrentKey())
	<-done

	ok, err = cursor.NextCtx(context.Background(), c)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestNextCtx_Cancellation(t *testing.T) {
	s := intSeries(t, [2]int64{1, 10})
	c := s.Cursor()
	require.True(t, c.MoveNext())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	ok, err := cursor.NextCtx(ctx, c)
	require.False(t, ok)
	require.ErrorIs(t, err, context.Canceled)

	// The cursor position is unchanged by a cancelled wait.
	require.Equal(t, int64(1), c.CurrentKey())
	require.Equal(t, cursor.AtElement, c.State())
}

func TestNextCtx_Timeout(t *testing.T) {
	s := intSeries(t, [2]int64{1, 10})
	c := s.Cursor()
	require.True(t, c.MoveNext())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	ok, err := cursor.NextCtx(ctx, c)
	require.False(t, ok)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNextCtx_Disposed(t *testing.T) {
	s := intSeries(t, [2]int64{1, 10})
	c := s.Cursor()
	require.NoError(t, c.Close())

	_, err := cursor.NextCtx(context.Background(), c)
	require.ErrorIs(t, err, errs.ErrDisposed)
}

func TestNextCtx_ZipWaitsForBothSides(t *testing.T) {
	a := series.New[int64, int64]()
	b := series.New[int64, int64]()
	require.NoError(t, a.Append(1, 10))

	z := zipInts(a.Cursor(), b.Cursor())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		time.Sleep(20 * time.Millisecond)
		_ = b.Append(1, 100)
	}()

	ok, err := cursor.NextCtx(context.Background(), z)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(1), z.CurrentKey())
	wg.Wait()
}

func TestNextCtx_ZipEndsWhenBothSealed(t *testing.T) {
	a := series.New[int64, int64]()
	b := series.New[int64, int64]()
	require.NoError(t, a.Append(1, 10))
	require.NoError(t, b.Append(1, 100))

	z := zipInts(a.Cursor(), b.Cursor())

	ok, err := cursor.NextCtx(context.Background(), z)
	require.NoError(t, err)
	require.True(t, ok)

	// One sealed side is not terminal while the other can still grow.
	a.Seal()

	done := make(chan struct{})
	go func() {
		defer close(done)
		time.Sleep(20 * time.Millisecond)
		b.Seal()
	}()

	ok, err = cursor.NextCtx(context.Background(), z)
	require.NoError(t, err)
	require.False(t, ok)
	<-done
}
