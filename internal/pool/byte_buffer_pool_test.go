package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_GrowAndExtend(t *testing.T) {
	bb := NewByteBuffer(16)

	require.Equal(t, 0, bb.Len())
	require.True(t, bb.Extend(10))
	require.Equal(t, 10, bb.Len())
	require.False(t, bb.Extend(100))

	bb.ExtendOrGrow(100)
	require.Equal(t, 110, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 110)
}

func TestByteBuffer_SetLengthPanicsOutOfRange(t *testing.T) {
	bb := NewByteBuffer(8)

	require.Panics(t, func() { bb.SetLength(-1) })
	require.Panics(t, func() { bb.SetLength(bb.Cap() + 1) })
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(8)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, []byte("hello"), bb.Bytes())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
}

func TestByteBufferPool_ReusesBuffers(t *testing.T) {
	p := NewByteBufferPool(32, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	_, _ = bb.Write(make([]byte, 64))
	p.Put(bb)

	again := p.Get()
	require.Equal(t, 0, again.Len())
}

func TestByteBufferPool_DropsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	bb.Grow(1024)
	p.Put(bb) // discarded, not retained

	fresh := p.Get()
	require.LessOrEqual(t, fresh.Cap(), 1024)
}

func TestGetInt64Slice(t *testing.T) {
	s, release := GetInt64Slice(100)
	require.Len(t, s, 100)
	s[99] = 42
	release()

	s2, release2 := GetInt64Slice(10)
	defer release2()
	require.Len(t, s2, 10)
}
