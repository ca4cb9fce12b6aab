package blockpack

import (
	"testing"

	"github.com/cursive-io/cursive/errs"
	"github.com/cursive-io/cursive/format"
	"github.com/stretchr/testify/require"
)

func compressibleData(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i / 32)
	}

	return data
}

func pseudoRandomData(n int) []byte {
	data := make([]byte, n)
	state := uint64(0x9E3779B97F4A7C15)
	for i := range data {
		state = state*6364136223846793005 + 1442695040888963407
		data[i] = byte(state >> 56)
	}

	return data
}

func TestCompress_RoundTripAllAlgorithms(t *testing.T) {
	algorithms := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	src := compressibleData(4096)
	for _, algo := range algorithms {
		t.Run(algo.String(), func(t *testing.T) {
			p := DefaultParams()
			p.Algorithm = algo
			p.TypeSize = 8

			dst := make([]byte, Bound(len(src)))
			n, err := Compress(dst, src, p)
			require.NoError(t, err)
			require.Greater(t, n, HeaderSize)

			out := make([]byte, len(src))
			m, err := Decompress(out, dst[:n])
			require.NoError(t, err)
			require.Equal(t, len(src), m)
			require.Equal(t, src, out)
		})
	}
}

func TestCompress_ShuffleOffRoundTrip(t *testing.T) {
	p := DefaultParams()
	p.Shuffle = false
	p.TypeSize = 4

	src := compressibleData(1024)
	dst := make([]byte, Bound(len(src)))
	n, err := Compress(dst, src, p)
	require.NoError(t, err)

	out := make([]byte, len(src))
	_, err = Decompress(out, dst[:n])
	require.NoError(t, err)
	require.Equal(t, src, out)
}

func TestCompress_EmptyInput(t *testing.T) {
	p := DefaultParams()

	dst := make([]byte, HeaderSize)
	n, err := Compress(dst, nil, p)
	require.NoError(t, err)
	require.Equal(t, HeaderSize, n)

	nbytes, cbytes, _, err := BufferSizes(dst[:n])
	require.NoError(t, err)
	require.Zero(t, nbytes)
	require.Equal(t, HeaderSize, cbytes)

	m, err := Decompress(nil, dst[:n])
	require.NoError(t, err)
	require.Zero(t, m)
}

func TestCompress_IncompressibleFallsBackToStoredRaw(t *testing.T) {
	p := DefaultParams()
	p.Algorithm = format.CompressionLZ4
	p.TypeSize = 8

	src := pseudoRandomData(512)
	dst := make([]byte, Bound(len(src)))
	n, err := Compress(dst, src, p)
	require.NoError(t, err)

	// The container never exceeds header + source, whatever the codec did.
	require.LessOrEqual(t, n, Bound(len(src)))

	out := make([]byte, len(src))
	_, err = Decompress(out, dst[:n])
	require.NoError(t, err)
	require.Equal(t, src, out)
}

func TestCompress_InsufficientCapacity(t *testing.T) {
	p := DefaultParams()

	src := compressibleData(1024)
	dst := make([]byte, 8)
	_, err := Compress(dst, src, p)
	require.ErrorIs(t, err, errs.ErrInsufficientCapacity)
}

func TestCompress_UnknownAlgorithm(t *testing.T) {
	p := DefaultParams()
	p.Algorithm = format.CompressionType(0x9)

	dst := make([]byte, 64)
	_, err := Compress(dst, []byte{1, 2, 3}, p)
	require.ErrorIs(t, err, errs.ErrUnknownAlgorithm)
}

func TestBufferSizes_Probe(t *testing.T) {
	p := DefaultParams()
	p.TypeSize = 8
	p.BlockSize = 4096

	src := compressibleData(2048)
	dst := make([]byte, Bound(len(src)))
	n, err := Compress(dst, src, p)
	require.NoError(t, err)

	nbytes, cbytes, blocksize, err := BufferSizes(dst[:n])
	require.NoError(t, err)
	require.Equal(t, len(src), nbytes)
	require.Equal(t, n, cbytes)
	require.Equal(t, 4096, blocksize)
}

func TestBufferSizes_ShortInput(t *testing.T) {
	_, _, _, err := BufferSizes(make([]byte, HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrInvalidBlock)
}

func TestDecompress_VersionMismatch(t *testing.T) {
	p := DefaultParams()
	src := compressibleData(128)
	dst := make([]byte, Bound(len(src)))
	n, err := Compress(dst, src, p)
	require.NoError(t, err)

	dst[0] = Version + 1
	out := make([]byte, len(src))
	_, err = Decompress(out, dst[:n])
	require.ErrorIs(t, err, errs.ErrVersionMismatch)
}

func TestDecompress_TruncatedContainer(t *testing.T) {
	p := DefaultParams()
	src := compressibleData(128)
	dst := make([]byte, Bound(len(src)))
	n, err := Compress(dst, src, p)
	require.NoError(t, err)

	out := make([]byte, len(src))
	_, err = Decompress(out, dst[:n-1])
	require.ErrorIs(t, err, errs.ErrInvalidBlock)
}

func TestDecompress_DestinationTooSmall(t *testing.T) {
	p := DefaultParams()
	src := compressibleData(128)
	dst := make([]byte, Bound(len(src)))
	n, err := Compress(dst, src, p)
	require.NoError(t, err)

	out := make([]byte, len(src)-1)
	_, err = Decompress(out, dst[:n])
	require.ErrorIs(t, err, errs.ErrInsufficientCapacity)
}
