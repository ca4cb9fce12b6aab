package frame

import (
	"testing"
	"time"

	"github.com/cursive-io/cursive/errs"
	"github.com/cursive-io/cursive/format"
	"github.com/stretchr/testify/require"
)

func TestEncodeDelta_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
	}{
		{"mean reverting", []int64{1000, 1010, 995, 1002, 998, 1000}},
		{"negative baseline", []int64{-500, -490, -510, -500}},
		{"singleton", []int64{42}},
		{"repeated", []int64{7, 7, 7, 7, 7}},
		{"empty", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, Bound(len(tt.values), 8))
			n, err := EncodeDelta(dst, tt.values)
			require.NoError(t, err)

			out, total, err := DecodeDelta[int64](dst[:n])
			require.NoError(t, err)
			require.Equal(t, n, total)
			require.Equal(t, len(tt.values), len(out))
			for i := range tt.values {
				require.Equal(t, tt.values[i], out[i])
			}
		})
	}
}

func TestEncodeDelta_NarrowIntegrals(t *testing.T) {
	dst := make([]byte, Bound(4, 4))
	n, err := EncodeDelta(dst, []int32{100, 101, 99, 100})
	require.NoError(t, err)

	out, _, err := DecodeDelta[int32](dst[:n])
	require.NoError(t, err)
	require.Equal(t, []int32{100, 101, 99, 100}, out)
}

func TestEncodeDelta_SetsDeltaFlag(t *testing.T) {
	dst := make([]byte, Bound(3, 8))
	n, err := EncodeDelta(dst, []int64{1, 2, 3})
	require.NoError(t, err)

	_, flags := format.UnpackVersionFlags(dst[4])
	require.NotZero(t, flags&format.FrameFlagDelta)
	require.NotZero(t, flags&format.FrameFlagCompressed)
	_ = n
}

func TestDecodeDelta_RejectsPlainFrame(t *testing.T) {
	buf, err := EncodeSlice([]int64{1, 2, 3})
	require.NoError(t, err)

	_, _, err = DecodeDelta[int64](buf)
	require.ErrorIs(t, err, errs.ErrCorruptFrame)
}

func TestEncodeTimes_RoundTrip(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	times := []time.Time{
		base,
		base.Add(time.Second),
		base.Add(2 * time.Second),
		base.Add(2500 * time.Millisecond),
		base.Add(10 * time.Second),
	}

	dst := make([]byte, Bound(len(times), 8))
	n, err := EncodeTimes(dst, times)
	require.NoError(t, err)

	out, total, err := DecodeTimes(dst[:n])
	require.NoError(t, err)
	require.Equal(t, n, total)
	require.Equal(t, len(times), len(out))
	for i := range times {
		require.True(t, times[i].Equal(out[i]), "index %d: %v != %v", i, times[i], out[i])
	}
}

func TestEncodeTimes_DeltaCompressesRegularTicks(t *testing.T) {
	ticks := []int64{1000, 2000, 3500, 5500}
	times := make([]time.Time, len(ticks))
	for i, tk := range ticks {
		times[i] = time.Unix(0, tk)
	}

	dst := make([]byte, Bound(len(times), 8))
	n, err := EncodeTimes(dst, times, WithAlgorithm("lz4"))
	require.NoError(t, err)

	// Small same-signed deltas shuffle into near-constant byte planes;
	// the frame must beat the raw tick footprint plus fixed overhead.
	require.Less(t, n, Bound(len(times), 8))

	out, _, err := DecodeTimes(dst[:n])
	require.NoError(t, err)
	for i := range times {
		require.True(t, times[i].Equal(out[i]))
	}
}

func TestEncodeTimes_Empty(t *testing.T) {
	dst := make([]byte, 16)
	n, err := EncodeTimes(dst, nil)
	require.NoError(t, err)
	require.Equal(t, format.FrameHeaderSize, n)

	out, _, err := DecodeTimes(dst[:n])
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestEncodeTimes_LongRegularSeries(t *testing.T) {
	base := time.Unix(1700000000, 0)
	times := make([]time.Time, 2048)
	for i := range times {
		times[i] = base.Add(time.Duration(i) * time.Second)
	}

	dst := make([]byte, Bound(len(times), 8))
	n, err := EncodeTimes(dst, times, WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	// Regular intervals collapse to a repeating delta; expect far better
	// than half the raw footprint.
	require.Less(t, n, len(times)*8/2)

	out, _, err := DecodeTimes(dst[:n])
	require.NoError(t, err)
	for i := range times {
		require.True(t, times[i].Equal(out[i]))
	}
}

type point2 struct {
	X int64
	Y int64
}

func (p point2) Diff(base point2) point2 {
	return point2{X: p.X - base.X, Y: p.Y - base.Y}
}

func (p point2) Add(d point2) point2 {
	return point2{X: p.X + d.X, Y: p.Y + d.Y}
}

func TestEncodeDeltable_RoundTrip(t *testing.T) {
	values := []point2{
		{X: 100, Y: -100},
		{X: 105, Y: -95},
		{X: 95, Y: -105},
		{X: 100, Y: -100},
	}

	dst := make([]byte, Bound(len(values), 16))
	n, err := EncodeDeltable(dst, values)
	require.NoError(t, err)

	out, total, err := DecodeDeltable[point2](dst[:n])
	require.NoError(t, err)
	require.Equal(t, n, total)
	require.Equal(t, values, out)
}

func TestEncodeDeltable_Empty(t *testing.T) {
	dst := make([]byte, 16)
	n, err := EncodeDeltable(dst, []point2{})
	require.NoError(t, err)

	out, _, err := DecodeDeltable[point2](dst[:n])
	require.NoError(t, err)
	require.Empty(t, out)
}
