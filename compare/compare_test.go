package compare

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNatural_TotalOrder(t *testing.T) {
	c := Natural[int64]()

	require.Negative(t, c.Compare(1, 2))
	require.Positive(t, c.Compare(2, 1))
	require.Zero(t, c.Compare(7, 7))
}

func TestNatural_Strings(t *testing.T) {
	c := Natural[string]()

	require.Negative(t, c.Compare("a", "b"))
	require.Zero(t, c.Compare("same", "same"))
}

func TestNatural_HashConsistency(t *testing.T) {
	c := Natural[int64]()
	h, ok := any(c).(Hasher[int64])
	require.True(t, ok)

	// Equal keys hash equal; distinct keys should (for these inputs) differ.
	require.Equal(t, h.Hash(42), h.Hash(42))
	require.NotEqual(t, h.Hash(42), h.Hash(43))
}

func TestNatural_HashStrings(t *testing.T) {
	c := Natural[string]()
	h, ok := any(c).(Hasher[string])
	require.True(t, ok)

	require.Equal(t, h.Hash("cpu.usage"), h.Hash("cpu.usage"))
	require.Equal(t, Hash64([]byte("cpu.usage")), h.Hash("cpu.usage"))
}

func TestTime_Order(t *testing.T) {
	c := Time()
	t0 := time.Unix(100, 0)
	t1 := time.Unix(100, 1)

	require.Negative(t, c.Compare(t0, t1))
	require.Zero(t, c.Compare(t0, t0))

	h, ok := any(c).(Hasher[time.Time])
	require.True(t, ok)
	require.Equal(t, h.Hash(t0), h.Hash(t0.UTC()))
}

func TestReverse(t *testing.T) {
	c := Reverse(Natural[int]())

	require.Positive(t, c.Compare(1, 2))
	require.Negative(t, c.Compare(2, 1))
	require.Zero(t, c.Compare(3, 3))
}

func TestReverse_Unwraps(t *testing.T) {
	base := Natural[int]()
	twice := Reverse(Reverse(base))

	require.Negative(t, twice.Compare(1, 2))
}

func TestFunc(t *testing.T) {
	byLen := Func[string](func(a, b string) int { return len(a) - len(b) })

	require.Negative(t, byLen.Compare("a", "bb"))
	require.Zero(t, byLen.Compare("xx", "yy"))
}
