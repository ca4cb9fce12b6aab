package series

import (
	"github.com/cursive-io/cursive/compare"
	"github.com/cursive-io/cursive/cursor"
	"github.com/cursive-io/cursive/gate"
)

// Cursor navigates a Sorted series.
//
// The cursor caches its current pair, so a position stays observable even
// while the series grows. Positions are tracked by index with a version
// check: an order-preserving append leaves indices valid, and an
// out-of-order insert bumps the series version, after which the cursor
// re-derives its index from the cached key.
//
// A cursor instance is not safe for concurrent use; open as many cursors
// as there are readers.
type Cursor[K, V any] struct {
	src     *Sorted[K, V]
	idx     int
	curKey  K
	curVal  V
	state   cursor.State
	version uint64
}

var _ cursor.Cursor[int, int] = (*Cursor[int, int])(nil)

func (c *Cursor[K, V]) setAt(i int) {
	c.idx = i
	c.curKey = c.src.keys[i]
	c.curVal = c.src.vals[i]
	c.state = cursor.AtElement
	c.version = c.src.version
}

// reindex refreshes the cached index after a structural mutation.
// Caller holds the source lock; only meaningful in the AtElement state.
func (c *Cursor[K, V]) reindex() {
	if c.version == c.src.version {
		return
	}

	if i, ok := c.src.find(c.curKey); ok {
		c.idx = i
	} else {
		// The cached key is gone from this position range; fall back to
		// the slot it would occupy so relative moves stay ordered.
		c.idx = c.src.lowerBound(c.curKey)
	}
	c.version = c.src.version
}

func (c *Cursor[K, V]) MoveFirst() bool {
	if c.state == cursor.Disposed {
		return false
	}

	s := c.src
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.keys) == 0 {
		if s.sealed {
			c.state = cursor.AfterEnd
		}

		return false
	}
	c.setAt(0)

	return true
}

func (c *Cursor[K, V]) MoveLast() bool {
	if c.state == cursor.Disposed {
		return false
	}

	s := c.src
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.keys)
	if n == 0 {
		if s.sealed {
			c.state = cursor.AfterEnd
		}

		return false
	}
	c.setAt(n - 1)

	return true
}

func (c *Cursor[K, V]) MoveNext() bool {
	if c.state == cursor.Disposed {
		return false
	}

	s := c.src
	s.mu.RLock()
	defer s.mu.RUnlock()

	var next int
	switch c.state {
	case cursor.Uninitialized:
		next = 0
	case cursor.AtElement:
		c.reindex()
		next = c.idx + 1
	case cursor.AfterEnd:
		// Terminal on a sealed source; growth cannot occur past a seal,
		// so this resolves to false below.
		next = s.upperBound(c.curKey)
	default:
		return false
	}

	if next >= len(s.keys) {
		if s.sealed && c.state == cursor.AtElement {
			c.state = cursor.AfterEnd
		}

		return false
	}
	c.setAt(next)

	return true
}

func (c *Cursor[K, V]) MovePrevious() bool {
	if c.state == cursor.Disposed {
		return false
	}

	s := c.src
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.keys)

	var prev int
	switch c.state {
	case cursor.Uninitialized, cursor.AfterEnd:
		prev = n - 1
	case cursor.AtElement:
		c.reindex()
		prev = c.idx - 1
	default:
		return false
	}

	if prev < 0 || prev >= n {
		return false
	}
	c.setAt(prev)

	return true
}

func (c *Cursor[K, V]) MoveAt(key K, dir cursor.Lookup) bool {
	if c.state == cursor.Disposed {
		return false
	}

	s := c.src
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, exact := s.find(key)

	switch dir {
	case cursor.EQ:
		if !exact {
			return false
		}
	case cursor.LE:
		if !exact {
			i--
		}
	case cursor.LT:
		i--
	case cursor.GE:
		// i already points at the first key >= key.
	case cursor.GT:
		if exact {
			i++
		}
	default:
		return false
	}

	if i < 0 || i >= len(s.keys) {
		return false
	}
	c.setAt(i)

	return true
}

// MoveNextBatch returns the remaining elements beyond the current position
// as one read-only segment and advances the cursor onto the segment's last
// element. Alternating with element-mode moves yields the same total
// sequence.
func (c *Cursor[K, V]) MoveNextBatch() (cursor.Segment[K, V], bool) {
	if c.state == cursor.Disposed || c.state == cursor.AfterEnd {
		return cursor.Segment[K, V]{}, false
	}

	s := c.src
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := 0
	if c.state == cursor.AtElement {
		c.reindex()
		start = c.idx + 1
	}
	n := len(s.keys)
	if start >= n {
		return cursor.Segment[K, V]{}, false
	}

	seg := cursor.NewSegment(s.keys[start:n:n], s.vals[start:n:n])
	c.setAt(n - 1)

	return seg, true
}

func (c *Cursor[K, V]) CurrentKey() K { return c.curKey }

func (c *Cursor[K, V]) CurrentValue() V { return c.curVal }

func (c *Cursor[K, V]) TryGetValue(key K) (V, bool) {
	return c.src.Get(key)
}

func (c *Cursor[K, V]) Comparer() compare.Comparer[K] { return c.src.cmp }

func (c *Cursor[K, V]) IsContinuous() bool { return false }

func (c *Cursor[K, V]) IsReadOnly() bool { return c.src.IsReadOnly() }

func (c *Cursor[K, V]) Updated() *gate.Token { return c.src.Updated() }

func (c *Cursor[K, V]) State() cursor.State { return c.state }

// Source returns the series this cursor navigates.
func (c *Cursor[K, V]) Source() *Sorted[K, V] { return c.src }

func (c *Cursor[K, V]) Clone() cursor.Cursor[K, V] {
	clone := *c

	return &clone
}

func (c *Cursor[K, V]) Close() error {
	c.state = cursor.Disposed

	return nil
}
