package cursor

import (
	"github.com/cursive-io/cursive/compare"
	"github.com/cursive-io/cursive/gate"
)

// Zipped is the paired value emitted by a Zip cursor.
type Zipped[L, R any] struct {
	Left  L
	Right R
}

// Zip pairs two cursors over the same key type, emitting values at keys
// where both operands are defined.
//
// With two discrete operands the output domain is the intersection of the
// operand key sets, walked with an intersection seek that repeatedly
// advances the lagging side. If either operand is continuous, the discrete
// side drives and the continuous side is sampled at its keys (left drives
// when both are continuous).
//
// A Zip observes the combinator position contract through its cache: the
// current key and pair remain the last emitted ones even while the operand
// cursors are mid-alignment after a provisional false. One operand
// reaching a provisional end while the other is still mutable is "not
// yet", never a terminal end; Zip only ends once both operands are
// readonly and exhausted.
type Zip[K, VL, VR any, L Cursor[K, VL], R Cursor[K, VR]] struct {
	left  L
	right R
	cmp   compare.Comparer[K]

	// sampleLeft/sampleRight select continuous-side mode, fixed at
	// construction so the driving side is stable.
	sampleLeft  bool
	sampleRight bool

	state    State
	curKey   K
	curLeft  VL
	curRight VR

	// stepPending records that the driver advanced past the emitted key
	// without a completed emit; retries must not advance it again.
	stepPending bool
	backPending bool
}

var _ Cursor[int, Zipped[int, int]] = (*Zip[int, int, int, Cursor[int, int], Cursor[int, int]])(nil)

// NewZip pairs left and right. Both operands must share the ordering of
// left's comparator.
func NewZip[K, VL, VR any, L Cursor[K, VL], R Cursor[K, VR]](left L, right R) *Zip[K, VL, VR, L, R] {
	z := &Zip[K, VL, VR, L, R]{
		left:  left,
		right: right,
		cmp:   left.Comparer(),
	}

	lc, rc := left.IsContinuous(), right.IsContinuous()
	switch {
	case lc && !rc:
		z.sampleLeft = true
	case rc:
		z.sampleRight = true
	}

	return z
}

func (z *Zip[K, VL, VR, L, R]) matched() bool { return !z.sampleLeft && !z.sampleRight }

func (z *Zip[K, VL, VR, L, R]) emit() {
	if z.sampleLeft {
		z.curKey = z.right.CurrentKey()
		z.curRight = z.right.CurrentValue()
		z.curLeft, _ = z.left.TryGetValue(z.curKey)
	} else if z.sampleRight {
		z.curKey = z.left.CurrentKey()
		z.curLeft = z.left.CurrentValue()
		z.curRight, _ = z.right.TryGetValue(z.curKey)
	} else {
		z.curKey = z.left.CurrentKey()
		z.curLeft = z.left.CurrentValue()
		z.curRight = z.right.CurrentValue()
	}
	z.state = AtElement
	z.stepPending = false
	z.backPending = false
}

// alignForward advances the lagging operand with GE seeks until both sit
// on a common key, then emits. Both operands must be positioned; an
// unpositioned right is nudged forward first.
func (z *Zip[K, VL, VR, L, R]) alignForward() bool {
	if z.right.State() != AtElement {
		if !z.right.MoveNext() {
			return false
		}
	}
	for {
		c := z.cmp.Compare(z.left.CurrentKey(), z.right.CurrentKey())
		if c == 0 {
			z.emit()
			return true
		}
		if c < 0 {
			if !z.left.MoveAt(z.right.CurrentKey(), GE) {
				return false
			}
		} else {
			if !z.right.MoveAt(z.left.CurrentKey(), GE) {
				return false
			}
		}
	}
}

// alignBackward is the mirror of alignForward with LE seeks.
func (z *Zip[K, VL, VR, L, R]) alignBackward() bool {
	if z.right.State() != AtElement {
		if !z.right.MovePrevious() {
			return false
		}
	}
	for {
		c := z.cmp.Compare(z.left.CurrentKey(), z.right.CurrentKey())
		if c == 0 {
			z.emit()
			return true
		}
		if c < 0 {
			if !z.right.MoveAt(z.left.CurrentKey(), LE) {
				return false
			}
		} else {
			if !z.left.MoveAt(z.right.CurrentKey(), LE) {
				return false
			}
		}
	}
}

func (z *Zip[K, VL, VR, L, R]) MoveFirst() bool {
	if z.state == Disposed {
		return false
	}
	z.stepPending = false
	z.backPending = false

	if z.sampleLeft {
		if !z.right.MoveFirst() {
			return false
		}
		return z.sampleAtDriver(true)
	}
	if z.sampleRight {
		if !z.left.MoveFirst() {
			return false
		}
		return z.sampleAtDriverLeft(true)
	}

	if !z.left.MoveFirst() || !z.right.MoveFirst() {
		return false
	}

	return z.alignForward()
}

func (z *Zip[K, VL, VR, L, R]) MoveLast() bool {
	if z.state == Disposed {
		return false
	}
	z.stepPending = false
	z.backPending = false

	if z.sampleLeft {
		if !z.right.MoveLast() {
			return false
		}
		return z.sampleAtDriver(false)
	}
	if z.sampleRight {
		if !z.left.MoveLast() {
			return false
		}
		return z.sampleAtDriverLeft(false)
	}

	if !z.left.MoveLast() || !z.right.MoveLast() {
		return false
	}

	return z.alignBackward()
}

// sampleAtDriver emits at the right (driving) cursor's key, skipping
// forward or backward past keys the sampled left side cannot answer.
func (z *Zip[K, VL, VR, L, R]) sampleAtDriver(forward bool) bool {
	for {
		if _, ok := z.left.TryGetValue(z.right.CurrentKey()); ok {
			z.emit()
			return true
		}
		if forward {
			if !z.right.MoveNext() {
				return false
			}
		} else {
			if !z.right.MovePrevious() {
				return false
			}
		}
	}
}

// sampleAtDriverLeft is sampleAtDriver with the left cursor driving.
func (z *Zip[K, VL, VR, L, R]) sampleAtDriverLeft(forward bool) bool {
	for {
		if _, ok := z.right.TryGetValue(z.left.CurrentKey()); ok {
			z.emit()
			return true
		}
		if forward {
			if !z.left.MoveNext() {
				return false
			}
		} else {
			if !z.left.MovePrevious() {
				return false
			}
		}
	}
}

func (z *Zip[K, VL, VR, L, R]) MoveNext() bool {
	if z.state == Disposed {
		return false
	}
	if z.state == Uninitialized {
		return z.MoveFirst()
	}

	if z.sampleLeft {
		if !z.right.MoveNext() {
			return false
		}
		return z.sampleAtDriver(true)
	}
	if z.sampleRight {
		if !z.left.MoveNext() {
			return false
		}
		return z.sampleAtDriverLeft(true)
	}

	if z.backPending {
		// A failed MovePrevious left the driver below the emitted key;
		// restore it before stepping forward.
		if !z.left.MoveAt(z.curKey, GE) {
			return false
		}
		z.backPending = false
	}
	if !z.stepPending {
		if !z.left.MoveNext() {
			return false
		}
		z.stepPending = true
	}

	return z.alignForward()
}

func (z *Zip[K, VL, VR, L, R]) MovePrevious() bool {
	if z.state == Disposed {
		return false
	}
	if z.state == Uninitialized {
		return z.MoveLast()
	}

	if z.sampleLeft {
		if !z.right.MovePrevious() {
			return false
		}
		return z.sampleAtDriver(false)
	}
	if z.sampleRight {
		if !z.left.MovePrevious() {
			return false
		}
		return z.sampleAtDriverLeft(false)
	}

	if z.stepPending {
		if !z.left.MoveAt(z.curKey, LE) {
			return false
		}
		z.stepPending = false
	}
	if !z.backPending {
		if !z.left.MovePrevious() {
			return false
		}
		z.backPending = true
	}

	return z.alignBackward()
}

func (z *Zip[K, VL, VR, L, R]) MoveAt(key K, dir Lookup) bool {
	if z.state == Disposed {
		return false
	}
	z.stepPending = false
	z.backPending = false

	if z.sampleLeft {
		if !z.right.MoveAt(key, dir) {
			return false
		}
		return z.sampleAtDriver(dir == EQ || dir == GE || dir == GT)
	}
	if z.sampleRight {
		if !z.left.MoveAt(key, dir) {
			return false
		}
		return z.sampleAtDriverLeft(dir == EQ || dir == GE || dir == GT)
	}

	if !z.left.MoveAt(key, dir) || !z.right.MoveAt(key, dir) {
		return false
	}

	switch dir {
	case EQ:
		if z.cmp.Compare(z.left.CurrentKey(), z.right.CurrentKey()) != 0 {
			return false
		}
		z.emit()

		return true
	case GE, GT:
		return z.alignForward()
	default: // LT, LE
		return z.alignBackward()
	}
}

func (z *Zip[K, VL, VR, L, R]) MoveNextBatch() (Segment[K, Zipped[VL, VR]], bool) {
	return Segment[K, Zipped[VL, VR]]{}, false
}

func (z *Zip[K, VL, VR, L, R]) CurrentKey() K { return z.curKey }

func (z *Zip[K, VL, VR, L, R]) CurrentValue() Zipped[VL, VR] {
	return Zipped[VL, VR]{Left: z.curLeft, Right: z.curRight}
}

func (z *Zip[K, VL, VR, L, R]) TryGetValue(key K) (Zipped[VL, VR], bool) {
	lv, ok := z.left.TryGetValue(key)
	if !ok {
		return Zipped[VL, VR]{}, false
	}
	rv, ok := z.right.TryGetValue(key)
	if !ok {
		return Zipped[VL, VR]{}, false
	}

	return Zipped[VL, VR]{Left: lv, Right: rv}, true
}

func (z *Zip[K, VL, VR, L, R]) Comparer() compare.Comparer[K] { return z.cmp }

func (z *Zip[K, VL, VR, L, R]) IsContinuous() bool {
	return z.left.IsContinuous() && z.right.IsContinuous()
}

// IsReadOnly reports a terminal end only when both operands are sealed;
// one live side keeps the intersection provisional.
func (z *Zip[K, VL, VR, L, R]) IsReadOnly() bool {
	return z.left.IsReadOnly() && z.right.IsReadOnly()
}

func (z *Zip[K, VL, VR, L, R]) Updated() *gate.Token {
	return gate.Race(z.left.Updated(), z.right.Updated())
}

func (z *Zip[K, VL, VR, L, R]) State() State { return z.state }

func (z *Zip[K, VL, VR, L, R]) Clone() Cursor[K, Zipped[VL, VR]] {
	left, ok := z.left.Clone().(L)
	if !ok {
		panic("zip: left clone did not preserve its concrete type")
	}
	right, ok := z.right.Clone().(R)
	if !ok {
		panic("zip: right clone did not preserve its concrete type")
	}

	clone := *z
	clone.left = left
	clone.right = right

	return &clone
}

func (z *Zip[K, VL, VR, L, R]) Close() error {
	err := z.left.Close()
	if rerr := z.right.Close(); err == nil {
		err = rerr
	}
	z.state = Disposed

	return err
}
