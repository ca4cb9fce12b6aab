package gate

import "sync/atomic"

// Race merges update tokens for cursors whose data depends on more than
// one source. The merged token completes with true as soon as any input
// completes with true (new data somewhere), and with false only once every
// input has completed with false (all sources sealed).
//
// An input already completed with true wins immediately without spawning
// watchers.
func Race(tokens ...*Token) *Token {
	live := make([]*Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Completed() {
			if t.Result() {
				return t
			}
			// Sealed input; it can never produce data again.
			continue
		}
		live = append(live, t)
	}

	if len(live) == 0 {
		return CompletedToken(false)
	}
	if len(live) == 1 {
		return live[0]
	}

	merged := NewToken()
	remaining := new(atomic.Int32)
	remaining.Store(int32(len(live)))

	for _, t := range live {
		t := t
		go func() {
			<-t.Done()
			if t.Result() {
				merged.complete(true)
			} else if remaining.Add(-1) == 0 {
				merged.complete(false)
			}
		}()
	}

	return merged
}
