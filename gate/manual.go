package gate

import "sync/atomic"

// ManualGate is a latch holding a single awaitable token.
//
// Every Wait call observes the current token, so all concurrent waiters
// complete together when Set fires. Reset swaps in a fresh token only once
// the current one has completed, which makes the set-then-reset sequence
// safe against waiters that grabbed the old token: they still observe the
// completed result.
//
// A mutable series typically owns one ManualGate: appends call Set, the
// consumer side calls Wait, and the series calls Reset before publishing
// the next token to new waiters. Sealing the series calls Seal, which
// completes the token with false and tells async consumers the stream is
// over.
type ManualGate struct {
	tok    atomic.Pointer[Token]
	sealed atomic.Bool
}

// NewManualGate returns a gate whose current token is pending.
func NewManualGate() *ManualGate {
	g := &ManualGate{}
	g.tok.Store(NewToken())

	return g
}

// Wait returns the gate's current token. It never fails; the token may
// already be completed.
func (g *ManualGate) Wait() *Token {
	return g.tok.Load()
}

// Set completes the current token with true. Idempotent if the token has
// already completed.
func (g *ManualGate) Set() {
	g.tok.Load().complete(true)
}

// Seal completes the current token with false, signalling that no further
// data will arrive. Sealing is terminal: subsequent Reset calls are no-ops
// so late waiters still observe the false completion.
func (g *ManualGate) Seal() {
	g.sealed.Store(true)
	for {
		cur := g.tok.Load()
		if cur.complete(false) {
			return
		}
		// The current token already completed; if it carried true, publish
		// a false token in its place for late waiters.
		<-cur.Done()
		if !cur.Result() || g.tok.CompareAndSwap(cur, CompletedToken(false)) {
			return
		}
	}
}

// Reset swaps in a fresh pending token if the current token has completed;
// otherwise it is a no-op.
//
// The swap uses compare-and-swap of the token pointer and loops until
// either the observed token is still pending (nothing to do) or the CAS to
// a fresh token succeeds. This makes Reset safe against a concurrent Set:
// the Set lands on whichever token it loaded, and that token's waiters see
// the completion.
func (g *ManualGate) Reset() {
	if g.sealed.Load() {
		return
	}
	for {
		cur := g.tok.Load()
		if !cur.Completed() {
			return
		}
		if g.tok.CompareAndSwap(cur, NewToken()) {
			return
		}
	}
}
