package gate

import (
	"sync"
	"time"
)

// AutoSignal is a queue-based auto-reset signal.
//
// Wait either consumes a remembered signal immediately or enqueues a
// waiter; Signal completes the oldest live waiter or, with none queued,
// remembers at most one pending signal. Among waiters whose Wait calls
// were serialized by the internal mutex, FIFO fairness holds.
//
// Completion is a try-complete race: a waiter armed with a timeout is
// completed by exactly one of {timeout, signal}. A signal that loses the
// race against a waiter's timeout moves on to the next queued waiter
// instead of being dropped.
type AutoSignal struct {
	mu       sync.Mutex
	waiters  []*Token
	signaled bool
}

// NewAutoSignal returns a signal with no pending state and no waiters.
func NewAutoSignal() *AutoSignal {
	return &AutoSignal{}
}

// Wait returns a token that completes with true when signalled, or with
// false once timeout elapses. A negative timeout waits indefinitely.
//
// If a signal is already pending, it is consumed and a pre-completed true
// token is returned without queueing.
func (s *AutoSignal) Wait(timeout time.Duration) *Token {
	s.mu.Lock()
	if s.signaled {
		s.signaled = false
		s.mu.Unlock()

		return CompletedToken(true)
	}

	t := NewToken()
	s.waiters = append(s.waiters, t)
	s.mu.Unlock()

	if timeout >= 0 {
		timer := time.AfterFunc(timeout, func() {
			t.complete(false)
		})
		// Release the timer as soon as the token completes by other means.
		go func() {
			<-t.done
			timer.Stop()
		}()
	}

	return t
}

// Signal completes the oldest pending waiter with true. With no live
// waiters queued, it remembers a single pending signal for the next Wait.
func (s *AutoSignal) Signal() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.waiters) > 0 {
		w := s.waiters[0]
		s.waiters = s.waiters[1:]
		if w.complete(true) {
			return
		}
		// Timed-out waiter; the signal moves to the next in line.
	}

	s.signaled = true
}

// Pending reports whether an unconsumed signal is remembered.
func (s *AutoSignal) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.signaled
}
