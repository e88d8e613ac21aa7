package rxlite

import "sync/atomic"

// Subscriber is the producer-facing wrapper around an Observer. It is the
// single enforcement point for the emission protocol described in
// spec.md §4.2: at most one terminal signal ever reaches the Observer,
// and nothing reaches it once inactive.
//
// The inactive flag is a pointer so a Subscription can flip it (on
// Unsubscribe) without needing a reference back into the Subscriber
// itself — the two sides just share the cell.
type Subscriber[T any] struct {
	observer Observer[T]
	inactive *atomic.Bool
}

// newSubscriber wraps an Observer in a fresh Subscriber with a fresh,
// shared inactive flag. Any nil callback on observer is replaced with a
// no-op, the same defaulting NewObserver applies.
func newSubscriber[T any](observer Observer[T]) *Subscriber[T] {
	if observer.OnNext == nil {
		observer.OnNext = func(T) {}
	}
	if observer.OnError == nil {
		observer.OnError = func(error) {}
	}
	if observer.OnComplete == nil {
		observer.OnComplete = func() {}
	}
	return &Subscriber[T]{observer: observer, inactive: new(atomic.Bool)}
}

// Next forwards v to the Observer, unless the Subscriber is already
// inactive, in which case the call is silently dropped (spec.md's
// "protocol misuse" case: this is a correctness net, not a user-visible
// error).
func (s *Subscriber[T]) Next(v T) {
	if s.inactive.Load() {
		return
	}
	s.observer.OnNext(v)
}

// Error latches the Subscriber inactive and, if this is the first
// terminal signal, forwards err to the Observer. Racing terminal signals
// are resolved by the CAS: exactly one of Error/Complete wins.
func (s *Subscriber[T]) Error(err error) {
	if !s.inactive.CompareAndSwap(false, true) {
		return
	}
	s.observer.OnError(err)
}

// Complete is the symmetric counterpart of Error.
func (s *Subscriber[T]) Complete() {
	if !s.inactive.CompareAndSwap(false, true) {
		return
	}
	s.observer.OnComplete()
}

// Unsubscribe latches the Subscriber inactive without invoking any
// callback. Idempotent.
func (s *Subscriber[T]) Unsubscribe() {
	s.inactive.Store(true)
}

// IsInactive reports whether the Subscriber has reached its terminal
// state, by either a terminal signal or an explicit Unsubscribe.
func (s *Subscriber[T]) IsInactive() bool {
	return s.inactive.Load()
}
