package rxlite

import (
	"sync"
	"sync/atomic"
)

// TeardownLogic is the zero-argument closure an Observable's onSubscribe
// function returns to declare how to release its resources. A nil
// TeardownLogic is a valid sentinel for "no teardown".
type TeardownLogic func()

// Subscription is the consumer-visible handle over an active (or
// formerly active) emission pipeline. Unsubscribing it runs its teardown
// exactly once and recursively tears down every child Subscription added
// to it. A terminal signal reaching the underlying Subscriber marks that
// Subscriber inactive but does not run the teardown or touch the
// children; only Unsubscribe does.
//
// The teacher package referenced a `hooks` composite-teardown helper
// from four different files but never defined it; this is that type,
// built for real: running guards the teardown-exactly-once property,
// and children is the composite side of spec.md §4.3's "add(child)".
type Subscription struct {
	inactive *atomic.Bool
	teardown TeardownLogic
	running  atomic.Bool

	mu       sync.Mutex
	children []*Subscription
}

// newSubscription builds a Subscription tied to a Subscriber's shared
// inactive flag and the teardown returned by onSubscribe.
func newSubscription[T any](sub *Subscriber[T], teardown TeardownLogic) *Subscription {
	s := &Subscription{inactive: sub.inactive, teardown: teardown}
	s.running.Store(true)
	return s
}

// EmptySubscription returns a Subscription with no backing Subscriber
// and no teardown. Unsubscribing it is a no-op. This is the named
// constructor for spec.md §4.3's "An empty Subscription is valid and
// no-ops on unsubscribe/drop" — see SPEC_FULL.md §4.
func EmptySubscription() *Subscription {
	s := &Subscription{}
	s.running.Store(true)
	return s
}

// Add appends a child Subscription. Children are torn down before the
// parent's own teardown runs, in the order they were added.
func (s *Subscription) Add(child *Subscription) {
	if child == nil {
		return
	}
	s.mu.Lock()
	if !s.running.Load() {
		s.mu.Unlock()
		child.Unsubscribe()
		return
	}
	s.children = append(s.children, child)
	s.mu.Unlock()
}

// Unsubscribe tears the Subscription down: it flips the owning
// Subscriber's inactive flag, unsubscribes every child (in registration
// order), and runs the teardown closure. The running CAS makes this safe
// to call concurrently, and safe to call re-entrantly from inside the
// Subscription's own teardown or from inside an Observer callback — both
// patterns spec.md's §9 design notes call out explicitly.
func (s *Subscription) Unsubscribe() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	if s.inactive != nil {
		s.inactive.Store(true)
	}

	s.mu.Lock()
	children := s.children
	s.children = nil
	s.mu.Unlock()

	for _, child := range children {
		child.Unsubscribe()
	}

	if s.teardown != nil {
		s.teardown()
	}
}

// IsSubscribed reports whether the Subscription has not yet been torn
// down.
func (s *Subscription) IsSubscribed() bool {
	return s.running.Load()
}
