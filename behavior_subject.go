package rxlite

import "context"

// BehaviorSubject is a Subject that always holds a current value
// (spec.md §4.5's BehaviorSubject extension): constructed with an
// initial value, every subscribe immediately receives the current value
// before joining the live list, and every Next both stores the new
// current value and broadcasts it.
//
// The value slot is written under the very same lock that splices the
// subscriber list (spec.md §5's "Shared-resource policy" calls this
// pairing out explicitly), so a subscribe racing a Next can never see
// the new value twice — once via push, once via broadcast — nor miss it
// entirely. BehaviorSubject reaches directly into its wrapped Subject's
// unexported lock rather than keeping a second one of its own, because
// two independent locks could never give that guarantee.
type BehaviorSubject[T any] struct {
	subject *Subject[T]
	value   T
}

// NewBehaviorSubject creates a BehaviorSubject seeded with initial.
func NewBehaviorSubject[T any](initial T, opts ...Option) *BehaviorSubject[T] {
	return &BehaviorSubject[T]{
		subject: NewSubject[T](opts...),
		value:   initial,
	}
}

// AsObservable exposes the BehaviorSubject as a plain Observable.
func (b *BehaviorSubject[T]) AsObservable() Observable[T] {
	return NewObservable(func(sub *Subscriber[T]) TeardownLogic {
		subscription := b.Subscribe(Observer[T]{OnNext: sub.Next, OnError: sub.Error, OnComplete: sub.Complete})
		return subscription.Unsubscribe
	})
}

// Value returns the current value under the subject's splice lock.
func (b *BehaviorSubject[T]) Value() T {
	b.subject.mu.RLock()
	defer b.subject.mu.RUnlock()
	return b.value
}

// Subscribe pushes the current value to observer before adding it to the
// live list — but only while the underlying Subject is still Open. A
// Subject that has already latched terminal must drive a late subscriber
// straight to that terminal state without replaying any prior value
// (spec.md §4.5), so the push is wired as an open-only hook rather than
// an unconditional replay hook.
func (b *BehaviorSubject[T]) Subscribe(observer Observer[T]) *Subscription {
	sub := newSubscriber(observer)
	return b.subject.subscribeSubscriber(sub, nil, func(sub *Subscriber[T]) {
		sub.Next(b.value)
	})
}

// Next stores v as the new current value and broadcasts it to every
// currently active subscriber, in registration order, before returning.
func (b *BehaviorSubject[T]) Next(v T) {
	s := b.subject
	s.pruneInactive()

	s.mu.Lock()
	if s.state != subjectOpen {
		s.mu.Unlock()
		return
	}
	b.value = v
	subs := make([]*Subscriber[T], len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.Next(v)
	}
	s.instruments.broadcasts.Add(context.Background(), 1)
}

// Error latches the underlying Subject into Erroring.
func (b *BehaviorSubject[T]) Error(err error) { b.subject.Error(err) }

// Complete latches the underlying Subject into Completed.
func (b *BehaviorSubject[T]) Complete() { b.subject.Complete() }
