package rxlite

import (
	"context"

	"github.com/pkg/errors"
)

// ReplaySubject is a Subject that remembers up to capacity prior values
// and replays them, in order, to every new subscriber before it joins
// the live list — even a subscriber arriving after the Subject has
// already latched terminal, which first gets the buffer and then the
// remembered terminal signal (spec.md §4.6's ReplaySubject extension).
// A capacity of 0 means unbounded history, matching the original C++
// implementation's convention (see SPEC_FULL.md §1, Q4).
type ReplaySubject[T any] struct {
	subject  *Subject[T]
	capacity int
	history  []T
}

// NewReplaySubject creates a ReplaySubject with the given capacity.
// A negative capacity is rejected.
func NewReplaySubject[T any](capacity int, opts ...Option) (*ReplaySubject[T], error) {
	if capacity < 0 {
		return nil, errors.Wrapf(errErrNegativeCapacity, "capacity=%d", capacity)
	}
	return &ReplaySubject[T]{
		subject:  NewSubject[T](opts...),
		capacity: capacity,
	}, nil
}

var errErrNegativeCapacity = errors.New("rxlite: replay subject capacity must be >= 0")

// AsObservable exposes the ReplaySubject as a plain Observable.
func (r *ReplaySubject[T]) AsObservable() Observable[T] {
	return NewObservable(func(sub *Subscriber[T]) TeardownLogic {
		subscription := r.Subscribe(Observer[T]{OnNext: sub.Next, OnError: sub.Error, OnComplete: sub.Complete})
		return subscription.Unsubscribe
	})
}

// Subscribe replays the full buffer, in emission order, and then either
// joins the live list (Subject still Open) or delivers the remembered
// terminal signal (Subject already latched).
func (r *ReplaySubject[T]) Subscribe(observer Observer[T]) *Subscription {
	sub := newSubscriber(observer)
	return r.subject.subscribeSubscriber(sub, func(sub *Subscriber[T]) {
		for _, v := range r.history {
			sub.Next(v)
		}
	}, nil)
}

// Next appends v to the replay buffer — evicting the oldest entry first
// if capacity is bounded and already full — and broadcasts it to every
// currently active subscriber, in registration order, before returning.
func (r *ReplaySubject[T]) Next(v T) {
	s := r.subject
	s.pruneInactive()

	s.mu.Lock()
	if s.state != subjectOpen {
		s.mu.Unlock()
		return
	}
	if r.capacity > 0 && len(r.history) >= r.capacity {
		r.history = append(r.history[:0:0], r.history[len(r.history)-r.capacity+1:]...)
	}
	r.history = append(r.history, v)
	subs := make([]*Subscriber[T], len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.Next(v)
	}
	s.instruments.broadcasts.Add(context.Background(), 1)
}

// Error latches the underlying Subject into Erroring; the error itself
// is not retained in the replay buffer, only remembered by the Subject's
// latch for delivery to future subscribers.
func (r *ReplaySubject[T]) Error(err error) { r.subject.Error(err) }

// Complete latches the underlying Subject into Completed.
func (r *ReplaySubject[T]) Complete() { r.subject.Complete() }
