package rxlite

import (
	"context"
	"sync"
)

type subjectState int

const (
	subjectOpen subjectState = iota
	subjectErrored
	subjectCompleted
)

// Subject is a multicast hub: simultaneously an Observable and a sink
// with its own Next/Error/Complete producer methods (spec.md §4.5). Its
// subscriber list is guarded by a reader/writer lock, and its terminal
// latch is the discriminated union {Open, Erroring(e), Completed} spec.md
// §9's design notes call for.
type Subject[T any] struct {
	mu          sync.RWMutex
	state       subjectState
	terminalErr error
	subscribers []*Subscriber[T]

	cfg         config
	instruments subjectInstruments
}

// NewSubject creates an open Subject with no subscribers.
func NewSubject[T any](opts ...Option) *Subject[T] {
	cfg := resolveConfig(opts)
	return &Subject[T]{
		cfg:         cfg,
		instruments: newSubjectInstruments(cfg.meter),
	}
}

// AsObservable returns an Observable view of the Subject, so it can be
// passed anywhere an Observable[T] is expected (e.g. into Merge or
// CombineLatest alongside others).
func (s *Subject[T]) AsObservable() Observable[T] {
	return NewObservable(func(sub *Subscriber[T]) TeardownLogic {
		subscription := s.subscribeSubscriber(sub, nil, nil)
		return subscription.Unsubscribe
	})
}

// Subscribe implements spec.md §4.5's Subject.subscribe: while Open, the
// new subscriber is appended and receives every future Next; if the
// Subject has already terminated, the new subscriber is driven straight
// to that terminal state without ever seeing a prior value.
func (s *Subject[T]) Subscribe(observer Observer[T]) *Subscription {
	sub := newSubscriber(observer)
	return s.subscribeSubscriber(sub, nil, nil)
}

// subscribeSubscriber is the shared splice-under-lock logic BehaviorSubject
// and ReplaySubject build on: replayHook runs regardless of latch state
// (a ReplaySubject always replays its buffer, even to a subscriber
// arriving after termination); openOnlyHook runs only when the Subject is
// still Open and the subscriber is about to be added to the live list
// (a BehaviorSubject's "push current value", which spec.md §4.5 says a
// terminated Subject must NOT do for a late subscriber).
func (s *Subject[T]) subscribeSubscriber(sub *Subscriber[T], replayHook, openOnlyHook func(*Subscriber[T])) *Subscription {
	s.mu.Lock()
	switch s.state {
	case subjectCompleted:
		s.mu.Unlock()
		if replayHook != nil {
			replayHook(sub)
		}
		sub.Complete()
		return newSubscription(sub, nil)
	case subjectErrored:
		err := s.terminalErr
		s.mu.Unlock()
		if replayHook != nil {
			replayHook(sub)
		}
		sub.Error(err)
		return newSubscription(sub, nil)
	default:
		if replayHook != nil {
			replayHook(sub)
		}
		if openOnlyHook != nil {
			openOnlyHook(sub)
		}
		s.subscribers = append(s.subscribers, sub)
		s.mu.Unlock()
		s.instruments.subscribers.Add(context.Background(), 1)
		return newSubscription(sub, func() { s.removeSubscriber(sub) })
	}
}

// removeSubscriber is the best-effort counterpart of the opportunistic
// pruning in Next: it tries once to drop sub from the live list and gives
// up silently if the lock is contended, trusting the next broadcast's
// prune pass to clean it up instead (spec.md §4.5 "Inactive-subscriber
// pruning"). Making removal best-effort, rather than blocking, is what
// lets a consumer call Subscription.Unsubscribe from inside its own
// OnNext without risking deadlock against a Next call that is mid-prune
// on the same Subject (spec.md §9 "Unsubscribe-from-inside-a-callback").
func (s *Subject[T]) removeSubscriber(target *Subscriber[T]) {
	if !s.mu.TryLock() {
		return
	}
	defer s.mu.Unlock()
	s.removeSubscriberLocked(target)
}

func (s *Subject[T]) removeSubscriberLocked(target *Subscriber[T]) {
	for i, sub := range s.subscribers {
		if sub == target {
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
			s.instruments.subscribers.Add(context.Background(), -1)
			return
		}
	}
}

// pruneInactive opportunistically drops subscribers whose inactive flag
// has already been flipped by a downstream Unsubscribe. It is skipped,
// not blocked on, when the write lock is contended — the wait-freedom of
// Next's read path matters more than prompt cleanup (spec.md §5).
func (s *Subject[T]) pruneInactive() {
	if !s.mu.TryLock() {
		if s.cfg.logger != nil {
			s.cfg.logger.Debug("rxlite: subject prune skipped, lock contended")
		}
		return
	}
	defer s.mu.Unlock()

	kept := s.subscribers[:0:0]
	for _, sub := range s.subscribers {
		if !sub.IsInactive() {
			kept = append(kept, sub)
		}
	}
	if dropped := len(s.subscribers) - len(kept); dropped > 0 {
		s.instruments.subscribers.Add(context.Background(), -int64(dropped))
	}
	s.subscribers = kept
}

// snapshotOpenSubscribers returns a stable, registration-ordered copy of
// the currently live subscribers, or (nil, false) if the latch is not
// Open. Taking the copy under a read lock and then releasing it before
// any subscriber is actually notified (see Next) is what lets a consumer
// re-entrantly Subscribe or Unsubscribe from inside its own OnNext
// without deadlocking against this same Subject.
func (s *Subject[T]) snapshotOpenSubscribers() ([]*Subscriber[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != subjectOpen {
		return nil, false
	}
	subs := make([]*Subscriber[T], len(s.subscribers))
	copy(subs, s.subscribers)
	return subs, true
}

// Next broadcasts v to every currently active subscriber, in registration
// order, synchronously before returning (spec.md I5). A call arriving
// after the Subject has latched terminal is silently dropped.
func (s *Subject[T]) Next(v T) {
	s.pruneInactive()

	subs, open := s.snapshotOpenSubscribers()
	if !open {
		return
	}
	for _, sub := range subs {
		sub.Next(v)
	}
	s.instruments.broadcasts.Add(context.Background(), 1)
}

// Error CASes the latch Open -> Erroring(err); on success it forwards
// Error to every subscriber (clearing the list afterward) and is a no-op
// on failure (spec.md §4.5).
func (s *Subject[T]) Error(err error) {
	s.mu.Lock()
	if s.state != subjectOpen {
		s.mu.Unlock()
		return
	}
	s.state = subjectErrored
	s.terminalErr = err
	subs := s.subscribers
	s.subscribers = nil
	s.mu.Unlock()

	if s.cfg.logger != nil {
		s.cfg.logger.Debug("rxlite: subject latched erroring")
	}
	for _, sub := range subs {
		sub.Error(err)
	}
	if len(subs) > 0 {
		s.instruments.subscribers.Add(context.Background(), -int64(len(subs)))
	}
	s.instruments.terminations.Add(context.Background(), 1, terminationReasonAttr("error"))
}

// Complete is the symmetric counterpart of Error.
func (s *Subject[T]) Complete() {
	s.mu.Lock()
	if s.state != subjectOpen {
		s.mu.Unlock()
		return
	}
	s.state = subjectCompleted
	subs := s.subscribers
	s.subscribers = nil
	s.mu.Unlock()

	if s.cfg.logger != nil {
		s.cfg.logger.Debug("rxlite: subject latched completed")
	}
	for _, sub := range subs {
		sub.Complete()
	}
	if len(subs) > 0 {
		s.instruments.subscribers.Add(context.Background(), -int64(len(subs)))
	}
	s.instruments.terminations.Add(context.Background(), 1, terminationReasonAttr("complete"))
}
