package rxlite

import "sync"

// WithLatestFrom returns an Operator that, for each value the source
// emits after every one of others has emitted at least once, emits a
// snapshot slice `[source value, latest(others[0]), ..., latest(others[n-1])]`
// (spec.md §4.6.6). Values from others never themselves trigger a
// downstream emission — they only update the latched slot. Completion of
// an `other` is ignored; only the source's completion propagates
// downstream. Any error, from the source or any other, propagates and
// cancels every subscription this operator opened.
//
// Same homogeneous-type constraint as CombineLatest, for the same
// Go-generics reason — see CombineLatest's doc comment.
func WithLatestFrom[T any](others ...Observable[T]) Operator[T, []T] {
	return func(src Observable[T]) Observable[[]T] {
		return NewObservable(func(down *Subscriber[[]T]) TeardownLogic {
			n := len(others)

			var mu sync.Mutex
			latest := make([]T, n)
			filled := make([]bool, n)
			errored := false
			subs := make([]*Subscription, 1+n)

			allFilled := func() bool {
				for _, f := range filled {
					if !f {
						return false
					}
				}
				return true
			}

			cancelAll := func() {
				mu.Lock()
				toCancel := make([]*Subscription, len(subs))
				copy(toCancel, subs)
				mu.Unlock()
				for _, s := range toCancel {
					if s != nil {
						s.Unsubscribe()
					}
				}
			}

			onError := func(err error) {
				mu.Lock()
				if errored {
					mu.Unlock()
					return
				}
				errored = true
				mu.Unlock()
				down.Error(err)
				cancelAll()
			}

			subscribeGuarded := func(i int, in Observable[T], observer Observer[T]) {
				mu.Lock()
				already := errored
				mu.Unlock()
				if already {
					return
				}

				sub := in.Subscribe(observer)

				mu.Lock()
				subs[i] = sub
				stillOk := !errored
				mu.Unlock()
				if !stillOk {
					sub.Unsubscribe()
				}
			}

			for idx, other := range others {
				idx := idx
				subscribeGuarded(1+idx, other, Observer[T]{
					OnNext: func(v T) {
						mu.Lock()
						if !errored {
							latest[idx] = v
							filled[idx] = true
						}
						mu.Unlock()
					},
					OnError:    onError,
					OnComplete: func() {},
				})
			}

			subscribeGuarded(0, src, Observer[T]{
				OnNext: func(v T) {
					mu.Lock()
					if errored {
						mu.Unlock()
						return
					}
					ready := allFilled()
					var snapshot []T
					if ready {
						snapshot = make([]T, 1+n)
						snapshot[0] = v
						copy(snapshot[1:], latest)
					}
					mu.Unlock()
					if ready {
						down.Next(snapshot)
					}
				},
				OnError:    onError,
				OnComplete: down.Complete,
			})

			return cancelAll
		})
	}
}
