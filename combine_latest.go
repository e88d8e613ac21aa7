package rxlite

import "sync"

// CombineLatest returns an Operator that, once every input (the source
// plus others) has emitted at least once, emits a snapshot slice of the
// latest value from each — slot 0 is always the source, spec.md §4.6.5:
// "The source Observable is treated as one of the inputs... it is not
// privileged" beyond occupying slot 0.
//
// Go generics have no way to express "N inputs, each potentially a
// different type, combined into a tuple" without one overload per arity
// (the same constraint Pipe2..Pipe5 work around). CombineLatest instead
// requires every input to share element type T and returns []T — the
// homogeneous case spec.md's own scenario S4 exercises. Heterogeneous
// combination is outside this operator; project each input to a common
// type with Map first.
func CombineLatest[T any](others ...Observable[T]) Operator[T, []T] {
	return func(src Observable[T]) Observable[[]T] {
		return NewObservable(func(down *Subscriber[[]T]) TeardownLogic {
			inputs := make([]Observable[T], 0, 1+len(others))
			inputs = append(inputs, src)
			inputs = append(inputs, others...)
			n := len(inputs)

			var mu sync.Mutex
			latest := make([]T, n)
			filled := make([]bool, n)
			completed := make([]bool, n)
			errored := false
			subs := make([]*Subscription, n)

			allFilled := func() bool {
				for _, f := range filled {
					if !f {
						return false
					}
				}
				return true
			}
			allCompleted := func() bool {
				for _, c := range completed {
					if !c {
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

			for i, in := range inputs {
				i := i

				mu.Lock()
				already := errored
				mu.Unlock()
				if already {
					continue
				}

				sub := in.Subscribe(Observer[T]{
					OnNext: func(v T) {
						mu.Lock()
						if errored {
							mu.Unlock()
							return
						}
						latest[i] = v
						filled[i] = true
						ready := allFilled()
						var snapshot []T
						if ready {
							snapshot = make([]T, n)
							copy(snapshot, latest)
						}
						mu.Unlock()
						if ready {
							down.Next(snapshot)
						}
					},
					OnError: onError,
					OnComplete: func() {
						mu.Lock()
						if errored {
							mu.Unlock()
							return
						}
						completed[i] = true
						done := allCompleted()
						mu.Unlock()
						if done {
							down.Complete()
						}
					},
				})

				mu.Lock()
				subs[i] = sub
				stillOk := !errored
				mu.Unlock()
				if !stillOk {
					sub.Unsubscribe()
				}
			}

			return cancelAll
		})
	}
}
