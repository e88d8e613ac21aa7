package rxlite

import "sync"

// Merge returns an Operator that subscribes to its source and to every
// one of others concurrently, forwarding every OnNext immediately
// (spec.md §4.6.4). Downstream completes only once every input has
// completed; the first input to error wins and cancels the rest.
//
// The teacher's merge.go fanned inputs in over channels with
// reflect.SelectCase, because forwarding had to happen on whichever
// goroutine the select woke up on. RxLite's emission model is
// synchronous (spec.md §5): there is no goroutine per input to select
// over — each input calls back directly into shared, mutex-guarded
// bookkeeping from whatever thread its own producer runs on. See
// DESIGN.md "Dropped teacher code".
func Merge[T any](others ...Observable[T]) Operator[T, T] {
	return func(src Observable[T]) Observable[T] {
		return NewObservable(func(down *Subscriber[T]) TeardownLogic {
			inputs := make([]Observable[T], 0, 1+len(others))
			inputs = append(inputs, src)
			inputs = append(inputs, others...)

			var mu sync.Mutex
			remaining := len(inputs)
			errored := false
			subs := make([]*Subscription, len(inputs))

			onComplete := func() {
				mu.Lock()
				remaining--
				done := remaining == 0 && !errored
				mu.Unlock()
				if done {
					down.Complete()
				}
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
				mu.Lock()
				already := errored
				mu.Unlock()
				if already {
					continue
				}

				sub := in.Subscribe(Observer[T]{
					OnNext:     down.Next,
					OnError:    onError,
					OnComplete: onComplete,
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
