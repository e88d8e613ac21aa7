package rxlite

// Distinct returns an Operator that forwards only values not previously
// seen on this subscription (spec.md §4.6.2, P7). T is constrained to
// comparable — Go's builtin map key constraint — as the resolution of
// spec.md §9's Q1 ("value semantics of distinct"): it is the natural Go
// analogue of "hashable". Values that aren't naturally comparable must
// be projected to a comparable key with Map first.
//
// The seen-set is allocated fresh per subscription, not closed over by
// the Operator value, so independent subscriptions to the same
// Observable never share state (spec.md I4, and the §9 design note
// "operator state lives per-subscription, not per-Observable").
func Distinct[T comparable]() Operator[T, T] {
	return func(src Observable[T]) Observable[T] {
		return NewObservable(func(down *Subscriber[T]) TeardownLogic {
			seen := make(map[T]struct{})
			upstream := src.Subscribe(liftObserver(down, func(v T) {
				if _, ok := seen[v]; ok {
					return
				}
				seen[v] = struct{}{}
				down.Next(v)
			}))
			return upstream.Unsubscribe
		})
	}
}
