package rxlite

// DistinctUntilChanged returns an Operator that drops a value equal to
// the immediately preceding one, forwarding everything else (spec.md
// §4.6.3). Applying it twice is idempotent (P6): the second application
// never sees two equal values in a row, so it never drops anything the
// first application didn't already drop.
func DistinctUntilChanged[T comparable]() Operator[T, T] {
	return func(src Observable[T]) Observable[T] {
		return NewObservable(func(down *Subscriber[T]) TeardownLogic {
			var last T
			hasLast := false
			upstream := src.Subscribe(liftObserver(down, func(v T) {
				if hasLast && last == v {
					return
				}
				last = v
				hasLast = true
				down.Next(v)
			}))
			return upstream.Unsubscribe
		})
	}
}
