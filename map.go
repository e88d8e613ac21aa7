package rxlite

// Map returns an Operator that applies f to every value emitted by its
// source, forwarding OnError/OnComplete unchanged. It keeps no state
// across emissions (spec.md §4.6.1).
func Map[T, U any](f func(T) U) Operator[T, U] {
	return func(src Observable[T]) Observable[U] {
		return NewObservable(func(down *Subscriber[U]) TeardownLogic {
			upstream := src.Subscribe(liftObserver(down, func(v T) {
				down.Next(f(v))
			}))
			return upstream.Unsubscribe
		})
	}
}
