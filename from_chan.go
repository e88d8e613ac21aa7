package rxlite

// FromChannel returns an Observable that relays every value received
// from ch until it is closed, then completes. It is the idiomatic,
// generic replacement for the teacher's from_chan.go, which had to lean
// on reflect.Value to accept "a channel of anything" before Go had
// generics.
//
// FromChannel registers a teardown that stops reading from ch rather
// than closing it — ch is caller-owned, exactly like the teacher's
// version (it closed a channel it did not allocate, which is only safe
// because nothing else sends on it after; this Observable instead just
// stops reading, which is safe regardless of who else may still hold the
// send side).
func FromChannel[T any](ch <-chan T) Observable[T] {
	return NewObservable(func(sub *Subscriber[T]) TeardownLogic {
		stop := make(chan struct{})
		go func() {
			for {
				select {
				case v, ok := <-ch:
					if !ok {
						sub.Complete()
						return
					}
					if sub.IsInactive() {
						return
					}
					sub.Next(v)
				case <-stop:
					return
				}
			}
		}()
		return func() {
			close(stop)
		}
	})
}
