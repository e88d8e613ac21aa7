package rxlite

// liftObserver builds the upstream-facing Observer an operator subscribes
// with intermediate Subscribers: onNext handles values however the
// operator needs to (it decides whether/what to forward), while error and
// completion pass straight through to the downstream Subscriber
// unchanged, as spec.md §4.6 requires of every operator here except
// Merge/CombineLatest/WithLatestFrom, which fan in several upstreams and
// so need their own completion/error bookkeeping instead of this helper.
//
// This is the Go realization of spec.md §9's "per-input typed
// intermediate Subscribers parameterised by the upstream value type" —
// one small generic helper instead of re-deriving the forwarding wiring
// in Map, Distinct, and DistinctUntilChanged separately.
func liftObserver[T, U any](down *Subscriber[U], onNext func(T)) Observer[T] {
	return Observer[T]{
		OnNext:     onNext,
		OnError:    down.Error,
		OnComplete: down.Complete,
	}
}
