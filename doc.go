// Package rxlite is a small, synchronous, generic reactive-stream
// library: Observable/Observer/Subscription, the Subject family
// (Subject, BehaviorSubject, ReplaySubject), and a handful of composable
// operators (Map, Distinct, DistinctUntilChanged, Merge, CombineLatest,
// WithLatestFrom).
//
// Every operation is synchronous — a call to Next, Error, Complete, or
// Subscribe returns only once its direct effects (delivery to every
// then-active downstream observer) have happened. There is no internal
// scheduler, and the only goroutine the package starts is the relay
// behind FromChannel, which reads its channel and emits from that
// goroutine. Otherwise concurrency safety comes from
// mutexes and atomics guarding shared state, not from serializing work
// onto a single thread.
package rxlite
