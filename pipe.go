package rxlite

// Operator transforms an Observable of T into an Observable of U. Every
// operator in this package (Map, Distinct, DistinctUntilChanged, Merge,
// CombineLatest, WithLatestFrom) is an Operator value, or a function that
// returns one once its parameters (a mapper, a list of other sources...)
// are applied.
type Operator[T, U any] func(Observable[T]) Observable[U]

// Chain composes a variadic sequence of type-preserving operators into a
// single one, left to right. It is the same-type special case of
// spec.md §4.4's pipe — useful because most of this package's operators
// (Distinct, DistinctUntilChanged, and Map when the mapper happens to be
// an endomorphism) don't change T.
//
// Grounded on helzpont-min-flow/flow/compose.go's Chain, which composes
// Transformer[T,T] the same way for the same reason: Go generics have no
// way to express a variadic list of operators whose types change from
// one to the next, so the same-type case gets its own named helper and
// the type-changing case gets the fixed-arity PipeN family below.
func Chain[T any](ops ...Operator[T, T]) Operator[T, T] {
	return func(src Observable[T]) Observable[T] {
		out := src
		for _, op := range ops {
			out = op(out)
		}
		return out
	}
}

// Pipe1 applies a single operator. It exists alongside Pipe2..Pipe5 so
// that call sites reading left to right never have to special-case "just
// one step".
func Pipe1[T, A any](src Observable[T], op1 Operator[T, A]) Observable[A] {
	return op1(src)
}

// Pipe2 applies two operators in sequence, each free to change the
// element type, matching spec.md §4.4's "pipe is a left fold; each
// operator sees the previous operator's output."
func Pipe2[T, A, B any](src Observable[T], op1 Operator[T, A], op2 Operator[A, B]) Observable[B] {
	return op2(op1(src))
}

// Pipe3 applies three operators in sequence.
func Pipe3[T, A, B, C any](src Observable[T], op1 Operator[T, A], op2 Operator[A, B], op3 Operator[B, C]) Observable[C] {
	return op3(op2(op1(src)))
}

// Pipe4 applies four operators in sequence.
func Pipe4[T, A, B, C, D any](src Observable[T], op1 Operator[T, A], op2 Operator[A, B], op3 Operator[B, C], op4 Operator[C, D]) Observable[D] {
	return op4(op3(op2(op1(src))))
}

// Pipe5 applies five operators in sequence.
func Pipe5[T, A, B, C, D, E any](src Observable[T], op1 Operator[T, A], op2 Operator[A, B], op3 Operator[B, C], op4 Operator[C, D], op5 Operator[D, E]) Observable[E] {
	return op5(op4(op3(op2(op1(src)))))
}
