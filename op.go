package llll

// Op is a deferred query operation: a reusable transformation from a source
// Query to a result. The result type R is a Query for lazy operators and a
// scalar, slice, map or (value, error) pair for eager reducers.
//
// An Op holds only the parameters it was built with, never iteration
// state, so the same Op value may be applied to any number of sources and
// every application is independent. Constructing an Op performs no work.
//
// Every operator in this package is available in two equivalent forms: a
// free function taking the source first (Where(q, pred)), and an Op obtained
// by binding the parameters (Bind(Where[int], pred)). The free-function form
// reads as a pipeline when calls are nested or assigned step by step; the Op
// form exists for building operations once and attaching them to many
// sources.
type Op[T, R any] func(Query[T]) R

// Apply attaches the operation to src and returns its result.
func (op Op[T, R]) Apply(src Query[T]) R {
	return op(src)
}

// Apply attaches op to src. It is the free-function form of Op.Apply, for
// call sites that read better with the source first.
func Apply[T, R any](src Query[T], op Op[T, R]) R {
	return op(src)
}

// Bind closes a one-parameter operator over its argument, producing a
// reusable deferred operation:
//
//	evens := llll.Bind(llll.Where[int], func(x int) bool { return x%2 == 0 })
//	a := evens.Apply(llll.Range(0, 10))
//	b := evens.Apply(llll.Of(7, 8, 9))
func Bind[T, P, R any](f func(Query[T], P) R, param P) Op[T, R] {
	return func(src Query[T]) R {
		return f(src, param)
	}
}

// Bind2 is Bind for two-parameter operators.
func Bind2[T, P1, P2, R any](f func(Query[T], P1, P2) R, p1 P1, p2 P2) Op[T, R] {
	return func(src Query[T]) R {
		return f(src, p1, p2)
	}
}

// Chain fuses a lazy stage with the operation consuming its output. No
// intermediate materialization happens: the stage's Query is as lazy as any
// other, and next pulls from it on demand.
func Chain[T, M, R any](stage Op[T, Query[M]], next Op[M, R]) Op[T, R] {
	return func(src Query[T]) R {
		return next(stage(src))
	}
}
