package llll

import (
	"slices"

	"github.com/kana/go-llll/internal/iterx"
)

type (
	// Predicate reports whether a value should be kept.
	Predicate[T any] func(v T) bool

	// IndexedPredicate is a Predicate that also receives the element's
	// 0-based position in the source.
	IndexedPredicate[T any] func(v T, i int) bool

	// Selector is a pure projection from a value of type T to a value of
	// type R.
	Selector[T, R any] func(v T) R

	// IndexedSelector is a Selector that also receives the element's
	// 0-based position in the source.
	IndexedSelector[T, R any] func(v T, i int) R

	// KeyFunc extracts a key from an element, for ordering and grouping.
	KeyFunc[T, K any] func(v T) K
)

// Where returns a Query yielding only the elements for which pred returns
// true.
func Where[T any](q Query[T], pred Predicate[T]) Query[T] {
	return Query[T]{seq: func(yield func(T) bool) {
		for v := range q.Seq() {
			if pred(v) {
				if !yield(v) {
					return
				}
			}
		}
	}}
}

// WhereIndexed is Where with the element's position passed to the predicate.
func WhereIndexed[T any](q Query[T], pred IndexedPredicate[T]) Query[T] {
	return Query[T]{seq: func(yield func(T) bool) {
		for i, v := range iterx.Indexed(q.Seq()) {
			if pred(v, i) {
				if !yield(v) {
					return
				}
			}
		}
	}}
}

// Select transforms each element using fn and returns a Query producing the
// projected values.
func Select[T, R any](q Query[T], fn Selector[T, R]) Query[R] {
	return Query[R]{seq: func(yield func(R) bool) {
		for v := range q.Seq() {
			if !yield(fn(v)) {
				return
			}
		}
	}}
}

// SelectIndexed is Select with the element's position passed to fn.
func SelectIndexed[T, R any](q Query[T], fn IndexedSelector[T, R]) Query[R] {
	return Query[R]{seq: func(yield func(R) bool) {
		for i, v := range iterx.Indexed(q.Seq()) {
			if !yield(fn(v, i)) {
				return
			}
		}
	}}
}

// SelectMany maps each element to a slice and flattens the results, emitting
// the values of each slice in order.
func SelectMany[T, R any](q Query[T], fn Selector[T, []R]) Query[R] {
	return Query[R]{seq: func(yield func(R) bool) {
		for v := range q.Seq() {
			for _, r := range fn(v) {
				if !yield(r) {
					return
				}
			}
		}
	}}
}

// SelectManyIndexed is SelectMany with the element's position passed to fn.
func SelectManyIndexed[T, R any](q Query[T], fn IndexedSelector[T, []R]) Query[R] {
	return Query[R]{seq: func(yield func(R) bool) {
		for i, v := range iterx.Indexed(q.Seq()) {
			for _, r := range fn(v, i) {
				if !yield(r) {
					return
				}
			}
		}
	}}
}

// Skip returns a Query that omits the first n elements. A non-positive n
// skips nothing.
func Skip[T any](q Query[T], n int) Query[T] {
	return Query[T]{seq: func(yield func(T) bool) {
		i := 0
		for v := range q.Seq() {
			if i >= n {
				if !yield(v) {
					return
				}
			}
			i++
		}
	}}
}

// SkipWhile omits leading elements while pred returns true, then yields the
// rest. Once an element fails the predicate, no further elements are
// inspected.
func SkipWhile[T any](q Query[T], pred Predicate[T]) Query[T] {
	return Query[T]{seq: func(yield func(T) bool) {
		skipping := true
		for v := range q.Seq() {
			if skipping && pred(v) {
				continue
			}
			skipping = false
			if !yield(v) {
				return
			}
		}
	}}
}

// SkipWhileIndexed is SkipWhile with the element's position passed to pred.
func SkipWhileIndexed[T any](q Query[T], pred IndexedPredicate[T]) Query[T] {
	return Query[T]{seq: func(yield func(T) bool) {
		skipping := true
		for i, v := range iterx.Indexed(q.Seq()) {
			if skipping && pred(v, i) {
				continue
			}
			skipping = false
			if !yield(v) {
				return
			}
		}
	}}
}

// Take returns a Query yielding at most the first n elements. It stops
// pulling from the source once n elements have been emitted, so it can bound
// an unbounded source such as RepeatForever.
func Take[T any](q Query[T], n int) Query[T] {
	return Query[T]{seq: func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range q.Seq() {
			if !yield(v) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	}}
}

// TakeWhile yields leading elements while pred returns true and stops at the
// first failure without emitting it.
func TakeWhile[T any](q Query[T], pred Predicate[T]) Query[T] {
	return Query[T]{seq: func(yield func(T) bool) {
		for v := range q.Seq() {
			if !pred(v) {
				return
			}
			if !yield(v) {
				return
			}
		}
	}}
}

// TakeWhileIndexed is TakeWhile with the element's position passed to pred.
func TakeWhileIndexed[T any](q Query[T], pred IndexedPredicate[T]) Query[T] {
	return Query[T]{seq: func(yield func(T) bool) {
		for i, v := range iterx.Indexed(q.Seq()) {
			if !pred(v, i) {
				return
			}
			if !yield(v) {
				return
			}
		}
	}}
}

// Distinct returns a Query yielding each distinct element once, keeping the
// first occurrence and the source order. The seen-table lives inside the
// iteration, so separate iterations are independent.
func Distinct[T comparable](q Query[T]) Query[T] {
	return Query[T]{seq: func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range q.Seq() {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}}
}

// ExceptFrom returns a Query yielding the elements of q that do not appear
// in excluded. Each occurrence is tested individually, so duplicates in q
// that survive the exclusion are all kept. The exclusion sequence is
// materialized into a membership set when iteration begins.
func ExceptFrom[T comparable](q Query[T], excluded Query[T]) Query[T] {
	return Query[T]{seq: func(yield func(T) bool) {
		drop := make(map[T]struct{})
		for v := range excluded.Seq() {
			drop[v] = struct{}{}
		}
		for v := range q.Seq() {
			if _, ok := drop[v]; ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}}
}

// Concat returns a Query yielding all elements of q followed by all elements
// of other.
func Concat[T any](q Query[T], other Query[T]) Query[T] {
	return Query[T]{seq: func(yield func(T) bool) {
		for v := range q.Seq() {
			if !yield(v) {
				return
			}
		}
		for v := range other.Seq() {
			if !yield(v) {
				return
			}
		}
	}}
}

// DefaultIfEmpty yields the elements of q unchanged, or the single value def
// when q turns out to be empty.
func DefaultIfEmpty[T any](q Query[T], def T) Query[T] {
	return Query[T]{seq: func(yield func(T) bool) {
		empty := true
		for v := range q.Seq() {
			empty = false
			if !yield(v) {
				return
			}
		}
		if empty {
			yield(def)
		}
	}}
}

// Reverse returns a Query yielding the elements of q in reverse order. The
// source is collected when iteration begins, not at construction.
func Reverse[T any](q Query[T]) Query[T] {
	return Query[T]{seq: func(yield func(T) bool) {
		vs := slices.Collect(q.Seq())
		for i := len(vs) - 1; i >= 0; i-- {
			if !yield(vs[i]) {
				return
			}
		}
	}}
}
