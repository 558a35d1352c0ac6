package llll

import (
	"iter"

	"github.com/kana/go-llll/internal/iterx"
)

// Query is a lazily-evaluated sequence of values of type T.
//
// A Query holds nothing but an iter.Seq; constructing one, or applying any
// of the lazy operators in this package, performs no iteration. Elements are
// produced on demand when the sequence returned by Seq is traversed, and the
// traversal may be abandoned at any point.
//
// A Query may be iterated any number of times as long as its origin can be
// re-traversed (slices can; a channel cannot: a second pass over a
// channel-backed Query yields nothing). Each iteration re-runs the whole
// chain from the origin.
//
// The zero value is an empty sequence.
type Query[T any] struct {
	seq iter.Seq[T]
}

// From wraps an iter.Seq in a Query.
func From[T any](seq iter.Seq[T]) Query[T] {
	return Query[T]{seq: seq}
}

// FromSlice returns a Query over the elements of items.
//
// The slice is not copied; it must not be mutated while a traversal is in
// progress.
func FromSlice[T any](items []T) Query[T] {
	return From(iterx.FromSlice(items))
}

// FromChan returns a Query that drains ch.
//
// A channel is a single-pass source: once a traversal has consumed it,
// further iterations of the Query yield nothing.
func FromChan[T any](ch <-chan T) Query[T] {
	return From(iterx.FromChan(ch))
}

// Of returns a Query over the given values.
func Of[T any](items ...T) Query[T] {
	return FromSlice(items)
}

// Empty returns a Query that yields no elements.
func Empty[T any]() Query[T] {
	return Query[T]{seq: func(yield func(T) bool) {}}
}

// Range returns a Query producing count consecutive integers starting at
// start. A non-positive count yields an empty sequence.
func Range(start, count int) Query[int] {
	return Query[int]{seq: func(yield func(int) bool) {
		for i := 0; i < count; i++ {
			if !yield(start + i) {
				return
			}
		}
	}}
}

// Repeat returns a Query that yields v exactly n times.
func Repeat[T any](v T, n int) Query[T] {
	return Query[T]{seq: func(yield func(T) bool) {
		for i := 0; i < n; i++ {
			if !yield(v) {
				return
			}
		}
	}}
}

// RepeatForever returns an unbounded Query that yields v until the consumer
// stops pulling. Bound it with Take or a similar prefix operator before
// attaching an eager reducer, or the reducer will never return.
func RepeatForever[T any](v T) Query[T] {
	return Query[T]{seq: func(yield func(T) bool) {
		for yield(v) {
		}
	}}
}

// Seq returns the underlying iter.Seq for consumption with range.
func (q Query[T]) Seq() iter.Seq[T] {
	if q.seq == nil {
		return func(yield func(T) bool) {}
	}
	return q.seq
}

// Pipe applies the given type-preserving operations in order and returns the
// resulting Query. Like every lazy operator, Pipe does no iteration itself.
func (q Query[T]) Pipe(ops ...Op[T, Query[T]]) Query[T] {
	out := q
	for _, op := range ops {
		out = op(out)
	}
	return out
}

// Tap returns a Query that calls fn for every element as it flows through,
// without altering the sequence. Useful for debugging a chain in place.
//
// Tap panics if fn is nil.
func (q Query[T]) Tap(fn func(T)) Query[T] {
	if fn == nil {
		panic("llll.Tap: fn must not be nil")
	}
	return Query[T]{seq: func(yield func(T) bool) {
		for v := range q.Seq() {
			fn(v)
			if !yield(v) {
				return
			}
		}
	}}
}
