package llll

import (
	"cmp"
	"fmt"
	"slices"
)

// Number covers the built-in numeric kinds accepted by the arithmetic
// reducers. Arithmetic follows the native semantics of the instantiated
// type; in particular, Average over an integer type truncates.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// matches folds the optional predicates of a reducer into one. With no
// predicates every element matches; with several, all must hold.
func matches[T any](preds []Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// All reports whether every element satisfies pred. It is true for an empty
// sequence and stops at the first failing element.
func All[T any](q Query[T], pred Predicate[T]) bool {
	for v := range q.Seq() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Any reports whether at least one element satisfies the optional
// predicates (with none given, whether the sequence is non-empty). It stops
// at the first match.
func Any[T any](q Query[T], preds ...Predicate[T]) bool {
	_, ok := firstMatch(q, preds)
	return ok
}

// Contains reports whether the sequence contains v. It stops at the first
// occurrence.
func Contains[T comparable](q Query[T], v T) bool {
	return Any(q, func(x T) bool { return x == v })
}

// Count returns the number of elements satisfying the optional predicates
// (with none given, the length of the sequence). The scan is a full pass
// over the filtered sequence.
func Count[T any](q Query[T], preds ...Predicate[T]) int {
	n := 0
	for range Where(q, matches(preds)).Seq() {
		n++
	}
	return n
}

// Sum returns the sum of the elements, zero for an empty sequence.
func Sum[N Number](q Query[N]) N {
	return SumBy(q, func(v N) N { return v })
}

// SumBy returns the sum of the values extracted by sel.
func SumBy[T any, N Number](q Query[T], sel Selector[T, N]) N {
	var sum N
	for v := range q.Seq() {
		sum += sel(v)
	}
	return sum
}

// Average returns the arithmetic mean of the elements using N's native
// division, or ErrNoElement for an empty sequence.
func Average[N Number](q Query[N]) (N, error) {
	return AverageBy(q, func(v N) N { return v })
}

// AverageBy returns the arithmetic mean of the values extracted by sel, or
// ErrNoElement for an empty sequence.
func AverageBy[T any, N Number](q Query[T], sel Selector[T, N]) (N, error) {
	var sum N
	var n int
	for v := range q.Seq() {
		sum += sel(v)
		n++
	}
	if n == 0 {
		var zero N
		return zero, ErrNoElement
	}
	return sum / N(n), nil
}

// Min returns the smallest element, or ErrNoElement for an empty sequence.
func Min[K cmp.Ordered](q Query[K]) (K, error) {
	return MinBy(q, func(v K) K { return v })
}

// MinBy returns the smallest of the values extracted by sel (the projected
// value, not the element it came from), or ErrNoElement for an empty
// sequence.
func MinBy[T any, K cmp.Ordered](q Query[T], sel Selector[T, K]) (K, error) {
	var best K
	found := false
	for v := range q.Seq() {
		if k := sel(v); !found || k < best {
			best = k
			found = true
		}
	}
	if !found {
		var zero K
		return zero, ErrNoElement
	}
	return best, nil
}

// Max returns the largest element, or ErrNoElement for an empty sequence.
func Max[K cmp.Ordered](q Query[K]) (K, error) {
	return MaxBy(q, func(v K) K { return v })
}

// MaxBy returns the largest of the values extracted by sel, or ErrNoElement
// for an empty sequence.
func MaxBy[T any, K cmp.Ordered](q Query[T], sel Selector[T, K]) (K, error) {
	var best K
	found := false
	for v := range q.Seq() {
		if k := sel(v); !found || k > best {
			best = k
			found = true
		}
	}
	if !found {
		var zero K
		return zero, ErrNoElement
	}
	return best, nil
}

// firstMatch scans front-to-back and returns the first element satisfying
// the predicates, stopping as soon as it is found. It is the shared core of
// First, FirstOrDefault and Any, so the strict and permissive forms cannot
// diverge.
func firstMatch[T any](q Query[T], preds []Predicate[T]) (T, bool) {
	pred := matches(preds)
	for v := range q.Seq() {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// First returns the first element satisfying the optional predicates, or
// ErrNoElement when there is none.
func First[T any](q Query[T], preds ...Predicate[T]) (T, error) {
	v, ok := firstMatch(q, preds)
	if !ok {
		return v, ErrNoElement
	}
	return v, nil
}

// FirstOrDefault returns the first element satisfying the optional
// predicates, or def when there is none. An element that happens to equal
// def is still a genuine match.
func FirstOrDefault[T any](q Query[T], def T, preds ...Predicate[T]) T {
	v, ok := firstMatch(q, preds)
	if !ok {
		return def
	}
	return v
}

// lastMatch scans the whole sequence and remembers the last element
// satisfying the predicates.
func lastMatch[T any](q Query[T], preds []Predicate[T]) (T, bool) {
	pred := matches(preds)
	var last T
	found := false
	for v := range q.Seq() {
		if pred(v) {
			last = v
			found = true
		}
	}
	return last, found
}

// Last returns the last element satisfying the optional predicates, or
// ErrNoElement when there is none.
func Last[T any](q Query[T], preds ...Predicate[T]) (T, error) {
	v, ok := lastMatch(q, preds)
	if !ok {
		return v, ErrNoElement
	}
	return v, nil
}

// LastOrDefault returns the last element satisfying the optional
// predicates, or def when there is none.
func LastOrDefault[T any](q Query[T], def T, preds ...Predicate[T]) T {
	v, ok := lastMatch(q, preds)
	if !ok {
		return def
	}
	return v
}

// elementAt pulls until the 0-based index is reached; a negative index never
// matches.
func elementAt[T any](q Query[T], index int) (T, bool) {
	if index >= 0 {
		i := 0
		for v := range q.Seq() {
			if i == index {
				return v, true
			}
			i++
		}
	}
	var zero T
	return zero, false
}

// ElementAt returns the element at the 0-based index, or an error wrapping
// ErrIndexOutOfRange when the sequence is too short or index is negative.
func ElementAt[T any](q Query[T], index int) (T, error) {
	v, ok := elementAt(q, index)
	if !ok {
		return v, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return v, nil
}

// ElementAtOrDefault returns the element at the 0-based index, or def when
// the sequence is too short or index is negative.
func ElementAtOrDefault[T any](q Query[T], index int, def T) T {
	v, ok := elementAt(q, index)
	if !ok {
		return def
	}
	return v
}

// singleMatch enforces the exactly-one rule over the filtered sequence. A
// second match aborts the scan with ErrNotSingle; zero matches report
// ok=false and leave the distinction to the caller.
func singleMatch[T any](q Query[T], preds []Predicate[T]) (T, bool, error) {
	var the T
	found := false
	for v := range Where(q, matches(preds)).Seq() {
		if found {
			var zero T
			return zero, false, ErrNotSingle
		}
		the = v
		found = true
	}
	return the, found, nil
}

// Single returns the only element satisfying the optional predicates.
// Zero matches and more than one match are both ErrNotSingle.
func Single[T any](q Query[T], preds ...Predicate[T]) (T, error) {
	v, ok, err := singleMatch(q, preds)
	if err != nil {
		return v, err
	}
	if !ok {
		var zero T
		return zero, ErrNotSingle
	}
	return v, nil
}

// SingleOrDefault returns the only element satisfying the optional
// predicates, or def when there is none. More than one match is still
// ErrNotSingle: the default only stands in for emptiness, never for
// ambiguity.
func SingleOrDefault[T any](q Query[T], def T, preds ...Predicate[T]) (T, error) {
	v, ok, err := singleMatch(q, preds)
	if err != nil {
		return v, err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

// ToSlice materializes the sequence into a slice, in source order.
func ToSlice[T any](q Query[T]) []T {
	return slices.Collect(q.Seq())
}
