package llll

import (
	"cmp"
	"iter"
	"slices"
)

// Ordered is a lazily-sorted view over a source sequence.
//
// It carries the underlying source and a composed comparison; constructing
// one via OrderBy or ThenBy evaluates no keys and sorts nothing. Only
// when the view is iterated is the source collected and stable-sorted, and
// every independent iteration re-collects and re-sorts, so the view stays
// consistent with a source whose content is re-derived per traversal.
//
// Chained ThenBy calls extend the comparison without sorting: the previous
// ordering stays the primary criteria and each new key becomes the next
// tie-break. One sort runs per iteration, with the fully composed
// comparison.
type Ordered[T any] struct {
	src     iter.Seq[T]
	compare func(a, b T) int
}

// OrderBy returns an Ordered view over q, sorted ascending by the key
// extracted by key. The sort is stable: elements with equal keys keep their
// source order.
func OrderBy[T any, K cmp.Ordered](q Query[T], key KeyFunc[T, K]) *Ordered[T] {
	return &Ordered[T]{
		src: q.Seq(),
		compare: func(a, b T) int {
			return cmp.Compare(key(a), key(b))
		},
	}
}

// OrderByDescending is OrderBy with the key order reversed.
func OrderByDescending[T any, K cmp.Ordered](q Query[T], key KeyFunc[T, K]) *Ordered[T] {
	return &Ordered[T]{
		src: q.Seq(),
		compare: func(a, b T) int {
			return cmp.Compare(key(b), key(a))
		},
	}
}

// ThenBy returns a new Ordered view over the same original source as o,
// ordered by o's comparison first and ascending by key as a tie-break.
//
// ThenBy must follow OrderBy; the type system enforces this, and a nil view
// panics here rather than at iteration time.
func ThenBy[T any, K cmp.Ordered](o *Ordered[T], key KeyFunc[T, K]) *Ordered[T] {
	if o == nil {
		panic("llll.ThenBy: sequence must be sorted with OrderBy first")
	}
	prev := o.compare
	return &Ordered[T]{
		src: o.src,
		compare: func(a, b T) int {
			if c := prev(a, b); c != 0 {
				return c
			}
			return cmp.Compare(key(a), key(b))
		},
	}
}

// ThenByDescending is ThenBy with the tie-break order reversed.
func ThenByDescending[T any, K cmp.Ordered](o *Ordered[T], key KeyFunc[T, K]) *Ordered[T] {
	if o == nil {
		panic("llll.ThenByDescending: sequence must be sorted with OrderBy first")
	}
	prev := o.compare
	return &Ordered[T]{
		src: o.src,
		compare: func(a, b T) int {
			if c := prev(a, b); c != 0 {
				return c
			}
			return cmp.Compare(key(b), key(a))
		},
	}
}

// Query returns the sorted view as a Query for further chaining. Sorting
// happens when the result is iterated, once per iteration.
func (o *Ordered[T]) Query() Query[T] {
	return Query[T]{seq: o.Seq()}
}

// Seq returns an iter.Seq that collects the source, stable-sorts it with the
// composed comparison and yields the elements in order. Nothing is cached
// across iterations.
func (o *Ordered[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		vs := slices.Collect(o.src)
		slices.SortStableFunc(vs, o.compare)
		for _, v := range vs {
			if !yield(v) {
				return
			}
		}
	}
}
