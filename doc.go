/*
Package llll provides LINQ-like, lazily-evaluated query operations over
iter.Seq, enabling filter/project/order/group pipelines without intermediate
buffering.

This package is built around Query[T], a thin wrapper over iter.Seq[T]
representing a demand-driven stream of values. All operators are provided as
package-level generic functions taking the source Query first, so pipelines
are composed by plain function application:

	evens := llll.Where(llll.Range(0, 10), func(x int) bool { return x%2 == 0 })
	names := llll.Select(evens, strconv.Itoa)
	out := llll.ToSlice(llll.Take(names, 3))

Lazy operators (Where, Select, SelectMany, Skip, Take, Distinct, Concat and
friends) return a new Query wrapping the previous one; no element is produced
until the chain is iterated, and stopping early stops the whole chain. Eager
reducers (First, Last, Single, Count, Sum, Average, ToSlice, ToDict,
ToLookup, ...) traverse the chain and return a concrete value.

Reducers that locate at most one element come in pairs sharing one scan: a
permissive form taking an explicit default (FirstOrDefault, LastOrDefault,
ElementAtOrDefault, SingleOrDefault) that never fails for "not found", and a
strict form (First, Last, ElementAt, Single) that reports a sentinel error
(ErrNoElement, ErrIndexOutOfRange, ErrNotSingle) instead. An element that
happens to equal the caller's default is never mistaken for "not found".

Ordering is incremental: OrderBy returns an Ordered view that sorts nothing
until iterated, and ThenBy refines the previous ordering with a tie-break
key without triggering any intermediate sort:

	byLen := llll.OrderBy(words, func(s string) int { return len(s) })
	sorted := llll.ThenBy(byLen, func(s string) string { return s }).Query()

A single stable sort runs per iteration with the fully composed comparison,
so equal elements keep their source order.

Operations can also be built once and attached to many sources via the Op
form:

	short := llll.Bind(llll.Where[string], func(s string) bool { return len(s) < 4 })
	a := short.Apply(llll.FromSlice(lines2023))
	b := short.Apply(llll.FromSlice(lines2024))

Everything is synchronous and single-threaded: there are no goroutines, no
channels and no shared state between independent iterations of the same
pipeline.
*/
package llll
