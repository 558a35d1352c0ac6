package llll

import "fmt"

// ToDict materializes the sequence into a map keyed by the value extracted
// by key, with the elements themselves as values. A duplicate key is a usage
// error and fails at the element that collides, wrapping ErrDuplicateKey.
func ToDict[T any, K comparable](q Query[T], key KeyFunc[T, K]) (map[K]T, error) {
	return ToDictBy(q, key, func(v T) T { return v })
}

// ToDictBy is ToDict with the stored values projected by val. Both functions
// are evaluated exactly once per element, in source order.
func ToDictBy[T any, K comparable, V any](q Query[T], key KeyFunc[T, K], val Selector[T, V]) (map[K]V, error) {
	d := make(map[K]V)
	for x := range q.Seq() {
		k := key(x)
		v := val(x)
		if _, dup := d[k]; dup {
			return nil, fmt.Errorf("%w: %v (for %v)", ErrDuplicateKey, k, x)
		}
		d[k] = v
	}
	return d, nil
}

// Lookup is a one-to-many map built by ToLookup. Keys appear in the order
// they were first seen, and each key's values keep their encounter order.
type Lookup[K comparable, V any] struct {
	keys   []K
	groups map[K][]V
}

// Get returns the values grouped under k as a Query, empty when k is absent.
func (l *Lookup[K, V]) Get(k K) Query[V] {
	return FromSlice(l.groups[k])
}

// Has reports whether any element was grouped under k.
func (l *Lookup[K, V]) Has(k K) bool {
	_, ok := l.groups[k]
	return ok
}

// Keys returns the distinct keys in first-seen order.
func (l *Lookup[K, V]) Keys() []K {
	out := make([]K, len(l.keys))
	copy(out, l.keys)
	return out
}

// Len returns the number of distinct keys.
func (l *Lookup[K, V]) Len() int {
	return len(l.keys)
}

// ToLookup materializes the sequence into a Lookup keyed by the value
// extracted by key, grouping the elements themselves. Repeated keys append;
// ToLookup never fails.
func ToLookup[T any, K comparable](q Query[T], key KeyFunc[T, K]) *Lookup[K, T] {
	return ToLookupBy(q, key, func(v T) T { return v })
}

// ToLookupBy is ToLookup with the grouped values projected by val. Both
// functions are evaluated exactly once per element, in source order.
func ToLookupBy[T any, K comparable, V any](q Query[T], key KeyFunc[T, K], val Selector[T, V]) *Lookup[K, V] {
	l := &Lookup[K, V]{groups: make(map[K][]V)}
	for x := range q.Seq() {
		k := key(x)
		v := val(x)
		if _, seen := l.groups[k]; !seen {
			l.keys = append(l.keys, k)
		}
		l.groups[k] = append(l.groups[k], v)
	}
	return l
}
