// Package iterx holds small adapters between concrete sources and iter.Seq.
package iterx

import (
	"iter"
)

func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				break
			}
		}
	}
}

func FromChan[T any](in <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range in {
			if !yield(item) {
				break
			}
		}
	}
}

// Indexed pairs each element with its 0-based position. The counter lives
// inside the returned closure, so every iteration restarts from zero.
func Indexed[T any](in iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for item := range in {
			if !yield(i, item) {
				break
			}
			i++
		}
	}
}
