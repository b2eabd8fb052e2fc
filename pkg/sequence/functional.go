package sequence

import "iter"

// Iterator is a generic, immutable iterator for any type T.
type Iterator[T any] struct {
	seq iter.Seq[T]
}

// From creates a new Iterator over a slice of T.
func From[T any](data []T) *Iterator[T] {
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			for _, v := range data {
				if !yield(v) {
					return
				}
			}
		},
	}
}

// Reduce folds the iterator into a single value, starting from init.
// Elements are visited in order, so the result of a non-commutative reducer
// follows the source order.
func (i *Iterator[T]) Reduce(init T, reducer func(T, T) T) T {
	acc := init
	for v := range i.seq {
		acc = reducer(acc, v)
	}
	return acc
}

// Count returns the number of elements.
func (i *Iterator[T]) Count() int {
	n := 0
	for range i.seq {
		n++
	}
	return n
}

// ToArray applies the callback to each element and returns the results in order.
func ToArray[T any, S any](it *Iterator[T], callback func(T) S) []S {
	arr := make([]S, 0, it.Count())
	for v := range it.seq {
		arr = append(arr, callback(v))
	}
	return arr
}
