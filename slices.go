package optional

import "golang.org/x/exp/constraints"

// First returns the first element of items.
// Returns an empty Option if the slice is empty.
func First[T any](items []T) Option[T] {
	if len(items) == 0 {
		return None[T]()
	}

	return Some(items[0])
}

// Last returns the last element of items.
// Returns an empty Option if the slice is empty.
func Last[T any](items []T) Option[T] {
	if len(items) == 0 {
		return None[T]()
	}

	return Some(items[len(items)-1])
}

// Min computes the smallest element of items.
// Returns an empty Option if the slice is empty.
func Min[T constraints.Ordered](items []T) Option[T] {
	if len(items) == 0 {
		return None[T]()
	}

	m := items[0]
	for i := 1; i < len(items); i++ {
		if items[i] < m {
			m = items[i]
		}
	}

	return Some(m)
}

// Max computes the largest element of items.
// Returns an empty Option if the slice is empty.
func Max[T constraints.Ordered](items []T) Option[T] {
	if len(items) == 0 {
		return None[T]()
	}

	m := items[0]
	for i := 1; i < len(items); i++ {
		if items[i] > m {
			m = items[i]
		}
	}

	return Some(m)
}
