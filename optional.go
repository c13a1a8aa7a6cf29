// Package optional provides a generic optional value:
// a container that either holds a value or holds nothing.
package optional

// Option represents an optional value.
// It either contains a value or it does not.
//
// The interface is intentionally minimal: HasValue is a non-consuming presence check
// and Value extracts the contained value.
// Everything else in this package is derived from the Fold primitive,
// so any container implementing these two methods gets the whole combinator family for free.
type Option[T any] interface {
	// HasValue returns true if the Option contains a value.
	HasValue() bool

	// Value returns the value (or its default) stored in the Option.
	Value() T
}

// Some returns an Option containing v.
func Some[T any](v T) Option[T] {
	return some[T]{value: v}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return none[T]{}
}

type some[T any] struct {
	value T
}

func (o some[T]) HasValue() bool { return true }
func (o some[T]) Value() T       { return o.value }

type none[T any] struct{}

func (o none[T]) HasValue() bool { return false }
func (o none[T]) Value() T {
	var value T

	return value
}
