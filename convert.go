package optional

// Unwrap returns the contained value.
//
// It panics when the Option is empty:
// callers are expected to check presence (HasValue or IsSome) first.
func Unwrap[T any](opt Option[T]) T {
	if !opt.HasValue() {
		panic("optional: unwrap of empty Option")
	}

	return opt.Value()
}

// Get returns the contained value in the comma-ok form.
func Get[T any](opt Option[T]) (T, bool) {
	return opt.Value(), opt.HasValue()
}

// FromPointer converts a pointer to an Option:
// nil becomes an empty Option, anything else is dereferenced and wrapped.
func FromPointer[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}

	return Some(*p)
}

// ToPointer converts an Option to a pointer: an empty Option becomes nil.
func ToPointer[T any](opt Option[T]) *T {
	var def *T

	return Fold(opt, def, func(v T) *T { return &v })
}
