package optional

// Fold reduces an Option to a plain value:
// it applies f to the contained value if one is present,
// otherwise it returns def without invoking f.
//
// Fold is the primitive the rest of the combinators are built on.
// It is a package-level function rather than a method,
// because Go does not allow methods to introduce new type parameters.
func Fold[T any, U any](opt Option[T], def U, f func(T) U) U {
	if !opt.HasValue() {
		return def
	}

	return f(opt.Value())
}

// GetOrElse returns the contained value, or def when the Option is empty.
func GetOrElse[T any](opt Option[T], def T) T {
	return Fold(opt, def, func(v T) T { return v })
}

// IsSome returns true if the Option contains a value.
func IsSome[T any](opt Option[T]) bool {
	return Fold(opt, false, func(T) bool { return true })
}

// IsNone returns true if the Option is empty.
func IsNone[T any](opt Option[T]) bool {
	return !IsSome(opt)
}

// Map transforms the contained value with f.
// An empty Option stays empty and f is not invoked.
func Map[T any, U any](opt Option[T], f func(T) U) Option[U] {
	return Fold(opt, None[U](), func(v T) Option[U] {
		return Some(f(v))
	})
}

// AndThen chains the Option with a function that itself returns an Option.
func AndThen[T any, U any](opt Option[T], f func(T) Option[U]) Option[U] {
	return Fold(opt, None[U](), f)
}

// Filter keeps the contained value only if it satisfies the predicate,
// returning the value unchanged on the true path.
func Filter[T any](opt Option[T], predicate func(T) bool) Option[T] {
	return Fold(opt, None[T](), func(v T) Option[T] {
		if !predicate(v) {
			return None[T]()
		}

		return Some(v)
	})
}

// OrElse returns opt when it contains a value, otherwise the Option produced by fn.
// fn is invoked lazily: a present value never triggers the fallback computation.
func OrElse[T any](opt Option[T], fn func() Option[T]) Option[T] {
	if opt.HasValue() {
		return opt
	}

	return fn()
}

// Xor returns whichever of the two Options contains a value,
// provided the other one is empty.
// In every other case (both present, both empty) it returns an empty Option.
func Xor[T any](opt Option[T], other Option[T]) Option[T] {
	switch {
	case opt.HasValue() && !other.HasValue():
		return Fold(opt, None[T](), Some[T])
	case !opt.HasValue() && other.HasValue():
		return Fold(other, None[T](), Some[T])
	default:
		return None[T]()
	}
}
