package util

import "fmt"

// Option provides a simple encoding for an optional value.  This is used
// wherever the absence of a value is expected rather than erroneous (e.g. the
// minimum of an empty sequence).  An empty option must be checked explicitly
// before being unwrapped.
type Option[T any] struct {
	// Indicates whether value present
	some bool
	// The value itself
	value T
}

// Some constructs an option which holds a value.
func Some[T any](val T) Option[T] {
	return Option[T]{true, val}
}

// None constructs an option which doesn't hold a value.
func None[T any]() Option[T] {
	var empty T
	return Option[T]{false, empty}
}

// HasValue indicates whether or not this option contains an actual value, or
// whether it is empty.
func (o Option[T]) HasValue() bool {
	return o.some
}

// IsEmpty indicates whether or not this option is empty (i.e. contains no value).
func (o Option[T]) IsEmpty() bool {
	return !o.some
}

// Unwrap returns the value contained, or raises an unrecoverable error if this
// option is empty.
func (o Option[T]) Unwrap() T {
	if !o.some {
		Unrecoverable("cannot unwrap an empty option")
	}
	//
	return o.value
}

// UnwrapOr returns the value contained, or the given default if this option is
// empty.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	//
	return def
}

// Get returns the contained value (or the zero value) along with an indication
// of whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	//
	return "None"
}

// MapOption applies a function to the contents of an option (if any).
func MapOption[S, T any](o Option[S], fn func(S) T) Option[T] {
	if o.some {
		return Some(fn(o.value))
	}
	//
	return None[T]()
}
