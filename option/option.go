// Package option provides a container for a value that may be absent.
// Presence is tracked by an explicit tag, so a zero or nil value held by the
// container is legal and distinguishable from absence.
package option

// Option holds a value of type T or nothing.
// An Option is immutable once constructed and compares by value.
// The zero value holds nothing.
type Option[T any] struct {
	val     T
	present bool
}

// Some returns an option holding val.
// val may be T's zero value; the option still reports presence.
func Some[T any](val T) Option[T] {
	return Option[T]{val: val, present: true}
}

// None returns an option holding nothing.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsPresent reports whether o holds a value.
func (o Option[T]) IsPresent() bool {
	return o.present
}

// Get returns the held value and whether o holds one.
func (o Option[T]) Get() (T, bool) {
	return o.val, o.present
}

// OrElse returns the held value, or fallback when o holds nothing.
func (o Option[T]) OrElse(fallback T) T {
	if !o.present {
		return fallback
	}
	return o.val
}
