// Package result provides a container representing the outcome of a fallible
// operation: it holds either a success payload or a failure payload, never both.
// Which variant a container holds is tracked by an explicit tag, so a zero or
// nil payload in either position is legal and unambiguous.
package result

// Result holds either a success value of type T or a failure value of type E.
// A Result is immutable once constructed and compares by value.
// The zero value is a failure holding E's zero value.
type Result[T, E any] struct {
	val T
	err E
	ok  bool
}

// Success returns a result whose success position holds val.
// val may be T's zero value; the result still reports success.
func Success[T, E any](val T) Result[T, E] {
	return Result[T, E]{val: val, ok: true}
}

// Failure returns a result whose failure position holds err.
func Failure[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// New converts a conventional (value, error) return pair into a Result.
// A non-nil err produces a failure; otherwise a success holding val.
func New[T any](val T, err error) Result[T, error] {
	if err != nil {
		return Failure[T, error](err)
	}
	return Success[T, error](val)
}

// IsSuccess reports whether r holds a success payload.
func (r Result[T, E]) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether r holds a failure payload.
func (r Result[T, E]) IsFailure() bool {
	return !r.ok
}

// Value returns the success payload and whether r is the success variant.
func (r Result[T, E]) Value() (T, bool) {
	return r.val, r.ok
}

// Err returns the failure payload and whether r is the failure variant.
func (r Result[T, E]) Err() (E, bool) {
	return r.err, !r.ok
}

// Unpack returns both positions at once. The position that is not populated
// yields its zero value.
func (r Result[T, E]) Unpack() (T, E) {
	return r.val, r.err
}

// MustValue returns the success payload. It panics with the failure payload
// if r is the failure variant.
func (r Result[T, E]) MustValue() T {
	if !r.ok {
		panic(r.err)
	}
	return r.val
}
