package bridge

// Outcome is the tagged result of a logical operation: either a success
// payload or a human-readable failure reason. The zero value is a failure
// with an empty reason; real values come from Success and Failure, so a
// success with an empty payload stays unambiguous.
type Outcome[T any] struct {
	value   T
	reason  string
	success bool
}

// Success wraps a payload in a successful Outcome.
func Success[T any](value T) Outcome[T] {
	return Outcome[T]{value: value, success: true}
}

// Failure builds a failed Outcome carrying a diagnostic reason.
func Failure[T any](reason string) Outcome[T] {
	return Outcome[T]{reason: reason}
}

// OK reports whether the operation succeeded.
func (o Outcome[T]) OK() bool { return o.success }

// Value returns the success payload. For failures it is the zero value.
func (o Outcome[T]) Value() T { return o.value }

// Reason returns the failure diagnostic. For successes it is empty.
func (o Outcome[T]) Reason() string { return o.reason }
