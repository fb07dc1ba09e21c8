package journal

// Result is the outcome of a service call: either a value or a rejection
// reason. The zero Result is a failure with an empty reason.
type Result[T any] struct {
	value  T
	reason string
	ok     bool
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Fail wraps a rejection reason.
func Fail[T any](reason string) Result[T] {
	return Result[T]{reason: reason}
}

// IsOk reports whether r carries a value.
func (r Result[T]) IsOk() bool { return r.ok }

// Value returns the carried value and true, or the zero value and false.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.ok
}

// Reason returns the rejection reason, empty on success.
func (r Result[T]) Reason() string {
	if r.ok {
		return ""
	}
	return r.reason
}

// Match calls exactly one of the handlers. Both must be supplied, which keeps
// every call site handling the failure branch.
func (r Result[T]) Match(onOk func(T), onFail func(reason string)) {
	if r.ok {
		onOk(r.value)
		return
	}
	onFail(r.reason)
}
