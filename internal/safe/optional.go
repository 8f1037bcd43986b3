package safe

// Optional holds a lookup result that may be absent.
type Optional[T any] struct {
	v  T
	ok bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{v: v, ok: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsNone() bool {
	return !o.ok
}

func (o Optional[T]) Get() (T, bool) {
	return o.v, o.ok
}

// OrZero returns the value, or T's zero value when absent.
func (o Optional[T]) OrZero() T {
	return o.v
}

// Unwrap returns the value and panics when absent.
func (o Optional[T]) Unwrap() T {
	if !o.ok {
		panic("safe: Unwrap on empty Optional")
	}
	return o.v
}
