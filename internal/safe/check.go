package safe

import (
	"fmt"

	"safeget/internal/engine"
)

// Check validates a handle the caller already holds. A live c is returned
// as is; a nil or destroyed c fails the same way Get does, attributed to
// src. Scope options only change the wording of the default message.
func Check[T any](src engine.Object, c T, opts ...Option) (T, error) {
	var zero T
	g, err := resolve(src)
	if err != nil {
		return zero, err
	}
	if present(c) {
		return c, nil
	}
	return zero, miss(newConfig(opts), g, typeName[T]())
}

// Alive turns a possibly destroyed handle into an Optional that is empty
// unless c is live.
func Alive[T any](c T) Optional[T] {
	if present(c) {
		return Some(c)
	}
	return None[T]()
}

// Swap always searches again and overwrites *target, even when it still
// holds a live component. On failure *target is cleared.
func Swap[T any](src engine.Object, target *T, opts ...Option) error {
	if target == nil {
		return fmt.Errorf("%w: nil target", ErrInvalidArgument)
	}
	c, err := Get[T](src, opts...)
	*target = c
	return err
}
