package safe

import "safeget/internal/engine"

// Release asks the engine to destroy *ref after delay seconds and clears
// *ref right away, whether or not the teardown has happened yet. Releasing
// a nil or already destroyed handle only clears it.
func Release[T engine.Object](ref *T, delay float32) {
	if ref == nil {
		return
	}
	if engine.IsAlive(*ref) {
		engine.Destroy(*ref, delay)
	}
	var zero T
	*ref = zero
}
