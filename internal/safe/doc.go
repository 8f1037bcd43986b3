// Package safe wraps the engine's component lookups so scripts never hold a
// handle to a destroyed component.
//
// Every lookup goes through engine.IsAlive, so a component that was never
// attached and one that was destroyed look the same to callers. The policy
// is chosen by the function and the search space by an option:
//
//	body, err := safe.Get[*components.Rigidbody](player)
//	col, err := safe.Get[components.Collider](player, safe.InChildren())
//	src, err := safe.Find[*components.AudioSource](player, safe.InParent())
//	if s, ok := src.Get(); ok {
//		s.Play()
//	}
//
// Get returns ErrNotFound (as a *NotFoundError) when nothing matches. Find
// reports absence through Optional and never returns ErrNotFound. Both
// return ErrInvalidArgument when the source itself is nil or destroyed.
//
// Check and Alive apply the same rules to a handle the caller already holds.
// Swap re-fetches unconditionally, where Assign only fills an empty target.
//
// Release schedules destruction and clears the caller's handle in one step.
package safe
