package engine

// CollisionHandler is implemented by components that react when their
// object starts touching another one.
type CollisionHandler interface {
	OnCollisionEnter(other *GameObject)
}

// NotifyCollision tells the live components of a about b and those of b
// about a. Nothing happens if either object is already dead.
func NotifyCollision(a, b *GameObject) {
	if !IsAlive(a) || !IsAlive(b) {
		return
	}
	dispatchCollision(a, b)
	dispatchCollision(b, a)
}

func dispatchCollision(g, other *GameObject) {
	for _, c := range g.Components() {
		if h, ok := c.(CollisionHandler); ok && IsAlive(c) {
			h.OnCollisionEnter(other)
		}
	}
}
