package engine

import "fmt"

// Scope selects which objects a component lookup searches.
type Scope int

const (
	// ScopeSelf searches only the object itself.
	ScopeSelf Scope = iota
	// ScopeChildren searches the object, then its descendants depth-first.
	ScopeChildren
	// ScopeParent searches the object, then each ancestor going up.
	ScopeParent
)

func (s Scope) String() string {
	switch s {
	case ScopeSelf:
		return "self"
	case ScopeChildren:
		return "children"
	case ScopeParent:
		return "parent"
	}
	return fmt.Sprintf("Scope(%d)", int(s))
}

func ParseScope(name string) (Scope, error) {
	switch name {
	case "", "self":
		return ScopeSelf, nil
	case "children":
		return ScopeChildren, nil
	case "parent":
		return ScopeParent, nil
	}
	return ScopeSelf, fmt.Errorf("unknown scope %q", name)
}

// FindComponent returns the first live component accepted by match within
// scope, or nil. Destroyed objects are never searched.
func FindComponent(g *GameObject, scope Scope, match func(Component) bool) Component {
	if !IsAlive(g) {
		return nil
	}
	switch scope {
	case ScopeChildren:
		return findInChildren(g, match)
	case ScopeParent:
		for cur := g; IsAlive(cur); cur = cur.Parent {
			if c := findOnSelf(cur, match); c != nil {
				return c
			}
		}
		return nil
	default:
		return findOnSelf(g, match)
	}
}

func findOnSelf(g *GameObject, match func(Component) bool) Component {
	for _, c := range g.components {
		if IsAlive(c) && match(c) {
			return c
		}
	}
	return nil
}

func findInChildren(g *GameObject, match func(Component) bool) Component {
	if c := findOnSelf(g, match); c != nil {
		return c
	}
	for _, child := range g.Children {
		if !IsAlive(child) {
			continue
		}
		if c := findInChildren(child, match); c != nil {
			return c
		}
	}
	return nil
}

func lookup[T any](g *GameObject, scope Scope) (T, bool) {
	var zero T
	c := FindComponent(g, scope, func(c Component) bool {
		_, ok := c.(T)
		return ok
	})
	if c == nil {
		return zero, false
	}
	return c.(T), true
}

// TryGetComponent returns the first component on g assignable to T.
// T may be a concrete component type or an interface.
func TryGetComponent[T any](g *GameObject) (T, bool) {
	return lookup[T](g, ScopeSelf)
}

// GetComponent returns the first component on g assignable to T, or the zero value.
func GetComponent[T any](g *GameObject) T {
	c, _ := lookup[T](g, ScopeSelf)
	return c
}

func GetComponentInChildren[T any](g *GameObject) (T, bool) {
	return lookup[T](g, ScopeChildren)
}

func GetComponentInParent[T any](g *GameObject) (T, bool) {
	return lookup[T](g, ScopeParent)
}
