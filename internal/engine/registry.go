package engine

import (
	"fmt"
	"reflect"
	"slices"
)

// Serializable is implemented by components that can be created by name
// and saved to a scene file.
type Serializable interface {
	Component
	TypeName() string
	Serialize() map[string]any
	Deserialize(data map[string]any)
}

// ComponentFactory creates a fresh component with default values.
type ComponentFactory func() Serializable

var componentRegistry = map[string]ComponentFactory{}

// RegisterComponent registers a named component factory. It is meant to be
// called from init and panics on a duplicate name.
func RegisterComponent(name string, factory ComponentFactory) {
	if factory == nil {
		panic(fmt.Sprintf("component %q registered with nil factory", name))
	}
	if _, exists := componentRegistry[name]; exists {
		panic(fmt.Sprintf("component %q already registered", name))
	}
	componentRegistry[name] = factory
}

// CreateComponent looks up a registered component by name and creates it.
func CreateComponent(name string) (Serializable, bool) {
	factory, ok := componentRegistry[name]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// RegisteredComponents returns a sorted list of all registered component names.
func RegisteredComponents() []string {
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// TypeNameOf returns the registered name of c, falling back to its Go type.
func TypeNameOf(c Component) string {
	if s, ok := c.(Serializable); ok {
		return s.TypeName()
	}
	t := reflect.TypeOf(c)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}
	return t.Name()
}
