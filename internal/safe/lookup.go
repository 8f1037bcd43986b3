package safe

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"safeget/internal/engine"
)

// Get returns the first live component assignable to T, searching from src.
// src is a GameObject or a component, in which case its owner is searched.
func Get[T any](src engine.Object, opts ...Option) (T, error) {
	var zero T
	cfg := newConfig(opts)
	c, g, err := find(src, cfg, isA[T])
	if err != nil {
		return zero, err
	}
	if c == nil {
		return zero, miss(cfg, g, typeName[T]())
	}
	return c.(T), nil
}

// MustGet is like Get but panics when the lookup fails. Use it where a
// missing component is a setup bug.
func MustGet[T any](src engine.Object, opts ...Option) T {
	c, err := Get[T](src, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Find is the nullable form of Get. A missing or destroyed component yields
// an empty Optional; only an invalid source is an error.
func Find[T any](src engine.Object, opts ...Option) (Optional[T], error) {
	cfg := newConfig(opts)
	c, _, err := find(src, cfg, isA[T])
	if err != nil {
		return None[T](), err
	}
	if c == nil {
		return None[T](), nil
	}
	return Some(c.(T)), nil
}

// GetNamed looks a component up by its registered type name.
func GetNamed(src engine.Object, typeName string, opts ...Option) (engine.Component, error) {
	cfg := newConfig(opts)
	c, g, err := find(src, cfg, named(typeName))
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, miss(cfg, g, typeName)
	}
	return c, nil
}

func FindNamed(src engine.Object, typeName string, opts ...Option) (Optional[engine.Component], error) {
	cfg := newConfig(opts)
	c, _, err := find(src, cfg, named(typeName))
	if err != nil {
		return None[engine.Component](), err
	}
	if c == nil {
		return None[engine.Component](), nil
	}
	return Some(c), nil
}

// Assign fills *target with Get's result unless it already holds a live
// value, in which case nothing is searched. A destroyed value counts as
// missing. On failure *target is cleared.
func Assign[T any](src engine.Object, target *T, opts ...Option) error {
	if target == nil {
		return fmt.Errorf("%w: nil target", ErrInvalidArgument)
	}
	if present(*target) {
		return nil
	}
	return Swap(src, target, opts...)
}

// AssignOptional is the nullable form of Assign: a missing component leaves
// *target at its zero value without an error.
func AssignOptional[T any](src engine.Object, target *T, opts ...Option) error {
	if target == nil {
		return fmt.Errorf("%w: nil target", ErrInvalidArgument)
	}
	if present(*target) {
		return nil
	}
	opt, err := Find[T](src, opts...)
	*target = opt.OrZero()
	return err
}

func find(src engine.Object, cfg *config, match func(engine.Component) bool) (engine.Component, *engine.GameObject, error) {
	g, err := resolve(src)
	if err != nil {
		return nil, nil, err
	}
	c := engine.FindComponent(g, cfg.scope, match)
	if !engine.IsAlive(c) {
		return nil, g, nil
	}
	return c, g, nil
}

func resolve(src engine.Object) (*engine.GameObject, error) {
	if !engine.IsAlive(src) {
		return nil, invalidSource(src)
	}
	switch v := src.(type) {
	case *engine.GameObject:
		return v, nil
	case engine.Component:
		if g := v.GetGameObject(); engine.IsAlive(g) {
			return g, nil
		}
		return nil, invalidSource(src)
	}
	return nil, fmt.Errorf("%w: unsupported source type %T", ErrInvalidArgument, src)
}

func miss(cfg *config, g *engine.GameObject, typeName string) error {
	engine.Logger().Debug("component lookup failed",
		zap.String("object", g.Name),
		zap.Uint64("uid", g.UID),
		zap.String("type", typeName),
		zap.Stringer("scope", cfg.scope))
	return cfg.notFound(g, typeName)
}

func isA[T any](c engine.Component) bool {
	_, ok := c.(T)
	return ok
}

func named(typeName string) func(engine.Component) bool {
	return func(c engine.Component) bool {
		return engine.TypeNameOf(c) == typeName
	}
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// present reports whether v is a live handle. Non-object values count as
// present when they are not the zero value.
func present[T any](v T) bool {
	if o, ok := any(v).(engine.Object); ok {
		return engine.IsAlive(o)
	}
	return !reflect.ValueOf(&v).Elem().IsZero()
}
