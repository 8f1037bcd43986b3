package safe

import (
	"fmt"
	"reflect"

	"safeget/internal/engine"
)

// Option adjusts a single lookup.
type Option func(*config)

type config struct {
	scope       engine.Scope
	message     string
	err         error
	attribution any
	attributed  bool
}

func newConfig(opts []Option) *config {
	cfg := &config{scope: engine.ScopeSelf}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// InChildren searches the source object, then its descendants depth-first.
func InChildren() Option {
	return InScope(engine.ScopeChildren)
}

// InParent searches the source object, then each ancestor going up.
func InParent() Option {
	return InScope(engine.ScopeParent)
}

func InScope(scope engine.Scope) Option {
	return func(c *config) { c.scope = scope }
}

// WithMessage replaces the default "failed to find" text of the not-found error.
func WithMessage(msg string) Option {
	return func(c *config) { c.message = msg }
}

// WithError makes a failing lookup return err unchanged instead of a
// *NotFoundError. It has no effect on Find.
func WithError(err error) Option {
	return func(c *config) { c.err = err }
}

// AttributedTo reports failures on behalf of owner rather than the object
// that was searched. Owners may be engine objects, Stringers or strings.
func AttributedTo(owner any) Option {
	return func(c *config) {
		c.attribution = owner
		c.attributed = true
	}
}

func (c *config) notFound(g *engine.GameObject, typeName string) error {
	if c.err != nil {
		return c.err
	}
	source := g.Name
	if c.attributed {
		source = identity(c.attribution)
	}
	return &NotFoundError{
		Source:  source,
		Type:    typeName,
		Scope:   c.scope,
		Message: c.message,
	}
}

func identity(owner any) string {
	switch v := owner.(type) {
	case nil:
		return ""
	case string:
		return v
	case engine.Object:
		if engine.IsAlive(v) {
			return v.ObjectName()
		}
		return fmt.Sprintf("<destroyed %T>", v)
	case fmt.Stringer:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return fmt.Sprintf("<nil %T>", v)
		}
		return v.String()
	}
	return fmt.Sprint(owner)
}
