package engine

import (
	"reflect"
	"sync"

	"go.uber.org/zap"
)

// Object is anything the runtime owns and can destroy: GameObjects and the
// components attached to them.
type Object interface {
	// IsDestroyed reports whether the runtime has torn the object down.
	// Call IsAlive instead of this; it also handles nil handles.
	IsDestroyed() bool
	ObjectName() string
}

// IsAlive is the single liveness check for runtime handles. A nil interface,
// a typed nil pointer and a torn-down object all report false, so callers
// cannot tell "never existed" from "destroyed".
func IsAlive(o Object) bool {
	if o == nil {
		return false
	}
	if v := reflect.ValueOf(o); v.Kind() == reflect.Pointer && v.IsNil() {
		return false
	}
	return !o.IsDestroyed()
}

// detached holds destroy requests for objects outside any scene. A scene
// takes them over when the object is added to it.
var (
	detached   []pendingDestroy
	detachedMu sync.Mutex
)

// Destroy asks the runtime to tear o down after delay seconds. The request
// is queued on the owning scene and carried out during its teardown phase at
// the end of Scene.Update, never synchronously. Requests for objects outside
// any scene wait until the object joins one; the countdown starts then.
func Destroy(o Object, delay float32) {
	if !IsAlive(o) {
		return
	}
	if delay < 0 {
		delay = 0
	}
	if scene := sceneOf(o); scene != nil {
		scene.schedule(o, delay)
		return
	}
	detachedMu.Lock()
	detached = append(detached, pendingDestroy{obj: o, remaining: delay})
	detachedMu.Unlock()
	Logger().Debug("destroy deferred until object joins a scene",
		zap.String("object", o.ObjectName()),
		zap.Float32("delay", delay))
}

// takeDetached removes and returns the detached requests that target g or
// one of its components. Requests for objects that died meanwhile are dropped.
func takeDetached(g *GameObject) []pendingDestroy {
	detachedMu.Lock()
	defer detachedMu.Unlock()
	var taken []pendingDestroy
	kept := detached[:0]
	for _, p := range detached {
		switch {
		case !IsAlive(p.obj):
		case ownerOf(p.obj) == g:
			taken = append(taken, p)
		default:
			kept = append(kept, p)
		}
	}
	clear(detached[len(kept):])
	detached = kept
	return taken
}

func ownerOf(o Object) *GameObject {
	switch v := o.(type) {
	case *GameObject:
		return v
	case Component:
		return v.GetGameObject()
	}
	return nil
}

func sceneOf(o Object) *Scene {
	if g := ownerOf(o); g != nil {
		return g.Scene
	}
	return nil
}

func destroyNow(o Object) {
	if !IsAlive(o) {
		return
	}
	switch v := o.(type) {
	case *GameObject:
		v.teardown()
	case Component:
		if g := v.GetGameObject(); g != nil {
			g.RemoveComponent(v)
		}
	default:
		debugf("destroy: unsupported object type %T", o)
	}
}
