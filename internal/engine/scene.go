package engine

import "go.uber.org/zap"

type Scene struct {
	Name        string
	GameObjects []*GameObject

	// Destroyed fires for every GameObject torn down in this scene.
	Destroyed EventWithArg[*GameObject]

	uidMap   map[uint64]*GameObject
	pending  []pendingDestroy
	updating bool
}

type pendingDestroy struct {
	obj       Object
	remaining float32
	// fresh requests were made during the current frame's update pass and
	// skip that frame's countdown.
	fresh bool
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

// AddGameObject adds g and any of its descendants not yet in the scene.
func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	if g.destroyed {
		return
	}
	if _, exists := s.uidMap[g.UID]; !exists {
		s.GameObjects = append(s.GameObjects, g)
		s.uidMap[g.UID] = g
		g.Scene = s
		for _, p := range takeDetached(g) {
			s.schedule(p.obj, p.remaining)
		}
	}
	for _, child := range g.Children {
		if child.Scene != s {
			s.AddGameObject(child)
		}
	}
}

// RemoveGameObject takes g and its descendants out of the scene without
// destroying them.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		s.RemoveGameObject(child)
	}
	s.unregister(g)
}

func (s *Scene) unregister(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	delete(s.uidMap, g.UID)
	if g.Scene == s {
		g.Scene = nil
	}
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

// Roots returns the objects without a parent, in insertion order.
func (s *Scene) Roots() []*GameObject {
	var roots []*GameObject
	for _, g := range s.GameObjects {
		if g.Parent == nil {
			roots = append(roots, g)
		}
	}
	return roots
}

func (s *Scene) Start() {
	for _, g := range s.snapshot() {
		g.Start()
	}
}

// Update runs one frame: every live object is updated, then the teardown
// phase destroys whatever is due.
func (s *Scene) Update(deltaTime float32) {
	s.updating = true
	for _, g := range s.snapshot() {
		g.Update(deltaTime)
	}
	s.updating = false
	s.teardown(deltaTime)
}

// PendingDestroy returns the number of queued destroy requests.
func (s *Scene) PendingDestroy() int {
	return len(s.pending)
}

func (s *Scene) schedule(o Object, delay float32) {
	s.pending = append(s.pending, pendingDestroy{obj: o, remaining: delay, fresh: s.updating})
	Logger().Debug("destroy scheduled",
		zap.String("scene", s.Name),
		zap.String("object", o.ObjectName()),
		zap.Float32("delay", delay))
}

func (s *Scene) teardown(deltaTime float32) {
	if len(s.pending) == 0 {
		return
	}
	// Requests made by OnDestroy listeners land in s.pending and wait for
	// the next frame.
	due := s.pending
	s.pending = nil
	for _, p := range due {
		if !IsAlive(p.obj) {
			continue
		}
		if !p.fresh {
			p.remaining -= deltaTime
		}
		p.fresh = false
		if p.remaining > 0 {
			s.pending = append(s.pending, p)
			continue
		}
		destroyNow(p.obj)
	}
}

func (s *Scene) snapshot() []*GameObject {
	out := make([]*GameObject, len(s.GameObjects))
	copy(out, s.GameObjects)
	return out
}
