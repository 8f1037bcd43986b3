package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

var nextUID atomic.Uint64

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// Matrix returns the local transform as scale, then rotation, then translation.
func (t Transform) Matrix() rl.Matrix {
	scale := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	rot := rl.MatrixRotateXYZ(rl.Vector3Scale(t.Rotation, rl.Deg2rad))
	trans := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(scale, rot), trans)
}

type GameObject struct {
	UID       uint64
	Name      string
	Tags      []string
	Transform Transform
	Active    bool
	Scene     *Scene
	Parent    *GameObject
	Children  []*GameObject

	// OnDestroy fires once, after the object has been torn down.
	OnDestroy Event

	components []Component
	started    bool
	destroyed  bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) IsDestroyed() bool {
	return g == nil || g.destroyed
}

func (g *GameObject) ObjectName() string {
	if g == nil {
		return ""
	}
	return g.Name
}

// AddComponent attaches c to g. Attaching to a destroyed object is ignored.
func (g *GameObject) AddComponent(c Component) {
	if g.destroyed {
		Logger().Warn("add component to destroyed object",
			zap.String("object", g.Name),
			zap.Uint64("uid", g.UID))
		return
	}
	c.SetGameObject(g)
	g.components = append(g.components, c)
	if g.started {
		c.Start()
	}
}

// RemoveComponent detaches c from g. The detached component reports as
// destroyed from then on.
func (g *GameObject) RemoveComponent(c Component) bool {
	for i, existing := range g.components {
		if existing == c {
			g.components = append(g.components[:i], g.components[i+1:]...)
			c.SetGameObject(nil)
			return true
		}
	}
	return false
}

func (g *GameObject) Start() {
	if g.started || g.destroyed {
		return
	}
	g.started = true
	for _, c := range g.Components() {
		c.Start()
	}
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active || g.destroyed {
		return
	}
	for _, c := range g.Components() {
		c.Update(deltaTime)
	}
}

// Components returns a snapshot of the attached components, so callers may
// add or remove components while iterating.
func (g *GameObject) Components() []Component {
	out := make([]Component, len(g.components))
	copy(out, g.components)
	return out
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
	if g.Scene != nil && child.Scene == nil {
		g.Scene.AddGameObject(child)
	}
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// WorldMatrix composes the local transform with every ancestor's.
func (g *GameObject) WorldMatrix() rl.Matrix {
	m := g.Transform.Matrix()
	if g.Parent != nil {
		m = rl.MatrixMultiply(m, g.Parent.WorldMatrix())
	}
	return m
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	return rl.Vector3Transform(rl.Vector3Zero(), g.WorldMatrix())
}

func (g *GameObject) teardown() {
	if g.destroyed {
		return
	}
	children := make([]*GameObject, len(g.Children))
	copy(children, g.Children)
	for _, child := range children {
		child.teardown()
	}

	for _, c := range g.components {
		c.SetGameObject(nil)
	}
	g.components = nil

	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	scene := g.Scene
	if scene != nil {
		scene.unregister(g)
	}
	g.destroyed = true

	Logger().Debug("object destroyed",
		zap.String("object", g.Name),
		zap.Uint64("uid", g.UID))

	g.OnDestroy.Invoke()
	if scene != nil {
		scene.Destroyed.Invoke(g)
	}
}
