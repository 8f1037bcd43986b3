package components

import (
	"safeget/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("BoxCollider", func() engine.Serializable {
		return NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	})
	engine.RegisterComponent("SphereCollider", func() engine.Serializable {
		return NewSphereCollider(0.5)
	})
}

// Collider is implemented by every collision shape.
type Collider interface {
	engine.Component
	// Center returns the world-space center of the shape.
	Center() rl.Vector3
	// Bounds returns the world-space axis-aligned box around the shape.
	Bounds() rl.BoundingBox
}

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

func (b *BoxCollider) Center() rl.Vector3 {
	return rl.Vector3Add(b.GetGameObject().WorldPosition(), b.Offset)
}

// Bounds ignores the object's rotation and scale; Size is in world units.
func (b *BoxCollider) Bounds() rl.BoundingBox {
	half := rl.Vector3Scale(b.Size, 0.5)
	c := b.Center()
	return rl.BoundingBox{Min: rl.Vector3Subtract(c, half), Max: rl.Vector3Add(c, half)}
}

func (b *BoxCollider) TypeName() string {
	return "BoxCollider"
}

func (b *BoxCollider) Serialize() map[string]any {
	return map[string]any{
		"size":   vec3(b.Size),
		"offset": vec3(b.Offset),
	}
}

func (b *BoxCollider) Deserialize(data map[string]any) {
	readVec3(data, "size", &b.Size)
	readVec3(data, "offset", &b.Offset)
}

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

func (s *SphereCollider) Center() rl.Vector3 {
	return rl.Vector3Add(s.GetGameObject().WorldPosition(), s.Offset)
}

func (s *SphereCollider) Bounds() rl.BoundingBox {
	r := rl.Vector3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	c := s.Center()
	return rl.BoundingBox{Min: rl.Vector3Subtract(c, r), Max: rl.Vector3Add(c, r)}
}

func (s *SphereCollider) TypeName() string {
	return "SphereCollider"
}

func (s *SphereCollider) Serialize() map[string]any {
	return map[string]any{
		"radius": s.Radius,
		"offset": vec3(s.Offset),
	}
}

func (s *SphereCollider) Deserialize(data map[string]any) {
	readFloat(data, "radius", &s.Radius)
	readVec3(data, "offset", &s.Offset)
}
