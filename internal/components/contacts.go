package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"safeget/internal/engine"
)

func init() {
	engine.RegisterComponent("CollisionDetector", func() engine.Serializable {
		return NewCollisionDetector()
	})
}

// Overlaps reports whether two collider shapes intersect.
func Overlaps(a, b Collider) bool {
	sa, aSphere := a.(*SphereCollider)
	sb, bSphere := b.(*SphereCollider)
	switch {
	case aSphere && bSphere:
		return rl.CheckCollisionSpheres(sa.Center(), sa.Radius, sb.Center(), sb.Radius)
	case aSphere:
		return rl.CheckCollisionBoxSphere(b.Bounds(), sa.Center(), sa.Radius)
	case bSphere:
		return rl.CheckCollisionBoxSphere(a.Bounds(), sb.Center(), sb.Radius)
	}
	return rl.CheckCollisionBoxes(a.Bounds(), b.Bounds())
}

// CollisionDetector checks every active collider in its scene once per
// frame and sends OnCollisionEnter to both objects of each pair that
// started touching. Put one on a manager object.
type CollisionDetector struct {
	engine.BaseComponent

	touching map[[2]uint64]bool
}

func NewCollisionDetector() *CollisionDetector {
	return &CollisionDetector{touching: make(map[[2]uint64]bool)}
}

func (d *CollisionDetector) Update(deltaTime float32) {
	scene := d.GetGameObject().Scene
	if scene == nil {
		return
	}

	var shapes []Collider
	for _, g := range scene.GameObjects {
		if !g.Active || !engine.IsAlive(g) {
			continue
		}
		if c, ok := engine.TryGetComponent[Collider](g); ok {
			shapes = append(shapes, c)
		}
	}

	now := make(map[[2]uint64]bool)
	for i := 0; i < len(shapes); i++ {
		for j := i + 1; j < len(shapes); j++ {
			a, b := shapes[i].GetGameObject(), shapes[j].GetGameObject()
			if !engine.IsAlive(a) || !engine.IsAlive(b) || !Overlaps(shapes[i], shapes[j]) {
				continue
			}
			key := pairKey(a.UID, b.UID)
			now[key] = true
			if !d.touching[key] {
				engine.Logger().Debug("collision enter",
					zap.String("a", a.Name),
					zap.String("b", b.Name))
				engine.NotifyCollision(a, b)
			}
		}
	}
	d.touching = now
}

// Touching reports whether a and b overlapped in the last frame.
func (d *CollisionDetector) Touching(a, b *engine.GameObject) bool {
	return d.touching[pairKey(a.UID, b.UID)]
}

func (d *CollisionDetector) TypeName() string {
	return "CollisionDetector"
}

func (d *CollisionDetector) Serialize() map[string]any {
	return map[string]any{}
}

func (d *CollisionDetector) Deserialize(data map[string]any) {}

func pairKey(a, b uint64) [2]uint64 {
	if a > b {
		a, b = b, a
	}
	return [2]uint64{a, b}
}
