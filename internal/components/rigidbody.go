package components

import (
	"safeget/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Rigidbody", func() engine.Serializable {
		return NewRigidbody()
	})
}

const gravity = -9.81

type Rigidbody struct {
	engine.BaseComponent
	Velocity    rl.Vector3
	Mass        float32
	Bounciness  float32 // 0 = no bounce, 1 = perfect bounce
	Friction    float32 // 0 = ice, 1 = stops immediately
	UseGravity  bool
	IsKinematic bool // moves but doesn't get pushed by physics
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Mass:       1.0,
		Bounciness: 0.5,
		Friction:   0.1,
		UseGravity: true,
	}
}

func (r *Rigidbody) TypeName() string {
	return "Rigidbody"
}

func (r *Rigidbody) Serialize() map[string]any {
	return map[string]any{
		"mass":        r.Mass,
		"bounciness":  r.Bounciness,
		"friction":    r.Friction,
		"useGravity":  r.UseGravity,
		"isKinematic": r.IsKinematic,
	}
}

func (r *Rigidbody) Deserialize(data map[string]any) {
	readFloat(data, "mass", &r.Mass)
	readFloat(data, "bounciness", &r.Bounciness)
	readFloat(data, "friction", &r.Friction)
	readBool(data, "useGravity", &r.UseGravity)
	readBool(data, "isKinematic", &r.IsKinematic)
}

// AddImpulse changes velocity by impulse / mass. Kinematic bodies ignore it.
func (r *Rigidbody) AddImpulse(impulse rl.Vector3) {
	if r.IsKinematic || r.Mass <= 0 {
		return
	}
	r.Velocity = rl.Vector3Add(r.Velocity, rl.Vector3Scale(impulse, 1/r.Mass))
}

func (r *Rigidbody) Update(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil || r.IsKinematic {
		return
	}
	if r.UseGravity {
		r.Velocity.Y += gravity * deltaTime
	}
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(r.Velocity, deltaTime))
}
