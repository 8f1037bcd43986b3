package scripts

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"safeget/internal/components"
	"safeget/internal/engine"
	"safeget/internal/safe"
)

func init() {
	engine.RegisterComponent("Shooter", func() engine.Serializable {
		return &Shooter{Cooldown: 0.25, ShotSpeed: 30, ShotLifetime: 3, Recoil: 1, MaxShots: 8}
	})
}

// Shooter fires sphere shots along +Z. It needs an AudioSource on its own
// object and pushes back on a Rigidbody found on itself or an ancestor.
// With MaxShots set, firing past the limit releases the oldest live shot.
type Shooter struct {
	engine.BaseComponent
	Cooldown     float32
	ShotSpeed    float32
	ShotLifetime float32
	Recoil       float32
	MaxShots     int

	audio   *components.AudioSource
	body    *components.Rigidbody
	shots   []*engine.GameObject
	timer   float32
	counter int
}

func (s *Shooter) Start() {
	if err := s.resolve(); err != nil {
		engine.Logger().Warn("shooter not ready", zap.Error(err))
	}
}

func (s *Shooter) Update(deltaTime float32) {
	if s.timer > 0 {
		s.timer -= deltaTime
	}
}

// resolve re-fetches whatever was destroyed since the last call.
func (s *Shooter) resolve() error {
	if err := safe.Assign(s, &s.audio, safe.WithMessage("Shooter needs an AudioSource")); err != nil {
		return err
	}
	return safe.AssignOptional(s, &s.body, safe.InParent())
}

// Shoot spawns a shot unless the cooldown is still running, in which case
// it returns nil and no error.
func (s *Shooter) Shoot() (*engine.GameObject, error) {
	if s.timer > 0 {
		return nil, nil
	}
	if err := s.resolve(); err != nil {
		return nil, err
	}

	g := s.GetGameObject()
	s.counter++
	s.timer = s.Cooldown
	s.audio.Play()

	forward := rl.Vector3{Z: 1}
	shot := engine.NewGameObject(fmt.Sprintf("Shot_%d", s.counter))
	shot.Transform.Position = rl.Vector3Add(g.WorldPosition(), forward)
	shot.AddComponent(components.NewMeshRenderer(components.MeshSphere, rl.Orange, rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}))
	shot.AddComponent(components.NewSphereCollider(0.25))
	rb := components.NewRigidbody()
	rb.UseGravity = false
	rb.Velocity = rl.Vector3Scale(forward, s.ShotSpeed)
	shot.AddComponent(rb)

	if g.Scene != nil {
		g.Scene.AddGameObject(shot)
	}
	shot.Start()
	if s.ShotLifetime > 0 {
		engine.Destroy(shot, s.ShotLifetime)
	}
	s.track(shot)

	if s.body != nil {
		s.body.AddImpulse(rl.Vector3Scale(forward, -s.Recoil))
	}
	return shot, nil
}

// Shots returns the shots fired by s that are still alive, oldest first.
func (s *Shooter) Shots() []*engine.GameObject {
	s.prune()
	return append([]*engine.GameObject(nil), s.shots...)
}

func (s *Shooter) track(shot *engine.GameObject) {
	s.prune()
	s.shots = append(s.shots, shot)
	for s.MaxShots > 0 && len(s.shots) > s.MaxShots {
		safe.Release(&s.shots[0], 0)
		s.shots = s.shots[1:]
	}
}

func (s *Shooter) prune() {
	live := s.shots[:0]
	for _, shot := range s.shots {
		if engine.IsAlive(shot) {
			live = append(live, shot)
		}
	}
	clear(s.shots[len(live):])
	s.shots = live
}

func (s *Shooter) TypeName() string {
	return "Shooter"
}

func (s *Shooter) Serialize() map[string]any {
	return map[string]any{
		"cooldown":     s.Cooldown,
		"shotSpeed":    s.ShotSpeed,
		"shotLifetime": s.ShotLifetime,
		"recoil":       s.Recoil,
		"maxShots":     s.MaxShots,
	}
}

func (s *Shooter) Deserialize(data map[string]any) {
	readFloat(data, "cooldown", &s.Cooldown)
	readFloat(data, "shotSpeed", &s.ShotSpeed)
	readFloat(data, "shotLifetime", &s.ShotLifetime)
	readFloat(data, "recoil", &s.Recoil)
	readInt(data, "maxShots", &s.MaxShots)
}
