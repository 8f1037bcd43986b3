package scripts

import (
	"go.uber.org/zap"

	"safeget/internal/engine"
)

func init() {
	engine.RegisterComponent("Collectible", func() engine.Serializable {
		return &Collectible{Points: 10, TargetTag: "Player"}
	})
}

// Collectible is a script that detects when the player touches it.
// Contacts arrive from a components.CollisionDetector in the scene.
// It despawns itself when collected or when Lifetime runs out.
type Collectible struct {
	engine.BaseComponent
	// Points awarded when collected
	Points float32
	// Tag to check for (default: "Player")
	TargetTag string
	// Seconds before despawning uncollected, 0 = never
	Lifetime float32

	// Collected fires with the points awarded.
	Collected engine.EventWithArg[float32]

	age       float32
	despawned bool
}

func (c *Collectible) Update(deltaTime float32) {
	if c.despawned || c.Lifetime <= 0 {
		return
	}
	c.age += deltaTime
	if c.age >= c.Lifetime {
		c.despawn()
	}
}

func (c *Collectible) OnCollisionEnter(other *engine.GameObject) {
	if c.despawned || !engine.IsAlive(other) || !other.HasTag(c.TargetTag) {
		return
	}
	engine.Logger().Info("collected",
		zap.String("object", c.ObjectName()),
		zap.String("by", other.Name),
		zap.Float32("points", c.Points))
	c.Collected.Invoke(c.Points)
	c.despawn()
}

func (c *Collectible) despawn() {
	c.despawned = true
	engine.Destroy(c.GetGameObject(), 0)
}

func (c *Collectible) TypeName() string {
	return "Collectible"
}

func (c *Collectible) Serialize() map[string]any {
	return map[string]any{
		"points":    c.Points,
		"targetTag": c.TargetTag,
		"lifetime":  c.Lifetime,
	}
}

func (c *Collectible) Deserialize(data map[string]any) {
	readFloat(data, "points", &c.Points)
	readFloat(data, "lifetime", &c.Lifetime)
	if v, ok := data["targetTag"].(string); ok {
		c.TargetTag = v
	}
}
