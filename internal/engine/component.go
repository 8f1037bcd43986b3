package engine

type Component interface {
	Object
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// BaseComponent provides default implementation for Component interface.
// A component is alive only while it is attached to a live GameObject.
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

func (b *BaseComponent) IsDestroyed() bool {
	return b.gameObject == nil || b.gameObject.IsDestroyed()
}

// ObjectName returns the name of the owning GameObject.
func (b *BaseComponent) ObjectName() string {
	if b.gameObject == nil {
		return ""
	}
	return b.gameObject.Name
}
