package engine

import "github.com/go-gl/mathgl/mgl32"

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// LookProvider is implemented by components that control camera look direction.
// Camera follows the first LookProvider found on its object or a parent.
type LookProvider interface {
	LookDirection() mgl32.Vec3
}

// Pausable components skip input while paused. The tuning panel pauses the
// controller so dragging a slider doesn't spin the view.
type Pausable interface {
	SetPaused(paused bool)
}

// BaseComponent provides default implementation for Component interface
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
