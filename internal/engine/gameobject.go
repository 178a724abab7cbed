package engine

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"

	"flycam/internal/camera"
)

var nextUID atomic.Uint64

type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// SetEuler sets Rotation from angles in degrees (pitch, yaw, roll).
func (t *Transform) SetEuler(pitch, yaw, roll float32) {
	t.Rotation = camera.Euler(pitch, yaw, roll)
}

func (t *Transform) Forward() mgl32.Vec3 {
	return camera.Forward(t.Rotation)
}

func (t *Transform) Right() mgl32.Vec3 {
	return camera.Right(t.Rotation)
}

func (t *Transform) Up() mgl32.Vec3 {
	return camera.Up(t.Rotation)
}

// Translate moves the transform by a world-space offset.
func (t *Transform) Translate(delta mgl32.Vec3) {
	t.Position = t.Position.Add(delta)
}

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{1, 1, 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of concrete type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// FindComponent is GetComponent for interface types that don't embed Component.
func FindComponent[T any](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
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
	child.Parent = g
	g.Children = append(g.Children, child)
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

func (g *GameObject) WorldPosition() mgl32.Vec3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	ps := g.Parent.WorldScale()
	scaled := mgl32.Vec3{
		g.Transform.Position.X() * ps.X(),
		g.Transform.Position.Y() * ps.Y(),
		g.Transform.Position.Z() * ps.Z(),
	}
	rotated := g.Parent.WorldRotation().Rotate(scaled)
	return g.Parent.WorldPosition().Add(rotated)
}

func (g *GameObject) WorldRotation() mgl32.Quat {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return g.Parent.WorldRotation().Mul(g.Transform.Rotation)
}

func (g *GameObject) WorldScale() mgl32.Vec3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return mgl32.Vec3{
		ps.X() * g.Transform.Scale.X(),
		ps.Y() * g.Transform.Scale.Y(),
		ps.Z() * g.Transform.Scale.Z(),
	}
}
