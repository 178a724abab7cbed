package components

import (
	"github.com/go-gl/mathgl/mgl32"

	"flycam/internal/camera"
	"flycam/internal/engine"
)

func init() {
	engine.RegisterScriptWithApplier("FlyController", flyControllerFactory, flyControllerSerializer, flyControllerApplier)
	engine.RegisterScript("Rotator", rotatorFactory, rotatorSerializer)
}

// toFloat accepts JSON numbers (float64) as well as values set from code.
func toFloat(v any) (float32, bool) {
	switch n := v.(type) {
	case float64:
		return float32(n), true
	case float32:
		return n, true
	case int:
		return float32(n), true
	}
	return 0, false
}

// flyControllerFactory leaves Axes and Cursor unset; the world binds them once
// the scene is loaded.
func flyControllerFactory(props map[string]any) engine.Component {
	f := NewFlyController(nil, nil)
	for k, v := range props {
		flyControllerApplier(f, k, v)
	}
	return f
}

func flyControllerSerializer(c engine.Component) map[string]any {
	f, ok := c.(*FlyController)
	if !ok {
		return nil
	}
	return map[string]any{
		"speed":            f.Speed,
		"mouseSensitivity": f.MouseSensitivity,
		"yaw":              f.Yaw,
		"pitch":            f.Pitch,
	}
}

func flyControllerApplier(c engine.Component, propName string, value any) bool {
	f, ok := c.(*FlyController)
	if !ok {
		return false
	}
	v, ok := toFloat(value)
	if !ok {
		return false
	}
	switch propName {
	case "speed":
		f.Speed = v
	case "mouseSensitivity":
		f.MouseSensitivity = v
	case "yaw":
		f.Yaw = v
	case "pitch":
		f.Pitch = mgl32.Clamp(v, -camera.PitchLimit, camera.PitchLimit)
	default:
		return false
	}
	return true
}

// Rotator spins an object around world up, in degrees per second.
type Rotator struct {
	engine.BaseComponent
	Speed float32
}

func (r *Rotator) Update(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil {
		return
	}
	spin := mgl32.QuatRotate(mgl32.DegToRad(r.Speed*deltaTime), mgl32.Vec3{0, 1, 0})
	g.Transform.Rotation = spin.Mul(g.Transform.Rotation).Normalize()
}

func rotatorFactory(props map[string]any) engine.Component {
	speed := float32(90)
	if v, ok := toFloat(props["speed"]); ok {
		speed = v
	}
	return &Rotator{Speed: speed}
}

func rotatorSerializer(c engine.Component) map[string]any {
	r, ok := c.(*Rotator)
	if !ok {
		return nil
	}
	return map[string]any{
		"speed": r.Speed,
	}
}
