package components

import (
	"github.com/go-gl/mathgl/mgl32"

	"flycam/internal/camera"
	"flycam/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera renders the scene from its object. Clip planes are raylib's global
// defaults.
type Camera struct {
	engine.BaseComponent
	FOV        float32
	Projection rl.CameraProjection
	IsMain     bool // If true, this is the active game camera
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        45.0,
		Projection: rl.CameraPerspective,
	}
}

// View returns eye, look direction and up in world space. The look direction
// comes from the nearest LookProvider on this object or its parents, falling back
// to the object's own world rotation.
func (c *Camera) View() (eye, dir, up mgl32.Vec3) {
	g := c.GetGameObject()
	if g == nil {
		return mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}
	}

	eye = g.WorldPosition()
	rot := g.WorldRotation()
	dir = camera.Forward(rot)
	up = camera.Up(rot)

	for obj := g; obj != nil; obj = obj.Parent {
		if lp := engine.FindComponent[engine.LookProvider](obj); lp != nil {
			dir = lp.LookDirection()
			break
		}
	}
	return eye, dir, up
}

func (c *Camera) RaylibCamera() rl.Camera3D {
	eye, dir, up := c.View()
	return rl.Camera3D{
		Position:   Vec3ToRL(eye),
		Target:     Vec3ToRL(eye.Add(dir)),
		Up:         Vec3ToRL(up),
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}

func Vec3ToRL(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}
