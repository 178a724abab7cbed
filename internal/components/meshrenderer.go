package components

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"flycam/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

var meshTypeNames = map[string]MeshType{
	"cube":   MeshCube,
	"sphere": MeshSphere,
	"plane":  MeshPlane,
}

// ParseMeshType maps a scene file mesh name to a MeshType.
func ParseMeshType(name string) (MeshType, bool) {
	t, ok := meshTypeNames[name]
	return t, ok
}

func (t MeshType) String() string {
	for name, mt := range meshTypeNames {
		if mt == t {
			return name
		}
	}
	return "unknown"
}

type MeshRenderer struct {
	engine.BaseComponent
	MeshType  MeshType
	Color     rl.Color
	Size      mgl32.Vec3
	Wireframe bool
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size mgl32.Vec3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	axis, angle := axisAngle(g.WorldRotation())
	scale := g.WorldScale()

	rl.PushMatrix()
	rl.Translatef(pos.X(), pos.Y(), pos.Z())
	rl.Rotatef(angle, axis.X(), axis.Y(), axis.Z())
	rl.Scalef(scale.X(), scale.Y(), scale.Z())

	size := Vec3ToRL(m.Size)
	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeV(rl.Vector3{}, size, m.Color)
		if m.Wireframe {
			rl.DrawCubeWiresV(rl.Vector3{}, size, rl.Black)
		}
	case MeshSphere:
		rl.DrawSphere(rl.Vector3{}, m.Size.X(), m.Color)
	case MeshPlane:
		rl.DrawPlane(rl.Vector3{}, rl.Vector2{X: m.Size.X(), Y: m.Size.Z()}, m.Color)
	}
	rl.PopMatrix()
}

// axisAngle converts a rotation for rlgl's Rotatef, angle in degrees.
func axisAngle(q mgl32.Quat) (mgl32.Vec3, float32) {
	q = q.Normalize()
	s := math.Sqrt(math.Max(0, float64(1-q.W*q.W)))
	if s < 1e-6 {
		return mgl32.Vec3{0, 1, 0}, 0
	}
	angle := 2 * math.Acos(float64(mgl32.Clamp(q.W, -1, 1)))
	return q.V.Mul(float32(1 / s)), float32(angle * 180 / math.Pi)
}
