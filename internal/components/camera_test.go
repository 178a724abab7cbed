package components

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"flycam/internal/engine"
	"flycam/internal/input"
)

func TestCameraFollowsLookProvider(t *testing.T) {
	obj := engine.NewGameObject("MainCamera")
	obj.Transform.Position = mgl32.Vec3{1, 2, 3}
	fly := NewFlyController(input.Static{}, nil)
	fly.Yaw = 90
	cam := NewCamera()
	obj.AddComponent(fly)
	obj.AddComponent(cam)

	rc := cam.RaylibCamera()

	if rc.Position.X != 1 || rc.Position.Y != 2 || rc.Position.Z != 3 {
		t.Errorf("Unexpected eye %v", rc.Position)
	}
	if !nearF(rc.Target.X, 2, eps) || !nearF(rc.Target.Z, 3, eps) {
		t.Errorf("Expected target one unit along +X, got %v", rc.Target)
	}
	if rc.Fovy != 45 {
		t.Errorf("Expected fov 45, got %f", rc.Fovy)
	}
}

func TestCameraChildUsesParentLook(t *testing.T) {
	body := engine.NewGameObject("Body")
	fly := NewFlyController(input.Static{}, nil)
	fly.Pitch = 30
	body.AddComponent(fly)

	eyeObj := engine.NewGameObject("Eye")
	eyeObj.Transform.Position = mgl32.Vec3{0, 1.6, 0}
	cam := NewCamera()
	eyeObj.AddComponent(cam)
	body.AddChild(eyeObj)

	eye, dir, _ := cam.View()
	if !near(eye, mgl32.Vec3{0, 1.6, 0}, eps) {
		t.Errorf("Expected eye at parent offset, got %v", eye)
	}
	if dir.Y() >= 0 {
		t.Errorf("Expected downward look from parent controller, got %v", dir)
	}
}

func TestCameraWithoutProviderUsesRotation(t *testing.T) {
	obj := engine.NewGameObject("Static")
	obj.Transform.SetEuler(0, 180, 0)
	cam := NewCamera()
	obj.AddComponent(cam)

	_, dir, up := cam.View()
	if !near(dir, mgl32.Vec3{0, 0, 1}, eps) {
		t.Errorf("Expected +Z after half turn, got %v", dir)
	}
	if !near(up, mgl32.Vec3{0, 1, 0}, eps) {
		t.Errorf("Expected world up, got %v", up)
	}
}

func TestAxisAngle(t *testing.T) {
	_, angle := axisAngle(mgl32.QuatIdent())
	if angle != 0 {
		t.Errorf("Identity should have zero angle, got %f", angle)
	}

	axis, angle := axisAngle(mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0}))
	if !nearF(angle, 90, 1e-3) || !near(axis, mgl32.Vec3{0, 1, 0}, eps) {
		t.Errorf("Expected 90 degrees about Y, got %f about %v", angle, axis)
	}
}

func TestParseMeshType(t *testing.T) {
	if mt, ok := ParseMeshType("sphere"); !ok || mt != MeshSphere {
		t.Errorf("Expected sphere, got %v %v", mt, ok)
	}
	if _, ok := ParseMeshType("teapot"); ok {
		t.Error("Unknown mesh should not parse")
	}
	if MeshPlane.String() != "plane" {
		t.Errorf("Expected plane, got %s", MeshPlane)
	}
}
