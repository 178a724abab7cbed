package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

// near compares with an absolute tolerance; mgl32's threshold helpers turn
// relative when one side is zero.
func near(a, b mgl32.Vec3, tol float32) bool {
	return a.Sub(b).Len() < tol
}

// nearQuat treats q and -q as the same rotation.
func nearQuat(a, b mgl32.Quat, tol float32) bool {
	return min(a.Sub(b).Len(), a.Add(b).Len()) < tol
}

func nearF(a, b, tol float32) bool {
	return mgl32.Abs(a-b) < tol
}

func TestLookClampsPitch(t *testing.T) {
	deltas := []float32{-1000, -90, -41, -1, 0, 1, 41, 90, 1000}
	for _, sens := range []float32{0.1, 2, 50} {
		r := Rig{}
		for _, dy := range deltas {
			r.Look(0, dy, sens)
			if r.Pitch < -PitchLimit || r.Pitch > PitchLimit {
				t.Fatalf("pitch %f out of range after mouseY=%f sens=%f", r.Pitch, dy, sens)
			}
		}
	}
}

func TestLookSigns(t *testing.T) {
	r := Rig{}
	r.Look(3, 2, 2)

	if r.Yaw != 6 {
		t.Errorf("Expected yaw 6, got %f", r.Yaw)
	}
	// Mouse up looks up, which is negative pitch.
	if r.Pitch != -4 {
		t.Errorf("Expected pitch -4, got %f", r.Pitch)
	}
}

func TestLookClampHoldsAtLimit(t *testing.T) {
	r := Rig{}
	r.Look(0, -100, 2)
	if r.Pitch != PitchLimit {
		t.Errorf("Expected pitch %v, got %f", PitchLimit, r.Pitch)
	}

	// Coming back off the limit is immediate, no accumulated overshoot.
	r.Look(0, 5, 2)
	if r.Pitch != PitchLimit-10 {
		t.Errorf("Expected pitch %v, got %f", PitchLimit-10, r.Pitch)
	}
}

func TestStepZeroInputIsStationary(t *testing.T) {
	r := Rig{Yaw: 37, Pitch: -12}
	before := r.Orientation()

	for _, dt := range []float32{0, 0.016, 1, 250} {
		q, delta := r.Step(Input{}, dt, 2, 5)
		if delta.Len() != 0 {
			t.Errorf("dt=%f: expected no displacement, got %v", dt, delta)
		}
		if !nearQuat(q, before, eps) {
			t.Errorf("dt=%f: orientation changed from %v to %v", dt, before, q)
		}
	}
	if r.Yaw != 37 || r.Pitch != -12 {
		t.Errorf("Rig changed on zero input: %+v", r)
	}
}

func TestStepScalesLinearly(t *testing.T) {
	in := Input{Vertical: 0.7, Horizontal: -0.4}

	base := Rig{Yaw: 20, Pitch: 10}
	_, d1 := base.Step(in, 0.02, 0, 3)

	speedUp := Rig{Yaw: 20, Pitch: 10}
	_, d2 := speedUp.Step(in, 0.02, 0, 6)

	slower := Rig{Yaw: 20, Pitch: 10}
	_, d3 := slower.Step(in, 0.01, 0, 3)

	if !near(d2, d1.Mul(2), eps) {
		t.Errorf("Doubling speed: expected %v, got %v", d1.Mul(2), d2)
	}
	if !near(d3, d1.Mul(0.5), eps) {
		t.Errorf("Halving dt: expected %v, got %v", d1.Mul(0.5), d3)
	}
}

func TestStepForwardFromIdentity(t *testing.T) {
	r := Rig{}
	speed, dt := float32(5), float32(0.1)

	_, delta := r.Step(Input{Vertical: 1}, dt, 2, speed)

	want := mgl32.Vec3{0, 0, -1}.Mul(speed * dt)
	if !near(delta, want, eps) {
		t.Errorf("Expected %v, got %v", want, delta)
	}
	if !nearF(delta.Len(), speed*dt, eps) {
		t.Errorf("Expected distance %f, got %f", speed*dt, delta.Len())
	}
}

func TestStepStrafeRight(t *testing.T) {
	r := Rig{}
	_, delta := r.Step(Input{Horizontal: 1}, 1, 0, 1)

	if !near(delta, mgl32.Vec3{1, 0, 0}, eps) {
		t.Errorf("Expected +X strafe, got %v", delta)
	}
}

func TestStepDiagonalIsNotNormalized(t *testing.T) {
	r := Rig{}
	_, delta := r.Step(Input{Vertical: 1, Horizontal: 1}, 1, 0, 1)

	if !nearF(delta.Len(), float32(1.41421356), eps) {
		t.Errorf("Expected sqrt(2) length, got %f", delta.Len())
	}
}

func TestStepFollowsPitch(t *testing.T) {
	r := Rig{Pitch: 45}
	_, delta := r.Step(Input{Vertical: 1}, 1, 0, 1)

	if delta.Y() >= 0 {
		t.Errorf("Looking down and moving forward should descend, got %v", delta)
	}
}

func TestYawTurnsRight(t *testing.T) {
	q := Euler(0, 90, 0)

	if f := Forward(q); !near(f, mgl32.Vec3{1, 0, 0}, eps) {
		t.Errorf("Expected forward +X after turning right, got %v", f)
	}
	if r := Right(q); !near(r, mgl32.Vec3{0, 0, 1}, eps) {
		t.Errorf("Expected right +Z after turning right, got %v", r)
	}
}

func TestBasisIsOrthonormal(t *testing.T) {
	cases := [][3]float32{{0, 0, 0}, {30, 45, 0}, {-80, 200, 0}, {10, -75, 15}}
	for _, c := range cases {
		q := Euler(c[0], c[1], c[2])
		f, r, u := Forward(q), Right(q), Up(q)

		for _, v := range []mgl32.Vec3{f, r, u} {
			if !nearF(v.Len(), 1, eps) {
				t.Errorf("%v: non-unit axis %v", c, v)
			}
		}
		if !nearF(f.Dot(r), 0, eps) || !nearF(f.Dot(u), 0, eps) {
			t.Errorf("%v: axes not orthogonal", c)
		}
		if !near(f.Cross(u), r, eps) {
			t.Errorf("%v: expected right-handed basis", c)
		}
	}
}

func TestFromOrientationRecoversAngles(t *testing.T) {
	cases := []Rig{{0, 0}, {90, 0}, {-135, 30}, {45, -79}, {170, 60}}
	for _, want := range cases {
		got := FromOrientation(want.Orientation())
		if !nearF(got.Yaw, want.Yaw, 1e-3) || !nearF(got.Pitch, want.Pitch, 1e-3) {
			t.Errorf("Expected %+v, got %+v", want, got)
		}
	}
}

func TestFromOrientationClampsPitch(t *testing.T) {
	got := FromOrientation(Euler(89, 0, 0))
	if got.Pitch != PitchLimit {
		t.Errorf("Expected pitch clamped to %v, got %f", PitchLimit, got.Pitch)
	}
}

func TestAnglesInvertsEuler(t *testing.T) {
	cases := [][3]float32{{0, 0, 0}, {30, 45, 0}, {-60, -170, 20}, {10, 90, -45}}
	for _, c := range cases {
		p, y, r := Angles(Euler(c[0], c[1], c[2]))
		if !nearF(p, c[0], 1e-3) ||
			!nearF(y, c[1], 1e-3) ||
			!nearF(r, c[2], 1e-3) {
			t.Errorf("Euler%v round-tripped to (%f, %f, %f)", c, p, y, r)
		}
	}
}

func TestHalfTurnFacesBackward(t *testing.T) {
	q := Euler(0, 180, 0)

	// Rounding leaves ~1e-7 where the exact answer is 0.
	if f := Forward(q); !near(f, mgl32.Vec3{0, 0, 1}, eps) {
		t.Errorf("Expected forward +Z after half turn, got %v", f)
	}
	if r := Right(q); !near(r, mgl32.Vec3{-1, 0, 0}, eps) {
		t.Errorf("Expected right -X after half turn, got %v", r)
	}
	if !nearF(1.2e-7, 0, eps) {
		t.Error("Absolute tolerance should accept rounding noise around zero")
	}
}
