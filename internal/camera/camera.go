package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// PitchLimit bounds pitch in degrees, both directions.
const PitchLimit = 80.0

var (
	worldUp      = mgl32.Vec3{0, 1, 0}
	worldRight   = mgl32.Vec3{1, 0, 0}
	worldForward = mgl32.Vec3{0, 0, -1}
	worldRoll    = mgl32.Vec3{0, 0, 1}
)

// Input is one frame of control state. Mouse values are axis deltas, Vertical and
// Horizontal are normalized in [-1, 1].
type Input struct {
	MouseX     float32
	MouseY     float32
	Vertical   float32
	Horizontal float32
}

// Rig accumulates look angles in degrees. Positive yaw turns right, positive pitch
// looks down.
type Rig struct {
	Yaw   float32
	Pitch float32
}

// FromOrientation recovers yaw and pitch from an orientation. Roll is discarded and
// pitch is clamped.
func FromOrientation(q mgl32.Quat) Rig {
	pitch, yaw, _ := Angles(q)
	r := Rig{Yaw: yaw, Pitch: pitch}
	r.clamp()
	return r
}

// Angles is the inverse of Euler, in degrees. Pitch is in [-90, 90] and yaw and
// roll in (-180, 180].
func Angles(q mgl32.Quat) (pitch, yaw, roll float32) {
	f := Forward(q)
	yawRad := math.Atan2(float64(f.X()), float64(-f.Z()))
	pitchRad := -math.Asin(float64(mgl32.Clamp(f.Y(), -1, 1)))

	// Up and right before roll is applied.
	base := mgl32.QuatRotate(float32(-yawRad), worldUp).Mul(mgl32.QuatRotate(float32(-pitchRad), worldRight))
	u := Up(q)
	rollRad := math.Atan2(float64(-u.Dot(base.Rotate(worldRight))), float64(u.Dot(base.Rotate(worldUp))))

	return toDeg(pitchRad), toDeg(yawRad), toDeg(rollRad)
}

func toDeg(rad float64) float32 {
	return float32(rad * 180 / math.Pi)
}

// Look integrates a mouse delta scaled by sensitivity.
func (r *Rig) Look(mouseX, mouseY, sensitivity float32) {
	r.Yaw += mouseX * sensitivity
	r.Pitch -= mouseY * sensitivity
	r.clamp()
}

func (r *Rig) clamp() {
	r.Pitch = mgl32.Clamp(r.Pitch, -PitchLimit, PitchLimit)
}

// Orientation is Euler(pitch, yaw, 0).
func (r Rig) Orientation() mgl32.Quat {
	return Euler(r.Pitch, r.Yaw, 0)
}

// LookDirection is the unit forward vector of the current orientation.
func (r Rig) LookDirection() mgl32.Vec3 {
	return Forward(r.Orientation())
}

// Step runs one frame: integrate look, rebuild orientation, and compute the
// displacement for the frame. Movement follows the full 3D forward axis and is not
// normalized, so diagonal input moves faster than straight input.
func (r *Rig) Step(in Input, deltaTime, sensitivity, speed float32) (mgl32.Quat, mgl32.Vec3) {
	r.Look(in.MouseX, in.MouseY, sensitivity)
	q := r.Orientation()

	move := Forward(q).Mul(in.Vertical).Add(Right(q).Mul(in.Horizontal))
	return q, move.Mul(speed).Mul(deltaTime)
}

// Euler builds an orientation from angles in degrees. Roll is applied first, then
// pitch about the local right axis, then yaw about world up.
func Euler(pitch, yaw, roll float32) mgl32.Quat {
	qy := mgl32.QuatRotate(-mgl32.DegToRad(yaw), worldUp)
	qx := mgl32.QuatRotate(-mgl32.DegToRad(pitch), worldRight)
	qz := mgl32.QuatRotate(mgl32.DegToRad(roll), worldRoll)
	return qy.Mul(qx).Mul(qz).Normalize()
}

func Forward(q mgl32.Quat) mgl32.Vec3 {
	return q.Rotate(worldForward)
}

func Right(q mgl32.Quat) mgl32.Vec3 {
	return q.Rotate(worldRight)
}

func Up(q mgl32.Quat) mgl32.Vec3 {
	return q.Rotate(worldUp)
}
