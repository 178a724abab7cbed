package input

import rl "github.com/gen2brain/raylib-go/raylib"

// DefaultMouseScale converts pixels of mouse travel into axis units.
const DefaultMouseScale = 0.1

// Raylib reads axes from the raylib window. Keyboard axes are digital: W/Up and
// S/Down drive Vertical, D/Right and A/Left drive Horizontal, and opposite keys
// cancel. Mouse Y is positive when the mouse moves up.
type Raylib struct {
	MouseScale float32
}

func NewRaylib(mouseScale float32) *Raylib {
	if mouseScale == 0 {
		mouseScale = DefaultMouseScale
	}
	return &Raylib{MouseScale: mouseScale}
}

func (r *Raylib) Axis(name string) float32 {
	switch name {
	case MouseX:
		return rl.GetMouseDelta().X * r.MouseScale
	case MouseY:
		return -rl.GetMouseDelta().Y * r.MouseScale
	case Vertical:
		return keyAxis(rl.KeyW, rl.KeyUp, rl.KeyS, rl.KeyDown)
	case Horizontal:
		return keyAxis(rl.KeyD, rl.KeyRight, rl.KeyA, rl.KeyLeft)
	}
	return 0
}

func keyAxis(pos, posAlt, neg, negAlt int32) float32 {
	var v float32
	if rl.IsKeyDown(pos) || rl.IsKeyDown(posAlt) {
		v++
	}
	if rl.IsKeyDown(neg) || rl.IsKeyDown(negAlt) {
		v--
	}
	return v
}

// RaylibCursor drives the window cursor. Locking captures the pointer so mouse
// deltas keep arriving at the window edge.
type RaylibCursor struct{}

func (RaylibCursor) SetLocked(locked bool) {
	if locked {
		rl.DisableCursor()
	} else {
		rl.EnableCursor()
	}
}

func (RaylibCursor) SetVisible(visible bool) {
	if visible {
		rl.ShowCursor()
	} else {
		rl.HideCursor()
	}
}
