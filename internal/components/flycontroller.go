package components

import (
	"flycam/internal/camera"
	"flycam/internal/engine"
	"flycam/internal/input"
)

const (
	DefaultSpeed            = 5.0
	DefaultMouseSensitivity = 2.0
)

// FlyController gives its object first-person mouse look and free movement along
// the view axes. The pitch limit comes from camera.PitchLimit.
type FlyController struct {
	engine.BaseComponent
	camera.Rig
	Speed            float32
	MouseSensitivity float32

	Axes   input.Axes
	Cursor input.Cursor
	paused bool
}

func NewFlyController(axes input.Axes, cursor input.Cursor) *FlyController {
	return &FlyController{
		Speed:            DefaultSpeed,
		MouseSensitivity: DefaultMouseSensitivity,
		Axes:             axes,
		Cursor:           cursor,
	}
}

// Start captures the cursor. An unset rig picks up the object's initial facing,
// so a camera placed in a scene doesn't snap to the identity orientation.
func (f *FlyController) Start() {
	if g := f.GetGameObject(); g != nil && f.Yaw == 0 && f.Pitch == 0 {
		f.Rig = camera.FromOrientation(g.Transform.Rotation)
	}
	f.captureCursor(true)
}

func (f *FlyController) Update(deltaTime float32) {
	g := f.GetGameObject()
	if g == nil || f.paused {
		return
	}

	in := camera.Input{
		MouseX:     f.axis(input.MouseX),
		MouseY:     f.axis(input.MouseY),
		Vertical:   f.axis(input.Vertical),
		Horizontal: f.axis(input.Horizontal),
	}
	rot, delta := f.Step(in, deltaTime, f.MouseSensitivity, f.Speed)

	g.Transform.Rotation = rot
	g.Transform.Translate(delta)
}

// SetPaused implements engine.Pausable. A paused controller ignores input and
// hands the cursor back.
func (f *FlyController) SetPaused(paused bool) {
	if f.paused == paused {
		return
	}
	f.paused = paused
	f.captureCursor(!paused)
}

func (f *FlyController) Paused() bool {
	return f.paused
}

func (f *FlyController) axis(name string) float32 {
	if f.Axes == nil {
		return 0
	}
	return f.Axes.Axis(name)
}

func (f *FlyController) captureCursor(capture bool) {
	if f.Cursor == nil {
		return
	}
	f.Cursor.SetLocked(capture)
	f.Cursor.SetVisible(!capture)
}
