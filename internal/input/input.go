// Package input exposes the host's named control axes and cursor state to
// components, so controllers can run against raylib or against test doubles.
package input

// Axis names understood by every Axes implementation.
const (
	MouseX     = "Mouse X"
	MouseY     = "Mouse Y"
	Vertical   = "Vertical"
	Horizontal = "Horizontal"
)

// Axes reports the current value of a named axis. Unknown names read as 0.
type Axes interface {
	Axis(name string) float32
}

// Cursor controls pointer capture and visibility.
type Cursor interface {
	SetLocked(locked bool)
	SetVisible(visible bool)
}

// Static is an Axes with fixed values, for tests and replays.
type Static map[string]float32

func (s Static) Axis(name string) float32 {
	return s[name]
}

// RecordingCursor remembers the last requested cursor state.
type RecordingCursor struct {
	Locked  bool
	Visible bool
	Calls   int
}

func (c *RecordingCursor) SetLocked(locked bool) {
	c.Locked = locked
	c.Calls++
}

func (c *RecordingCursor) SetVisible(visible bool) {
	c.Visible = visible
	c.Calls++
}
