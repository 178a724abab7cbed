package input

import "testing"

func TestStaticAxes(t *testing.T) {
	var axes Axes = Static{MouseX: 0.5, Vertical: -1}

	if got := axes.Axis(MouseX); got != 0.5 {
		t.Errorf("Expected 0.5, got %f", got)
	}
	if got := axes.Axis(Vertical); got != -1 {
		t.Errorf("Expected -1, got %f", got)
	}
	if got := axes.Axis("Jump"); got != 0 {
		t.Errorf("Unknown axis should read 0, got %f", got)
	}
}

func TestRecordingCursor(t *testing.T) {
	c := &RecordingCursor{Visible: true}
	var cur Cursor = c

	cur.SetLocked(true)
	cur.SetVisible(false)

	if !c.Locked || c.Visible || c.Calls != 2 {
		t.Errorf("Unexpected cursor state %+v", c)
	}
}

func TestNewRaylibDefaultsScale(t *testing.T) {
	if r := NewRaylib(0); r.MouseScale != DefaultMouseScale {
		t.Errorf("Expected default scale, got %f", r.MouseScale)
	}
	if r := NewRaylib(0.25); r.MouseScale != 0.25 {
		t.Errorf("Expected 0.25, got %f", r.MouseScale)
	}
}
