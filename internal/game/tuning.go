package game

import (
	"fmt"

	"flycam/internal/config"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBgPanel   = rl.NewColor(18, 18, 24, 245)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorTextMuted     = rl.NewColor(119, 119, 119, 255)
)

func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// TuningPanel edits the controller's speed and mouse sensitivity while open.
type TuningPanel struct {
	Open   bool
	values config.ControllerConfig
}

func NewTuningPanel(c config.ControllerConfig) *TuningPanel {
	p := &TuningPanel{}
	p.Sync(c)
	return p
}

// Sync replaces the panel's values, e.g. after a config reload.
func (p *TuningPanel) Sync(c config.ControllerConfig) {
	p.set(c.Speed, c.MouseSensitivity)
}

func (p *TuningPanel) Values() config.ControllerConfig {
	return p.values
}

// set clamps to the slider ranges, which match config validation, and reports
// whether anything changed.
func (p *TuningPanel) set(speed, sensitivity float32) bool {
	next := config.ControllerConfig{
		Speed:            min(max(speed, config.MinSpeed), config.MaxSpeed),
		MouseSensitivity: min(max(sensitivity, 0), config.MaxMouseSensitivity),
	}
	changed := next != p.values
	p.values = next
	return changed
}

// Draw renders the panel and returns the new values when a slider moved.
func (p *TuningPanel) Draw() (config.ControllerConfig, bool) {
	if !p.Open {
		return p.values, false
	}

	const (
		x       = 20
		y       = 180
		width   = 320
		labelW  = 110
		fieldH  = 20
		padding = 12
	)
	rl.DrawRectangle(x, y, width, 120, colorBgPanel)
	rl.DrawRectangleLines(x, y, width, 120, colorAccent)
	rl.DrawText("Controller", x+padding, y+padding, 18, colorTextPrimary)

	row := float32(y + padding + 30)
	rl.DrawText("Speed", x+padding, int32(row)+3, 15, colorTextMuted)
	speed := gui.Slider(rl.Rectangle{X: x + labelW, Y: row, Width: width - labelW - 50, Height: fieldH},
		"", fmt.Sprintf("%.1f", p.values.Speed), p.values.Speed, config.MinSpeed, config.MaxSpeed)

	row += fieldH + 8
	rl.DrawText("Sensitivity", x+padding, int32(row)+3, 15, colorTextMuted)
	sens := gui.Slider(rl.Rectangle{X: x + labelW, Y: row, Width: width - labelW - 50, Height: fieldH},
		"", fmt.Sprintf("%.2f", p.values.MouseSensitivity), p.values.MouseSensitivity, 0, config.MaxMouseSensitivity)

	rl.DrawText("Tab to resume", x+padding, y+120-22, 14, colorTextMuted)

	if p.set(speed, sens) {
		return p.values, true
	}
	return p.values, false
}
