package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"flycam/internal/config"
	"flycam/internal/engine"
	"flycam/internal/input"
	"flycam/internal/logger"
	"flycam/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Config    *config.Config
	World     *world.World
	DebugMode bool

	// OnTuningChanged fires when speed or sensitivity change, from the panel or
	// from a config reload.
	OnTuningChanged engine.EventWithArg[config.ControllerConfig]
	// OnSceneSaved fires after F5 writes the scene file.
	OnSceneSaved engine.Event

	log        logger.Logger
	configPath string
	watcher    *config.Watcher
	tuning     *TuningPanel

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg *config.Config, configPath string, log logger.Logger) *Game {
	g := &Game{
		Config:     cfg,
		World:      world.New(log.With(logger.F("component", "world"))),
		log:        log,
		configPath: configPath,
		tuning:     NewTuningPanel(cfg.Controller),
	}
	g.OnTuningChanged.AddListener(func(c config.ControllerConfig) {
		n := ApplyTuning(g.World, c)
		g.tuning.Sync(c)
		g.log.Info("controller tuning applied",
			logger.F("speed", c.Speed),
			logger.F("mouse_sensitivity", c.MouseSensitivity),
			logger.F("controllers", n))
	})
	g.OnSceneSaved.AddListener(func() {
		g.log.Info("scene saved", logger.F("path", g.Config.Scene))
	})
	return g
}

// ApplyTuning pushes controller settings into every FlyController in the world
// through the script property registry and returns how many were updated.
func ApplyTuning(w *world.World, c config.ControllerConfig) int {
	n := 0
	for _, f := range w.Controllers() {
		okSpeed := engine.ApplyScriptProperty(f, "speed", c.Speed)
		okSens := engine.ApplyScriptProperty(f, "mouseSensitivity", c.MouseSensitivity)
		if okSpeed && okSens {
			n++
		}
	}
	return n
}

// LoadWorld fills the world from the configured scene file, or builds the
// default scene when the file doesn't exist.
func (g *Game) LoadWorld() error {
	err := g.World.LoadScene(g.Config.Scene)
	if errors.Is(err, os.ErrNotExist) {
		g.log.Info("no scene file, using default scene", logger.F("path", g.Config.Scene))
		g.World.Populate(rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)))
		return nil
	}
	return err
}

func (g *Game) Run(ctx context.Context) error {
	if g.Config.Window.HighDPI {
		rl.SetConfigFlags(rl.FlagWindowHighdpi)
	}
	rl.InitWindow(g.Config.Window.Width, g.Config.Window.Height, g.Config.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(g.Config.Window.TargetFPS)
	initRayguiStyle()

	if err := g.LoadWorld(); err != nil {
		return fmt.Errorf("load world: %w", err)
	}
	g.World.BindInput(input.NewRaylib(g.Config.Input.MouseScale), input.RaylibCursor{})
	if len(g.World.Controllers()) == 0 {
		g.log.Warn("scene has no FlyController, camera will not move")
	}
	g.OnTuningChanged.Invoke(g.Config.Controller)
	g.World.Start()

	if g.configPath != "" {
		w, err := config.Watch(g.configPath)
		if err != nil {
			g.log.Warn("config hot reload disabled", logger.F("error", err))
		} else {
			g.watcher = w
			defer w.Close()
		}
	}

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		g.Update()
		g.Draw()
	}
	g.log.Info("shutting down")
	return nil
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	g.pollConfig()

	if rl.IsKeyPressed(rl.KeyTab) {
		g.tuning.Open = !g.tuning.Open
		g.World.SetPaused(g.tuning.Open)
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeyF5) {
		g.saveScene()
	}

	g.World.Update(deltaTime)

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-g.watcher.Configs:
		if ok {
			g.Config.Controller = cfg.Controller
			g.OnTuningChanged.Invoke(cfg.Controller)
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.Warn("config reload failed, keeping previous values", logger.F("error", err))
		}
	default:
	}
}

func (g *Game) saveScene() {
	if err := g.World.SaveScene(g.Config.Scene); err != nil {
		g.log.Error("save scene failed", logger.F("path", g.Config.Scene), logger.F("error", err))
		return
	}
	g.OnSceneSaved.Invoke()
}

func (g *Game) Draw() {
	cam := g.World.MainCamera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	if cam != nil {
		rl.BeginMode3D(cam.RaylibCamera())
		g.World.Draw()
		rl.EndMode3D()
	}
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("Mouse to look, WASD or arrows to move", 10, 10, 20, rl.LightGray)
	rl.DrawText("Tab: tuning  F1: debug  F5: save scene", 10, 35, 20, rl.LightGray)
	rl.DrawFPS(10, 60)

	if g.DebugMode {
		controllers := g.World.Controllers()
		if len(controllers) > 0 {
			f := controllers[0]
			pos := f.GetGameObject().Transform.Position
			rl.DrawText(fmt.Sprintf("Yaw: %.1f  Pitch: %.1f", f.Yaw, f.Pitch), 10, 85, 16, rl.Yellow)
			rl.DrawText(fmt.Sprintf("Pos: (%.2f, %.2f, %.2f)", pos.X(), pos.Y(), pos.Z()), 10, 105, 16, rl.Yellow)
		}
		rl.DrawText(fmt.Sprintf("Update: %.2f ms", g.updateMs), 10, 130, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), 10, 150, 16, rl.Green)
	}

	if c, changed := g.tuning.Draw(); changed {
		g.OnTuningChanged.Invoke(c)
	}
}

