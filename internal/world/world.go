package world

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"flycam/internal/components"
	"flycam/internal/engine"
	"flycam/internal/input"
	"flycam/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	FloorSize  = 60.0
	MainCamera = "MainCamera"
)

type World struct {
	Scene *engine.Scene
	log   logger.Logger
}

func New(log logger.Logger) *World {
	return &World{
		Scene: engine.NewScene("Main"),
		log:   log,
	}
}

// Populate builds the default scene: a floor, a ring of cubes around the origin and
// a fly camera looking at them.
func (w *World) Populate(rng *rand.Rand) {
	floor := engine.NewGameObject("Floor")
	floor.AddComponent(components.NewMeshRenderer(components.MeshPlane, rl.LightGray, mgl32.Vec3{FloorSize, 0, FloorSize}))
	w.Scene.AddGameObject(floor)

	numCubes := 15
	colors := []rl.Color{
		rl.Red, rl.Blue, rl.Green, rl.Purple, rl.Orange,
		rl.Yellow, rl.Pink, rl.SkyBlue, rl.Lime, rl.Magenta,
	}

	for i := range numCubes {
		angle := float64(i) * (2 * math.Pi / float64(numCubes))
		radius := 8 + rng.Float64()*5

		cube := engine.NewGameObject(fmt.Sprintf("Cube_%d", i))
		cube.Tags = []string{"marker"}
		cube.Transform.Position = mgl32.Vec3{
			float32(math.Cos(angle) * radius),
			float32(1 + rng.Float64()*3),
			float32(math.Sin(angle) * radius),
		}
		size := float32(1 + rng.Float64())
		renderer := components.NewMeshRenderer(components.MeshCube, colors[i%len(colors)], mgl32.Vec3{size, size, size})
		renderer.Wireframe = true
		cube.AddComponent(renderer)
		if i%3 == 0 {
			cube.AddComponent(&components.Rotator{Speed: float32(30 + rng.Float64()*60)})
		}
		w.Scene.AddGameObject(cube)
	}

	cam := engine.NewGameObject(MainCamera)
	cam.Tags = []string{"camera"}
	cam.Transform.Position = mgl32.Vec3{10, 5, 10}
	cam.Transform.SetEuler(20, -45, 0)
	cam.AddComponent(components.NewFlyController(nil, nil))
	mainCam := components.NewCamera()
	mainCam.IsMain = true
	cam.AddComponent(mainCam)
	w.Scene.AddGameObject(cam)
}

// BindInput hands axes and cursor to every controller in the scene that doesn't
// already have them.
func (w *World) BindInput(axes input.Axes, cursor input.Cursor) {
	for _, f := range w.Controllers() {
		if f.Axes == nil {
			f.Axes = axes
		}
		if f.Cursor == nil {
			f.Cursor = cursor
		}
	}
}

func (w *World) Controllers() []*components.FlyController {
	var result []*components.FlyController
	for _, g := range w.Scene.GameObjects {
		if f := engine.GetComponent[*components.FlyController](g); f != nil {
			result = append(result, f)
		}
	}
	return result
}

// MainCamera returns the camera flagged IsMain, else the first camera found.
func (w *World) MainCamera() *components.Camera {
	var first *components.Camera
	for _, g := range w.Scene.GameObjects {
		c := engine.GetComponent[*components.Camera](g)
		if c == nil {
			continue
		}
		if c.IsMain {
			return c
		}
		if first == nil {
			first = c
		}
	}
	return first
}

// SetPaused pauses or resumes every Pausable component.
func (w *World) SetPaused(paused bool) {
	for _, g := range w.Scene.GameObjects {
		for _, c := range g.Components() {
			if p, ok := c.(engine.Pausable); ok {
				p.SetPaused(paused)
			}
		}
	}
}

func (w *World) Start() {
	w.Scene.Start()
	w.log.Info("scene started", logger.F("scene", w.Scene.Name), logger.F("objects", len(w.Scene.GameObjects)))
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

func (w *World) Draw() {
	rl.DrawGrid(int32(FloorSize), 1)
	for _, g := range w.Scene.GameObjects {
		if r := engine.GetComponent[*components.MeshRenderer](g); r != nil {
			r.Draw()
		}
	}
}
