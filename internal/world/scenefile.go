package world

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"flycam/internal/camera"
	"flycam/internal/components"
	"flycam/internal/engine"
	"flycam/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Objects []ObjectDef `json:"objects"`
}

// ObjectDef is one GameObject. Rotation is Euler degrees (pitch, yaw, roll).
type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type meshRendererDef struct {
	Type      string     `json:"type"`
	Mesh      string     `json:"mesh"`
	Size      [3]float32 `json:"size"`
	Color     string     `json:"color"`
	Wireframe bool       `json:"wireframe,omitempty"`
}

type cameraDef struct {
	Type   string  `json:"type"`
	FOV    float32 `json:"fov,omitempty"`
	IsMain bool    `json:"isMain,omitempty"`
}

type scriptDef struct {
	Type  string         `json:"type"`
	Name  string         `json:"name"`
	Props map[string]any `json:"props,omitempty"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Gold":      rl.Gold,
}

var nameByColor map[rl.Color]string

func init() {
	nameByColor = make(map[rl.Color]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	var r, g, b, a uint8
	if n, _ := fmt.Sscanf(name, "#%02x%02x%02x%02x", &r, &g, &b, &a); n == 4 {
		return rl.NewColor(r, g, b, a)
	}
	return rl.White
}

func lookupColorName(c rl.Color) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// --- Loading ---

// LoadScene appends the objects in path to the scene. Components with an unknown
// type are skipped with a warning rather than failing the load.
func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}

	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	for _, objDef := range sf.Objects {
		g := engine.NewGameObject(objDef.Name)
		g.Tags = objDef.Tags
		g.Transform.Position = mgl32.Vec3(objDef.Position)
		g.Transform.SetEuler(objDef.Rotation[0], objDef.Rotation[1], objDef.Rotation[2])

		// Default scale to 1 if zero
		if objDef.Scale != [3]float32{} {
			g.Transform.Scale = mgl32.Vec3(objDef.Scale)
		}

		for _, raw := range objDef.Components {
			if err := loadComponent(g, raw); err != nil {
				w.log.Warn("skipping component", logger.F("object", objDef.Name), logger.F("error", err))
			}
		}

		w.Scene.AddGameObject(g)
	}

	w.log.Info("scene loaded", logger.F("path", path), logger.F("objects", len(sf.Objects)))
	return nil
}

func loadComponent(g *engine.GameObject, raw json.RawMessage) error {
	var header componentHeader
	if err := json.Unmarshal(raw, &header); err != nil {
		return err
	}

	switch header.Type {
	case "MeshRenderer":
		var def meshRendererDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		mt, ok := components.ParseMeshType(def.Mesh)
		if !ok {
			return fmt.Errorf("unknown mesh %q", def.Mesh)
		}
		r := components.NewMeshRenderer(mt, lookupColor(def.Color), mgl32.Vec3(def.Size))
		r.Wireframe = def.Wireframe
		g.AddComponent(r)

	case "Camera":
		var def cameraDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		cam := components.NewCamera()
		if def.FOV > 0 {
			cam.FOV = def.FOV
		}
		cam.IsMain = def.IsMain
		g.AddComponent(cam)

	case "Script":
		var def scriptDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		comp := engine.CreateScript(def.Name, def.Props)
		if comp == nil {
			return fmt.Errorf("unknown script %q", def.Name)
		}
		g.AddComponent(comp)

	default:
		return fmt.Errorf("unknown component type %q", header.Type)
	}
	return nil
}

// --- Saving ---

func (w *World) SaveScene(path string) error {
	var sf SceneFile

	for _, g := range w.Scene.GameObjects {
		pitch, yaw, roll := camera.Angles(g.Transform.Rotation)
		objDef := ObjectDef{
			Name:     g.Name,
			Tags:     g.Tags,
			Position: [3]float32(g.Transform.Position),
			Rotation: [3]float32{pitch, yaw, roll},
			Scale:    [3]float32(g.Transform.Scale),
		}

		for _, c := range g.Components() {
			if raw := serializeComponent(c); raw != nil {
				objDef.Components = append(objDef.Components, raw)
			}
		}

		sf.Objects = append(sf.Objects, objDef)
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	return nil
}

func serializeComponent(c engine.Component) json.RawMessage {
	var def any

	switch comp := c.(type) {
	case *components.MeshRenderer:
		def = meshRendererDef{
			Type:      "MeshRenderer",
			Mesh:      comp.MeshType.String(),
			Size:      [3]float32(comp.Size),
			Color:     lookupColorName(comp.Color),
			Wireframe: comp.Wireframe,
		}

	case *components.Camera:
		def = cameraDef{
			Type:   "Camera",
			FOV:    comp.FOV,
			IsMain: comp.IsMain,
		}

	default:
		name, props, ok := engine.SerializeScript(c)
		if !ok {
			return nil
		}
		def = scriptDef{Type: "Script", Name: name, Props: props}
	}

	data, err := json.Marshal(def)
	if err != nil {
		return nil
	}
	return data
}
