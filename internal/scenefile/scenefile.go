// Package scenefile loads and saves scenes as YAML.
//
// Component types are resolved through the engine's component registry, so
// the packages that register them must be imported by the program.
package scenefile

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"safeget/internal/engine"
)

// --- YAML types ---

type File struct {
	Name    string      `yaml:"name"`
	Objects []ObjectDef `yaml:"objects"`
}

type ObjectDef struct {
	Name       string         `yaml:"name"`
	Tags       []string       `yaml:"tags,omitempty,flow"`
	Inactive   bool           `yaml:"inactive,omitempty"`
	Position   [3]float32     `yaml:"position,flow"`
	Rotation   [3]float32     `yaml:"rotation,flow"`
	Scale      [3]float32     `yaml:"scale,flow"`
	Components []ComponentDef `yaml:"components,omitempty"`
	Children   []ObjectDef    `yaml:"children,omitempty"`
}

type ComponentDef struct {
	Type  string         `yaml:"type"`
	Props map[string]any `yaml:"props,omitempty"`
}

// --- Loading ---

func Load(path string) (*engine.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*engine.Scene, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	name := f.Name
	if name == "" {
		name = "Main"
	}
	scene := engine.NewScene(name)
	for _, def := range f.Objects {
		g, err := build(def)
		if err != nil {
			return nil, err
		}
		scene.AddGameObject(g)
	}
	engine.Logger().Debug("scene loaded",
		zap.String("scene", scene.Name),
		zap.Int("objects", len(scene.GameObjects)))
	return scene, nil
}

func build(def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Active = !def.Inactive
	g.Transform.Position = toVec(def.Position)
	g.Transform.Rotation = toVec(def.Rotation)

	// Default scale to 1 if zero
	if def.Scale == [3]float32{} {
		g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	} else {
		g.Transform.Scale = toVec(def.Scale)
	}

	for _, cdef := range def.Components {
		c, ok := engine.CreateComponent(cdef.Type)
		if !ok {
			return nil, fmt.Errorf("object %q: unknown component type %q", def.Name, cdef.Type)
		}
		if cdef.Props != nil {
			c.Deserialize(cdef.Props)
		}
		g.AddComponent(c)
	}

	for _, childDef := range def.Children {
		child, err := build(childDef)
		if err != nil {
			return nil, err
		}
		g.AddChild(child)
	}
	return g, nil
}

// --- Saving ---

// Marshal encodes the live part of scene. Components that are not
// engine.Serializable are skipped.
func Marshal(scene *engine.Scene) ([]byte, error) {
	f := File{Name: scene.Name}
	for _, g := range scene.Roots() {
		f.Objects = append(f.Objects, describe(g))
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("encode scene: %w", err)
	}
	return data, nil
}

func Save(scene *engine.Scene, path string) error {
	data, err := Marshal(scene)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

func describe(g *engine.GameObject) ObjectDef {
	def := ObjectDef{
		Name:     g.Name,
		Tags:     g.Tags,
		Inactive: !g.Active,
		Position: fromVec(g.Transform.Position),
		Rotation: fromVec(g.Transform.Rotation),
		Scale:    fromVec(g.Transform.Scale),
	}
	for _, c := range g.Components() {
		if !engine.IsAlive(c) {
			continue
		}
		s, ok := c.(engine.Serializable)
		if !ok {
			engine.Logger().Debug("skipping unserializable component",
				zap.String("object", g.Name),
				zap.String("type", engine.TypeNameOf(c)))
			continue
		}
		def.Components = append(def.Components, ComponentDef{Type: s.TypeName(), Props: s.Serialize()})
	}
	for _, child := range g.Children {
		if engine.IsAlive(child) {
			def.Children = append(def.Children, describe(child))
		}
	}
	return def
}

func toVec(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func fromVec(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
