package components

import (
	"fmt"

	"safeget/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("MeshRenderer", func() engine.Serializable {
		return NewMeshRenderer(MeshCube, rl.White, rl.Vector3{X: 1, Y: 1, Z: 1})
	})
}

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

var meshNames = map[MeshType]string{
	MeshCube:   "cube",
	MeshSphere: "sphere",
	MeshPlane:  "plane",
}

func (m MeshType) String() string {
	if name, ok := meshNames[m]; ok {
		return name
	}
	return fmt.Sprintf("MeshType(%d)", int(m))
}

func parseMeshType(name string) (MeshType, bool) {
	for t, n := range meshNames {
		if n == name {
			return t, true
		}
	}
	return MeshCube, false
}

var colorByName = map[string]rl.Color{
	"Red":    rl.Red,
	"Blue":   rl.Blue,
	"Green":  rl.Green,
	"Orange": rl.Orange,
	"Yellow": rl.Yellow,
	"White":  rl.White,
	"Gray":   rl.Gray,
	"Black":  rl.Black,
	"Gold":   rl.Gold,
}

func colorName(c rl.Color) string {
	for name, known := range colorByName {
		if known == c {
			return name
		}
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

func (m *MeshRenderer) TypeName() string {
	return "MeshRenderer"
}

func (m *MeshRenderer) Serialize() map[string]any {
	return map[string]any{
		"mesh":  m.MeshType.String(),
		"color": colorName(m.Color),
		"size":  vec3(m.Size),
	}
}

func (m *MeshRenderer) Deserialize(data map[string]any) {
	var mesh, color string
	readString(data, "mesh", &mesh)
	if t, ok := parseMeshType(mesh); ok {
		m.MeshType = t
	}
	readString(data, "color", &color)
	if c, ok := colorByName[color]; ok {
		m.Color = c
	}
	readVec3(data, "size", &m.Size)
}
