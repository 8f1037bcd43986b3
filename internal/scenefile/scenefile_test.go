package scenefile

import (
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safeget/internal/components"
	"safeget/internal/engine"
	"safeget/internal/safe"
	"safeget/internal/scripts"
)

func TestLoadArena(t *testing.T) {
	scene, err := Load(filepath.Join("testdata", "arena.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Arena", scene.Name)
	assert.Len(t, scene.Roots(), 2)
	assert.Len(t, scene.GameObjects, 3)

	player := scene.FindByName("Player")
	require.NotNil(t, player)
	assert.True(t, player.HasTag("Player"))
	assert.Equal(t, rl.Vector3{X: 1, Y: 1, Z: 1}, player.Transform.Scale)

	body, err := safe.Get[*components.Rigidbody](player)
	require.NoError(t, err)
	assert.Equal(t, float32(80), body.Mass)

	audio, err := safe.Get[*components.AudioSource](player, safe.InChildren())
	require.NoError(t, err)
	assert.Equal(t, "shot.wav", audio.AudioPath)
	assert.InDelta(t, 0.8, audio.Volume, 1e-6)

	gun := scene.FindByName("Gun")
	require.NotNil(t, gun)
	assert.Same(t, player, gun.Parent)
	shooter, err := safe.Get[*scripts.Shooter](gun)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, shooter.Cooldown, 1e-6)

	coin := scene.FindByName("Coin")
	mesh, err := safe.Get[*components.MeshRenderer](coin)
	require.NoError(t, err)
	assert.Equal(t, components.MeshSphere, mesh.MeshType)
	assert.Equal(t, rl.Gold, mesh.Color)
}

func TestParseUnknownComponent(t *testing.T) {
	_, err := Parse([]byte(`
objects:
  - name: Ghost
    components:
      - type: Haunting
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown component type "Haunting"`)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("objects: [unterminated"))
	assert.ErrorContains(t, err, "parse scene")
}

func TestRoundTrip(t *testing.T) {
	scene, err := Load(filepath.Join("testdata", "arena.yaml"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, Save(scene, path))

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, len(scene.GameObjects), len(again.GameObjects))

	coin := again.FindByName("Coin")
	require.NotNil(t, coin)
	assert.Equal(t, rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, coin.Transform.Scale)
	c, err := safe.Get[*scripts.Collectible](coin)
	require.NoError(t, err)
	assert.Equal(t, float32(25), c.Points)
}

func TestMarshalSkipsDestroyed(t *testing.T) {
	scene, err := Load(filepath.Join("testdata", "arena.yaml"))
	require.NoError(t, err)

	engine.Destroy(scene.FindByName("Gun"), 0)
	scene.Update(0)

	data, err := Marshal(scene)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Gun")
	assert.Contains(t, string(data), "Player")
}
