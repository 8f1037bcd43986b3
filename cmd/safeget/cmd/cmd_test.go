package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = "testdata/scene.yaml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTree(t *testing.T) {
	out, err := run(t, "tree", "--scene", testScene)
	require.NoError(t, err)
	assert.Contains(t, out, "Player")
	assert.Contains(t, out, "Gun")
	assert.Contains(t, out, "AudioSource, Shooter")
}

func TestLookupFound(t *testing.T) {
	out, err := run(t, "lookup", "Player", "AudioSource", "--scene", testScene, "--scope", "children")
	require.NoError(t, err)
	assert.Contains(t, out, "AudioSource: found on Gun")
}

func TestLookupMissing(t *testing.T) {
	_, err := run(t, "lookup", "Crate", "AudioSource", "--scene", testScene)
	require.Error(t, err)
	assert.Equal(t, "@Crate: failed to find AudioSource", err.Error())
}

func TestLookupMissingWithMessage(t *testing.T) {
	_, err := run(t, "lookup", "Crate", "AudioSource", "--scene", testScene,
		"--message", "crates are silent", "--attribute", "SoundManager")
	require.Error(t, err)
	assert.Equal(t, "@SoundManager: crates are silent", err.Error())
}

func TestLookupNullable(t *testing.T) {
	out, err := run(t, "lookup", "Crate", "AudioSource", "--scene", testScene, "--nullable")
	require.NoError(t, err)
	assert.Contains(t, out, "AudioSource: absent")
}

func TestLookupParentScope(t *testing.T) {
	out, err := run(t, "lookup", "Gun", "Rigidbody", "--scene", testScene, "--scope", "parent")
	require.NoError(t, err)
	assert.Contains(t, out, "Rigidbody: found on Player")
}

func TestLookupBadScope(t *testing.T) {
	_, err := run(t, "lookup", "Gun", "Rigidbody", "--scene", testScene, "--scope", "sideways")
	assert.ErrorContains(t, err, "unknown scope")
}

func TestLookupSceneFromEnv(t *testing.T) {
	t.Setenv("SAFEGET_SCENE", testScene)
	out, err := run(t, "lookup", "Crate", "BoxCollider")
	require.NoError(t, err)
	assert.Contains(t, out, "BoxCollider: found on Crate")
}

func TestLookupNoScene(t *testing.T) {
	_, err := run(t, "lookup", "Crate", "BoxCollider")
	assert.ErrorContains(t, err, "no scene given")
}

func TestLookupUnknownObject(t *testing.T) {
	_, err := run(t, "lookup", "Nobody", "BoxCollider", "--scene", testScene)
	assert.ErrorContains(t, err, `object "Nobody" not found`)
}

func TestRelease(t *testing.T) {
	out, err := run(t, "release", "Player", "--scene", testScene, "--delay", "0.05", "--dt", "0.02", "--frames", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "handle cleared=true, pending=1")
	assert.Contains(t, out, "invalid argument")
	assert.Contains(t, out, "frame 2: alive=true")
	assert.Contains(t, out, "frame 3: alive=false")
	assert.NotContains(t, out, "frame 4")
}

func TestConfigFile(t *testing.T) {
	abs, err := filepath.Abs(testScene)
	require.NoError(t, err)
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("scene: "+abs+"\nlog_level: error\n"), 0o644))

	out, err := run(t, "lookup", "Crate", "BoxCollider", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "found on Crate")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "tree", "--scene", testScene, "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestNewScript(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "newscript", "EnemyChaser", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	data, err := os.ReadFile(filepath.Join(dir, "enemy_chaser.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `engine.RegisterComponent("EnemyChaser"`)
	assert.Contains(t, string(data), "safe.AssignOptional")

	_, err = run(t, "newscript", "EnemyChaser", "--dir", dir)
	assert.ErrorContains(t, err, "already exists")
}

func TestRenderScriptRejectsBadNames(t *testing.T) {
	for _, name := range []string{"", "lower", "Has-Dash"} {
		_, _, err := renderScript(name)
		assert.Error(t, err, name)
	}
	assert.Equal(t, "enemy_chaser", toSnakeCase("EnemyChaser"))
}
