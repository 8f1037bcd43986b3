package scripts

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safeget/internal/components"
	"safeget/internal/engine"
	"safeget/internal/safe"
)

func newShooterRig(t *testing.T) (*engine.Scene, *engine.GameObject, *engine.GameObject, *Shooter) {
	t.Helper()
	scene := engine.NewScene("Test")
	tank := engine.NewGameObject("Tank")
	gun := engine.NewGameObject("Gun")
	scene.AddGameObject(tank)
	tank.AddChild(gun)

	shooter := &Shooter{Cooldown: 0.5, ShotSpeed: 10, ShotLifetime: 1, Recoil: 2}
	gun.AddComponent(shooter)
	return scene, tank, gun, shooter
}

func TestShooterRequiresAudioSource(t *testing.T) {
	_, _, _, shooter := newShooterRig(t)

	shot, err := shooter.Shoot()
	assert.Nil(t, shot)
	assert.ErrorIs(t, err, safe.ErrNotFound)
	assert.Equal(t, "@Gun: Shooter needs an AudioSource", err.Error())
}

func TestShooterFiresAndRecoils(t *testing.T) {
	scene, tank, gun, shooter := newShooterRig(t)
	audio := components.NewAudioSource()
	gun.AddComponent(audio)
	body := components.NewRigidbody()
	body.UseGravity = false
	tank.AddComponent(body)
	scene.Start()

	shot, err := shooter.Shoot()
	require.NoError(t, err)
	require.NotNil(t, shot)

	assert.Equal(t, 1, audio.PlayCount())
	assert.Less(t, body.Velocity.Z, float32(0), "recoil should push the parent body back")
	assert.Same(t, shot, scene.FindByUID(shot.UID))

	again, err := shooter.Shoot()
	require.NoError(t, err)
	assert.Nil(t, again, "cooldown should block the second shot")
}

func TestShooterWithoutRecoilBody(t *testing.T) {
	scene, _, gun, shooter := newShooterRig(t)
	gun.AddComponent(components.NewAudioSource())
	scene.Start()

	shot, err := shooter.Shoot()
	require.NoError(t, err)
	assert.NotNil(t, shot)
}

func TestShotsExpire(t *testing.T) {
	scene, _, gun, shooter := newShooterRig(t)
	gun.AddComponent(components.NewAudioSource())

	shot, err := shooter.Shoot()
	require.NoError(t, err)

	scene.Update(0.5)
	assert.True(t, engine.IsAlive(shot))
	scene.Update(0.6)
	assert.False(t, engine.IsAlive(shot))
}

func TestShooterReacquiresReplacedAudio(t *testing.T) {
	scene, _, gun, shooter := newShooterRig(t)
	first := components.NewAudioSource()
	gun.AddComponent(first)
	scene.Start()

	_, err := shooter.Shoot()
	require.NoError(t, err)

	engine.Destroy(first, 0)
	second := components.NewAudioSource()
	gun.AddComponent(second)
	scene.Update(1)

	_, err = shooter.Shoot()
	require.NoError(t, err)
	assert.Equal(t, 1, second.PlayCount())
}

func TestCollectibleDespawnsOnContact(t *testing.T) {
	scene := engine.NewScene("Test")
	manager := engine.NewGameObject("Physics")
	manager.AddComponent(components.NewCollisionDetector())
	coin := engine.NewGameObject("Coin")
	coin.AddComponent(components.NewSphereCollider(0.5))
	rock := engine.NewGameObject("Rock")
	rock.Transform.Position = rl.Vector3{X: 0.5}
	rock.AddComponent(components.NewSphereCollider(0.5))
	player := engine.NewGameObject("Player")
	player.Tags = []string{"Player"}
	player.Transform.Position = rl.Vector3{X: 5}
	player.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1}))
	for _, g := range []*engine.GameObject{manager, coin, rock, player} {
		scene.AddGameObject(g)
	}

	c := &Collectible{Points: 5, TargetTag: "Player"}
	coin.AddComponent(c)

	var got float32
	c.Collected.AddListener(func(p float32) { got += p })

	scene.Update(0.016)
	assert.Zero(t, got, "touching an untagged object collects nothing")
	assert.True(t, engine.IsAlive(coin))

	player.Transform.Position = rl.Vector3{}
	scene.Update(0.016)
	assert.Equal(t, float32(5), got)
	assert.False(t, engine.IsAlive(coin), "despawns in the same frame's teardown")

	scene.Update(0.016)
	assert.Equal(t, float32(5), got)
}

func TestCollectibleLifetime(t *testing.T) {
	scene := engine.NewScene("Test")
	coin := engine.NewGameObject("Coin")
	scene.AddGameObject(coin)
	coin.AddComponent(&Collectible{Lifetime: 0.3})

	scene.Update(0.2)
	assert.True(t, engine.IsAlive(coin))
	scene.Update(0.2)
	assert.False(t, engine.IsAlive(coin))
}

func TestShooterReleasesOldestShot(t *testing.T) {
	scene, _, gun, shooter := newShooterRig(t)
	gun.AddComponent(components.NewAudioSource())
	shooter.Cooldown = 0
	shooter.MaxShots = 2

	var fired []*engine.GameObject
	for i := 0; i < 3; i++ {
		shot, err := shooter.Shoot()
		require.NoError(t, err)
		fired = append(fired, shot)
	}
	assert.Equal(t, fired[1:], shooter.Shots())
	assert.True(t, engine.IsAlive(fired[0]), "release waits for teardown")

	scene.Update(0.016)
	assert.False(t, engine.IsAlive(fired[0]))
	assert.True(t, engine.IsAlive(fired[1]))
	assert.True(t, engine.IsAlive(fired[2]))
}

func TestShooterOutsideSceneKeepsShotAlive(t *testing.T) {
	gun := engine.NewGameObject("Gun")
	gun.AddComponent(components.NewAudioSource())
	shooter := &Shooter{ShotLifetime: 0.5}
	gun.AddComponent(shooter)

	shot, err := shooter.Shoot()
	require.NoError(t, err)
	assert.True(t, engine.IsAlive(shot), "lifetime countdown waits for a scene")

	scene := engine.NewScene("Late")
	scene.AddGameObject(shot)
	scene.Update(0.3)
	assert.True(t, engine.IsAlive(shot))
	scene.Update(0.3)
	assert.False(t, engine.IsAlive(shot))
}

func TestScriptsRegistered(t *testing.T) {
	c, ok := engine.CreateComponent("Shooter")
	require.True(t, ok)
	c.Deserialize(map[string]any{"cooldown": 1, "recoil": 0.5, "maxShots": 3})
	s := c.(*Shooter)
	assert.Equal(t, float32(1), s.Cooldown)
	assert.Equal(t, float32(0.5), s.Recoil)
	assert.Equal(t, 3, s.MaxShots)

	_, ok = engine.CreateComponent("Collectible")
	assert.True(t, ok)
}
