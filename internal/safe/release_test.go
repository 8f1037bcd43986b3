package safe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safeget/internal/components"
	"safeget/internal/engine"
	"safeget/internal/safe"
)

func TestReleaseClearsReferenceImmediately(t *testing.T) {
	scene, player, _ := newPlayer(t)
	ref := player

	safe.Release(&ref, 0)

	assert.Nil(t, ref)
	assert.False(t, engine.IsAlive(ref))
	assert.True(t, engine.IsAlive(player), "teardown has not run yet")
	assert.Equal(t, 1, scene.PendingDestroy())

	_, err := safe.Get[*components.BoxCollider](ref)
	assert.ErrorIs(t, err, safe.ErrInvalidArgument)

	scene.Update(0.016)
	assert.False(t, engine.IsAlive(player))
}

func TestReleaseWithDelay(t *testing.T) {
	scene, player, _ := newPlayer(t)
	ref := player

	safe.Release(&ref, 0.25)
	require.Nil(t, ref)

	scene.Update(0.1)
	assert.True(t, engine.IsAlive(player))
	scene.Update(0.2)
	assert.False(t, engine.IsAlive(player))
}

func TestReleaseComponent(t *testing.T) {
	scene, player, collider := newPlayer(t)
	ref := collider

	safe.Release(&ref, 0)
	scene.Update(0.016)

	assert.Nil(t, ref)
	assert.True(t, engine.IsAlive(player))
	_, err := safe.Get[*components.BoxCollider](player)
	assert.ErrorIs(t, err, safe.ErrNotFound)
}

func TestReleaseDeadOrNilHandle(t *testing.T) {
	scene, player, _ := newPlayer(t)
	ref := player
	safe.Release(&ref, 0)
	scene.Update(0.016)

	stale := player
	safe.Release(&stale, 0)
	assert.Nil(t, stale)
	assert.Zero(t, scene.PendingDestroy())

	assert.NotPanics(t, func() {
		safe.Release[*engine.GameObject](nil, 0)
	})
}
