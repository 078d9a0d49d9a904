package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectileHitsFirstEnemyOnce(t *testing.T) {
	ctx, _ := newTestContext(t)
	first := newTestEnemy(ctx, EnemyTypeBasic, Vec2{X: 200, Y: 200})
	second := newTestEnemy(ctx, EnemyTypeBasic, Vec2{X: 200, Y: 200})
	p := NewProjectile(Vec2{X: 200, Y: 200}, Vec2{X: 500}, 8)
	p.Initialize(ctx)

	hit := p.Hit([]*Enemy{first, second})

	require.Same(t, first, hit)
	assert.Equal(t, 22.0, first.Stats.Health())
	assert.Equal(t, 30.0, second.Stats.Health())
	assert.False(t, p.IsActive())

	assert.Nil(t, p.Hit([]*Enemy{first, second}), "spent projectiles never hit again")
	assert.Equal(t, 22.0, first.Stats.Health())
}

func TestProjectileSkipsDeadAndDistantEnemies(t *testing.T) {
	ctx, _ := newTestContext(t)
	dead := newTestEnemy(ctx, EnemyTypeBasic, Vec2{X: 200, Y: 200})
	dead.Die()
	far := newTestEnemy(ctx, EnemyTypeBasic, Vec2{X: 400, Y: 200})
	p := NewProjectile(Vec2{X: 200, Y: 200}, Vec2{X: 500}, 8)

	assert.Nil(t, p.Hit([]*Enemy{dead, far}))
	assert.True(t, p.IsActive())
}

func TestProjectileExpires(t *testing.T) {
	p := NewProjectile(Vec2{}, Vec2{X: 100}, 8)

	p.Update(1)
	assert.True(t, p.IsActive())
	assert.Equal(t, Vec2{X: 100}, p.Pos)

	p.Update(1)
	assert.False(t, p.IsActive())
	assert.False(t, p.Dead, "expiry is not a death")
}

func TestProjectileFacesVelocity(t *testing.T) {
	p := NewProjectile(Vec2{}, Vec2{Y: 10}, 1)
	assert.InDelta(t, 1.5707963, p.Rotation, 1e-6)
}
