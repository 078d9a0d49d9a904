package game

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doubleSizeFactory makes every visual twice the requested size
type doubleSizeFactory struct{}

func (doubleSizeFactory) CreateVisual(shape Shape, clr color.RGBA, size float64) Visual {
	return Visual{Shape: shape, Color: clr, Width: size * 2, Height: size * 2}
}

// recordingDrawer counts draw calls
type recordingDrawer struct {
	calls  int
	depths []float64
}

func (d *recordingDrawer) DrawSprite(_ Visual, _ Vec2, _ float64, _ color.Color, depth float64) {
	d.calls++
	d.depths = append(d.depths, depth)
}

func TestTakeDamageKillsAtZero(t *testing.T) {
	e := NewEnemy(EnemyTypeBasic, Vec2{})

	e.TakeDamage(10)
	assert.Equal(t, 20.0, e.Stats.Health())
	assert.True(t, e.IsActive())

	e.TakeDamage(20)
	assert.True(t, e.Dead)
	assert.False(t, e.Active, "dead implies inactive")
}

func TestTakeDamageOnDeadEntityIsNoop(t *testing.T) {
	e := NewEnemy(EnemyTypeBasic, Vec2{})
	e.TakeDamage(50)
	require.True(t, e.Dead)
	hp := e.Stats.Health()

	e.TakeDamage(10)
	assert.Equal(t, hp, e.Stats.Health())
}

func TestUpdateIntegratesVelocityAndBounds(t *testing.T) {
	e := NewEntity(EntityKindProjectile, Vec2{X: 10, Y: 10}, ShapeCircle, ColorProjectile, 4)
	e.Vel = Vec2{X: 100, Y: -50}

	e.Update(0.5)

	assert.Equal(t, Vec2{X: 60, Y: -15}, e.Pos)
	assert.Equal(t, e.Pos, e.Bounds.Center())
	assert.Equal(t, 4.0, e.Bounds.W)
}

func TestInitializeUsesVisualFactory(t *testing.T) {
	ctx := NewContext(testConfig())
	ctx.Visuals = doubleSizeFactory{}

	e := newTestEnemy(ctx, EnemyTypeBasic, Vec2{X: 100, Y: 100})

	assert.Equal(t, 48.0, e.Visual.Width)
	assert.Equal(t, Rect{X: 76, Y: 76, W: 48, H: 48}, e.Bounds)
	assert.Same(t, ctx, e.Context())
}

func TestIntersects(t *testing.T) {
	a := NewEntity(EntityKindEnemy, Vec2{X: 0, Y: 0}, ShapeSquare, ColorPlayer, 10)
	b := NewEntity(EntityKindEnemy, Vec2{X: 9, Y: 0}, ShapeSquare, ColorPlayer, 10)
	c := NewEntity(EntityKindEnemy, Vec2{X: 10, Y: 0}, ShapeSquare, ColorPlayer, 10)

	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(c), "touching edges do not overlap")
}

func TestDrawSkipsInactive(t *testing.T) {
	d := &recordingDrawer{}
	e := NewEntity(EntityKindEnemy, Vec2{}, ShapeSquare, ColorPlayer, 10)

	e.Draw(d, DepthEnemy)
	e.Die()
	e.Draw(d, DepthEnemy)

	assert.Equal(t, 1, d.calls)
	assert.Equal(t, []float64{DepthEnemy}, d.depths)
}

func TestEntityReset(t *testing.T) {
	e := NewEntity(EntityKindEnemy, Vec2{X: 5, Y: 5}, ShapeSquare, ColorPlayer, 10)
	id := e.ID
	e.Vel = Vec2{X: 1, Y: 1}
	e.Stats.AddModifier(NewStatModifier(StatSpeed, 10, "x"))
	e.Die()

	e.Reset()

	assert.True(t, e.IsActive())
	assert.Equal(t, Vec2{}, e.Pos)
	assert.Equal(t, Vec2{}, e.Vel)
	assert.Equal(t, 200.0, e.Stats.Speed())
	assert.Equal(t, id, e.ID, "id survives pooling")
}

func TestEntityKindString(t *testing.T) {
	assert.Equal(t, "player", EntityKindPlayer.String())
	assert.Equal(t, "enemy", EntityKindEnemy.String())
	assert.Equal(t, "projectile", EntityKindProjectile.String())
}
