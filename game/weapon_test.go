package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noCrits cancels the default critical chance so damage is deterministic
func noCrits(p *Player) {
	p.Stats.AddModifier(NewStatModifier(StatCriticalChance, -DefaultStats()[StatCriticalChance], "test"))
}

func TestGetWeaponConfigUnknownKind(t *testing.T) {
	_, err := GetWeaponConfig(WeaponKind(99))
	assert.ErrorIs(t, err, ErrUnsupportedVariant)

	w, err := NewWeapon(WeaponKind(99))
	assert.ErrorIs(t, err, ErrUnsupportedVariant)
	assert.Nil(t, w)
}

func TestWeaponUpgrade(t *testing.T) {
	w, err := NewWeapon(WeaponKindRanged)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		w.Upgrade()
	}

	assert.Equal(t, 4, w.Level)
	assert.InDelta(t, 8*1.728, w.Damage, 1e-9)
	assert.InDelta(t, 0.857375, w.Cooldown, 1e-9)
	assert.Equal(t, 350.0, w.Range, "range is not upgraded")
}

func TestWeaponEffectiveStats(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := newTestPlayer(ctx, Vec2{X: 400, Y: 300})
	w := p.Weapons[0]

	assert.Equal(t, 1.0, w.EffectiveCooldown())
	assert.Equal(t, 350.0, w.EffectiveRange())

	p.Stats.AddModifier(NewStatModifier(StatAttackSpeed, 25, "test"))
	p.Stats.AddModifier(NewStatModifier(StatRange, 50, "test"))

	assert.InDelta(t, 0.8, w.EffectiveCooldown(), 1e-9)
	assert.Equal(t, 400.0, w.EffectiveRange())
}

func TestWeaponRollDamage(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := newTestPlayer(ctx, Vec2{X: 400, Y: 300})
	w := p.Weapons[0]

	noCrits(p)
	p.Stats.AddModifier(NewStatModifier(StatDamage, 2, "test"))
	dmg, crit := w.RollDamage(ctx.Rand)
	assert.False(t, crit)
	assert.Equal(t, 10.0, dmg)

	p.Stats.AddModifier(NewStatModifier(StatCriticalChance, 1, "test"))
	dmg, crit = w.RollDamage(ctx.Rand)
	assert.True(t, crit)
	assert.Equal(t, 15.0, dmg)
}

func TestWeaponForcedCrit(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := newTestPlayer(ctx, Vec2{X: 400, Y: 300})
	p.Stats.AddModifier(NewStatModifier(StatCriticalChance, 0.95, "test"))

	dmg, crit := p.Weapons[0].RollDamage(ctx.Rand)

	assert.True(t, crit)
	assert.Equal(t, 12.0, dmg)
}

func TestUnownedWeaponRollsBaseDamage(t *testing.T) {
	w, err := NewWeapon(WeaponKindMelee)
	require.NoError(t, err)

	dmg, crit := w.RollDamage(NewRandom(testSeed))
	assert.False(t, crit)
	assert.Equal(t, 12.0, dmg)
	assert.NotPanics(t, func() { w.Update(1) })
}

func TestMeleeWeaponDamagesNearestEnemy(t *testing.T) {
	ctx, sink := newTestContext(t)
	p := newTestPlayer(ctx, Vec2{X: 400, Y: 300})
	noCrits(p)
	near := newTestEnemy(ctx, EnemyTypeBasic, Vec2{X: 450, Y: 300})
	far := newTestEnemy(ctx, EnemyTypeBasic, Vec2{X: 460, Y: 300})
	ctx.Enemies = enemyList{far, near}

	knife, err := NewWeapon(WeaponKindMelee)
	require.NoError(t, err)
	p.AddWeapon(knife)

	knife.Update(0.016)

	assert.Equal(t, 18.0, near.Stats.Health())
	assert.Equal(t, 30.0, far.Stats.Health())
	assert.Empty(t, sink.projectiles)

	// Still cooling down
	knife.Update(0.5)
	assert.Equal(t, 18.0, near.Stats.Health())

	knife.Update(0.31)
	assert.Equal(t, 6.0, near.Stats.Health())
}

func TestMeleeWeaponIgnoresEnemiesOutOfRange(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := newTestPlayer(ctx, Vec2{X: 400, Y: 300})
	enemy := newTestEnemy(ctx, EnemyTypeBasic, Vec2{X: 500, Y: 300})
	ctx.Enemies = enemyList{enemy}

	knife, err := NewWeapon(WeaponKindMelee)
	require.NoError(t, err)
	p.AddWeapon(knife)

	knife.Update(0.016)
	assert.Equal(t, 30.0, enemy.Stats.Health())
}

func TestRangedWeaponSpawnsProjectile(t *testing.T) {
	ctx, sink := newTestContext(t)
	p := newTestPlayer(ctx, Vec2{X: 400, Y: 300})
	noCrits(p)
	enemy := newTestEnemy(ctx, EnemyTypeBasic, Vec2{X: 600, Y: 300})
	ctx.Enemies = enemyList{enemy}

	p.Weapons[0].Update(0.016)

	require.Len(t, sink.projectiles, 1)
	proj := sink.projectiles[0]
	assert.Equal(t, 8.0, proj.Damage)
	assert.InDelta(t, 500.0, proj.Vel.X, 1e-9)
	assert.InDelta(t, 0.0, proj.Vel.Y, 1e-9)
	assert.Same(t, ctx, proj.Context())
	assert.Equal(t, 30.0, enemy.Stats.Health(), "damage is dealt on impact")
}

func TestWeaponKindString(t *testing.T) {
	assert.Equal(t, "melee", WeaponKindMelee.String())
	assert.Equal(t, "ranged", WeaponKindRanged.String())
	assert.Equal(t, "unknown", WeaponKind(7).String())
}
