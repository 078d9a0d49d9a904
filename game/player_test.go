package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerInvincibilityWindow(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := newTestPlayer(ctx, Vec2{X: 400, Y: 300})

	p.TakeDamage(10)
	assert.Equal(t, 90.0, p.Stats.Health())
	assert.True(t, p.IsInvincible())

	p.TakeDamage(10)
	assert.Equal(t, 90.0, p.Stats.Health(), "hit during the window is ignored")

	p.Update(PlayerInvincibilityDuration)
	require.False(t, p.IsInvincible())
	p.TakeDamage(10)
	assert.Equal(t, 80.0, p.Stats.Health())
}

func TestPlayerAddExperience(t *testing.T) {
	tests := []struct {
		name      string
		startXP   int
		gain      int
		wantLevel int
		wantXP    int
		wantNext  int
	}{
		{"below threshold", 0, 50, 1, 50, 100},
		{"exact threshold", 0, 100, 2, 0, 200},
		{"carry over", 0, 250, 2, 150, 200},
		{"two levels", 0, 300, 3, 0, 300},
		{"zero gain settles pending levels", 250, 0, 2, 150, 200},
		{"negative gain ignored", 40, -10, 1, 40, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := newTestContext(t)
			p := newTestPlayer(ctx, Vec2{X: 400, Y: 300})
			p.Experience = tt.startXP

			p.AddExperience(tt.gain)

			assert.Equal(t, tt.wantLevel, p.Level)
			assert.Equal(t, tt.wantXP, p.Experience)
			assert.Equal(t, tt.wantNext, p.ExperienceToNextLevel)
			assert.Less(t, p.Experience, p.ExperienceToNextLevel)
		})
	}
}

func TestPlayerCharacterLoadout(t *testing.T) {
	ctx, _ := newTestContext(t)
	brawler, err := CharacterByName("Brawler")
	require.NoError(t, err)

	p := NewPlayer(Vec2{X: 400, Y: 300}, brawler)
	p.Initialize(ctx)

	assert.Equal(t, 130.0, p.Stats.MaxHealth())
	assert.Equal(t, 130.0, p.Stats.Health())
	assert.Equal(t, 170.0, p.Stats.Speed())
	assert.Equal(t, 5.0, p.Stats.Get(StatDamage))
	assert.Equal(t, brawler.Color, p.Visual.Color)
	require.Len(t, p.Weapons, 1)
	assert.Equal(t, WeaponKindRanged, p.Weapons[0].Kind)
	assert.Same(t, p, p.Weapons[0].Owner())
	assert.Same(t, p, ctx.LocalPlayer())
}

func TestPlayerDiagonalMovementIsNormalized(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := newTestPlayer(ctx, Vec2{X: 400, Y: 300})
	p.Input = &StaticInput{Move: MoveIntent{Up: true, Right: true}}

	p.Update(0.1)

	moved := p.Pos.Distance(Vec2{X: 400, Y: 300})
	assert.InDelta(t, 20.0, moved, 1e-9)
	assert.Greater(t, p.Pos.X, 400.0)
	assert.Less(t, p.Pos.Y, 300.0)
}

func TestPlayerOpposingInputsCancel(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := newTestPlayer(ctx, Vec2{X: 400, Y: 300})
	p.Input = &StaticInput{Move: MoveIntent{Left: true, Right: true}}

	p.Update(0.1)

	assert.Equal(t, Vec2{X: 400, Y: 300}, p.Pos)
}

func TestPlayerClampedToViewport(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := newTestPlayer(ctx, Vec2{X: 0, Y: 0})

	p.Update(0)
	assert.Equal(t, Vec2{X: 16, Y: 16}, p.Pos)

	p.Input = &StaticInput{Move: MoveIntent{Down: true, Right: true}}
	for i := 0; i < 200; i++ {
		p.Update(0.05)
	}
	assert.Equal(t, Vec2{X: 1280 - 16, Y: 720 - 16}, p.Pos)
}

func TestPlayerResetKeepsLocalDesignation(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := newTestPlayer(ctx, Vec2{X: 400, Y: 300})
	p.AddGold(30)
	p.AddExperience(150)
	p.Stats.AddModifier(NewStatModifier(StatSpeed, 50, shopSource))
	p.Die()

	p.Reset(Vec2{X: 640, Y: 360})

	assert.True(t, p.IsActive())
	assert.Same(t, p, ctx.LocalPlayer())
	assert.Equal(t, 0, p.Gold)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 200.0, p.Stats.Speed())
	assert.Len(t, p.Weapons, 1)
	assert.Equal(t, Vec2{X: 640, Y: 360}, p.Pos)
}

func TestPlayerGold(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := newTestPlayer(ctx, Vec2{X: 400, Y: 300})

	p.AddGold(-5)
	assert.Equal(t, 0, p.Gold)

	p.AddGold(12)
	assert.False(t, p.SpendGold(13))
	assert.True(t, p.SpendGold(12))
	assert.Equal(t, 0, p.Gold)
}

func TestDeadPlayerCannotHeal(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := newTestPlayer(ctx, Vec2{X: 400, Y: 300})
	p.Stats.SetHealth(1)
	p.Die()

	p.Heal(50)
	assert.Equal(t, 1.0, p.Stats.Health())
}

func TestAddWeaponSetsOwner(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := newTestPlayer(ctx, Vec2{X: 400, Y: 300})
	w, err := NewWeapon(WeaponKindMelee)
	require.NoError(t, err)
	require.Nil(t, w.Owner())

	p.AddWeapon(w)
	p.AddWeapon(nil)

	assert.Same(t, p, w.Owner())
	assert.Len(t, p.Weapons, 2)
}
