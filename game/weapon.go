package game

import (
	"math"

	"github.com/google/uuid"
)

// Weapon is owned by a player and fires automatically at the nearest enemy in range
type Weapon struct {
	ID              uuid.UUID
	Kind            WeaponKind
	Name            string
	Damage          float64
	Cooldown        float64
	Range           float64
	ProjectileSpeed float64
	Level           int

	owner         *Player
	cooldownTimer float64
}

// NewWeapon creates a level 1 weapon of the given kind
func NewWeapon(kind WeaponKind) (*Weapon, error) {
	cfg, err := GetWeaponConfig(kind)
	if err != nil {
		return nil, err
	}
	return &Weapon{
		ID:              uuid.New(),
		Kind:            cfg.Kind,
		Name:            cfg.Name,
		Damage:          cfg.Damage,
		Cooldown:        cfg.Cooldown,
		Range:           cfg.Range,
		ProjectileSpeed: cfg.ProjectileSpeed,
		Level:           1,
	}, nil
}

// Owner returns the player holding the weapon, or nil
func (w *Weapon) Owner() *Player {
	return w.owner
}

// Upgrade raises the level by one, scaling damage up and cooldown down
func (w *Weapon) Upgrade() {
	w.Level++
	w.Damage *= WeaponUpgradeDamageFactor
	w.Cooldown *= WeaponUpgradeCooldownFactor
}

// EffectiveCooldown applies the owner's AttackSpeed percent bonus
func (w *Weapon) EffectiveCooldown() float64 {
	if w.owner == nil {
		return w.Cooldown
	}
	bonus := 1 + w.owner.Stats.Get(StatAttackSpeed)/100
	if bonus <= 0 {
		return w.Cooldown
	}
	return w.Cooldown / bonus
}

// EffectiveRange adds the owner's flat Range bonus
func (w *Weapon) EffectiveRange() float64 {
	if w.owner == nil {
		return w.Range
	}
	return w.Range + w.owner.Stats.Get(StatRange)
}

// RollDamage returns the damage of one hit and whether it was a critical hit
func (w *Weapon) RollDamage(r *Random) (float64, bool) {
	dmg := w.Damage
	if w.owner == nil {
		return dmg, false
	}
	stats := w.owner.Stats
	dmg += stats.Get(StatDamage)
	if r != nil && r.Chance(stats.Get(StatCriticalChance)) {
		return dmg * stats.Get(StatCriticalDamage), true
	}
	return dmg, false
}

// Update ticks the cooldown and fires when ready and a target is in range
func (w *Weapon) Update(deltaTime float64) {
	if w.owner == nil || !w.owner.IsActive() {
		return
	}
	ctx := w.owner.Context()
	if ctx == nil {
		return
	}

	w.cooldownTimer -= deltaTime
	if w.cooldownTimer > 0 {
		return
	}

	target := w.nearestTarget(ctx.liveEnemies())
	if target == nil {
		return
	}
	w.fire(ctx, target)
	w.cooldownTimer = w.EffectiveCooldown()
}

func (w *Weapon) nearestTarget(enemies []*Enemy) *Enemy {
	var best *Enemy
	bestDist := w.EffectiveRange()
	for _, e := range enemies {
		if !e.IsActive() {
			continue
		}
		if d := w.owner.DistanceTo(e.Entity); d <= bestDist {
			best = e
			bestDist = d
		}
	}
	return best
}

func (w *Weapon) fire(ctx *Context, target *Enemy) {
	dmg, _ := w.RollDamage(ctx.Rand)
	aim := target.Pos
	if w.Kind == WeaponKindRanged {
		aim = PredictiveAim(w.owner.Pos, target.Pos, target.Vel, w.ProjectileSpeed)
	}
	dir := aim.Sub(w.owner.Pos).Normalize()
	if dir.X != 0 || dir.Y != 0 {
		w.owner.Rotation = math.Atan2(dir.Y, dir.X)
	}

	switch w.Kind {
	case WeaponKindMelee:
		target.TakeDamage(dmg)
	case WeaponKindRanged:
		if dir.X == 0 && dir.Y == 0 {
			target.TakeDamage(dmg)
			return
		}
		p := NewProjectile(w.owner.Pos, dir.Scale(w.ProjectileSpeed), dmg)
		p.Initialize(ctx)
		ctx.spawnProjectile(p)
	}
}
