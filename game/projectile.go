package game

import "math"

// Projectile tuning
const (
	ProjectileLifetime = 2.0 // Seconds before the projectile disappears
	ProjectileSize     = 6.0
)

// Projectile is a ranged weapon shot. It damages the first live enemy it overlaps, once.
type Projectile struct {
	*Entity

	Damage float64

	lifetime float64
}

// NewProjectile creates a projectile at pos moving with vel
func NewProjectile(pos, vel Vec2, damage float64) *Projectile {
	p := &Projectile{
		Entity: NewEntity(EntityKindProjectile, pos, ShapeCircle, ColorProjectile, ProjectileSize),
		Damage: damage,
	}
	p.Entity.Behavior = p
	p.Vel = vel
	if vel.X != 0 || vel.Y != 0 {
		p.Rotation = math.Atan2(vel.Y, vel.X)
	}
	return p
}

// Update moves the projectile and expires it after its lifetime
func (p *Projectile) Update(deltaTime float64) {
	if !p.IsActive() {
		return
	}
	p.Entity.Update(deltaTime)
	p.lifetime += deltaTime
	if p.lifetime >= ProjectileLifetime {
		p.Active = false
	}
}

// Hit damages the first live enemy overlapping the projectile and deactivates it.
// Returns the enemy hit, or nil.
func (p *Projectile) Hit(enemies []*Enemy) *Enemy {
	if !p.IsActive() {
		return nil
	}
	for _, e := range enemies {
		if !e.IsActive() || !p.Intersects(e.Entity) {
			continue
		}
		p.Active = false
		e.TakeDamage(p.Damage)
		return e
	}
	return nil
}
